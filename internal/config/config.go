package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBPath    string
	DataDir   string // CSV drop directory for the ingest loader
	JWTSecret string

	// Engine policies
	BlendWeight    float64 // normal-pattern share for special-event blends
	FastMinMph     float64
	ModerateMinMph float64
}

// Load reads configuration from the environment with defaults. A .env
// file next to the binary is honored when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	return &Config{
		Port:           getenvDefault("PORT", ":8080"),
		DBPath:         getenvDefault("DB_PATH", "./data/marietta_traffic.db"),
		DataDir:        getenvDefault("DATA_DIR", "./data/marietta_traffic_data"),
		JWTSecret:      getenvDefault("JWT_SECRET", "your-secret-key-change-in-production"),
		BlendWeight:    getenvFloat("BLEND_WEIGHT", 0.5),
		FastMinMph:     getenvFloat("SPEED_FAST_MIN", 45),
		ModerateMinMph: getenvFloat("SPEED_MODERATE_MIN", 30),
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return f
}
