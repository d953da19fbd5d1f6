package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "./data/marietta_traffic.db", cfg.DBPath)
	assert.Equal(t, 0.5, cfg.BlendWeight)
	assert.Equal(t, 45.0, cfg.FastMinMph)
	assert.Equal(t, 30.0, cfg.ModerateMinMph)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("DB_PATH", "/tmp/traffic.db")
	t.Setenv("BLEND_WEIGHT", "0.75")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, "/tmp/traffic.db", cfg.DBPath)
	assert.Equal(t, 0.75, cfg.BlendWeight)
}

func TestLoadInvalidFloatFallsBack(t *testing.T) {
	t.Setenv("SPEED_FAST_MIN", "very fast")

	cfg := Load()

	assert.Equal(t, 45.0, cfg.FastMinMph)
}
