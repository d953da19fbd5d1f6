package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jengzang/traffic-backend-go/internal/config"
	"github.com/jengzang/traffic-backend-go/internal/engine"
	"github.com/jengzang/traffic-backend-go/internal/handler"
	"github.com/jengzang/traffic-backend-go/internal/ingest"
	"github.com/jengzang/traffic-backend-go/internal/middleware"
	"github.com/jengzang/traffic-backend-go/internal/repository"
	"github.com/jengzang/traffic-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers onto the gin
// engine. The database handle is shared read-only by all request-path
// components.
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS for the dashboard frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	eng := engine.New(db, engine.Options{
		BlendWeight: cfg.BlendWeight,
		Thresholds: engine.Thresholds{
			FastMin:     cfg.FastMinMph,
			ModerateMin: cfg.ModerateMinMph,
		},
	})

	predictionHandler := handler.NewPredictionHandler(service.NewPredictionService(eng))
	statsHandler := handler.NewStatsHandler(service.NewStatsService(
		repository.NewStatsRepository(db),
		repository.NewReadingRepository(db),
	))
	adminHandler := handler.NewAdminHandler(service.NewIngestService(
		ingest.NewLoader(db, cfg.DataDir),
	))

	r.GET("/health", statsHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.GET("/predict", predictionHandler.GetPrediction)
		api.GET("/stats", statsHandler.GetStats)

		admin := api.Group("/admin", middleware.JWTAuth(cfg.JWTSecret))
		{
			admin.POST("/ingest", adminHandler.TriggerIngest)
		}
	}

	return r
}
