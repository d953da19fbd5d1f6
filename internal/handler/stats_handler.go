package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/traffic-backend-go/internal/repository"
	"github.com/jengzang/traffic-backend-go/internal/service"
	"github.com/jengzang/traffic-backend-go/pkg/response"
)

// StatsHandler handles HTTP requests for archive statistics and health
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats handles GET /api/v1/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.service.ArchiveStats(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			response.ServiceUnavailable(c, "Traffic archive unavailable, retry later")
			return
		}
		response.InternalError(c, "Failed to get archive statistics")
		return
	}

	response.Success(c, stats)
}

// Health handles GET /health
func (h *StatsHandler) Health(c *gin.Context) {
	total, err := h.service.TotalReadings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"database":      "connected",
		"total_records": total,
	})
}
