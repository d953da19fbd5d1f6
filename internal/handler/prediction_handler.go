package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/traffic-backend-go/internal/engine"
	"github.com/jengzang/traffic-backend-go/internal/models"
	"github.com/jengzang/traffic-backend-go/internal/repository"
	"github.com/jengzang/traffic-backend-go/internal/service"
	"github.com/jengzang/traffic-backend-go/pkg/response"
)

// PredictionHandler handles HTTP requests for traffic predictions
type PredictionHandler struct {
	service *service.PredictionService
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(service *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// GetPrediction handles GET /api/v1/predict
//
// Query parameters: day_of_week (0=Monday..6), hour (0-23), day_type
// (normal|holiday|special_event, default normal), format
// (geojson|csv|json, default geojson).
func (h *PredictionHandler) GetPrediction(c *gin.Context) {
	dayOfWeek, err := strconv.Atoi(c.Query("day_of_week"))
	if err != nil {
		response.BadRequest(c, "day_of_week must be an integer between 0 (Monday) and 6 (Sunday)")
		return
	}
	hour, err := strconv.Atoi(c.Query("hour"))
	if err != nil {
		response.BadRequest(c, "hour must be an integer between 0 and 23")
		return
	}

	format := c.DefaultQuery("format", "geojson")
	switch format {
	case "geojson", "csv", "json":
	default:
		response.BadRequest(c, "format must be one of geojson, csv, json")
		return
	}

	req := models.PredictionRequest{
		DayOfWeek: dayOfWeek,
		Hour:      hour,
		DayType:   models.DayType(c.DefaultQuery("day_type", string(models.DayTypeNormal))),
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Predict(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			response.ServiceUnavailable(c, "Traffic archive unavailable, retry later")
			return
		}
		response.InternalError(c, "Failed to compute predictions")
		return
	}

	metadata := gin.H{
		"day_of_week":             req.DayOfWeek,
		"hour":                    req.Hour,
		"day_type":                req.DayType,
		"segments_count":          len(result.Predictions),
		"historical_records_used": result.HistoricalRecords,
		"map_center":              result.Center,
	}

	switch format {
	case "csv":
		text, err := engine.RenderCSV(result.Predictions)
		if err != nil {
			response.InternalError(c, "Failed to render predictions")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="predictions.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(text))

	case "json":
		response.Success(c, gin.H{
			"predictions": result.Predictions,
			"metadata":    metadata,
		})

	default:
		collection := engine.RenderGeoJSON(result.Predictions)
		c.JSON(http.StatusOK, gin.H{
			"type":     collection.Type,
			"features": collection.Features,
			"metadata": metadata,
		})
	}
}
