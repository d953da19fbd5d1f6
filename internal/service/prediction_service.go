package service

import (
	"context"

	"github.com/jengzang/traffic-backend-go/internal/engine"
	"github.com/jengzang/traffic-backend-go/internal/models"
)

// PredictionService handles business logic for traffic predictions
type PredictionService struct {
	engine *engine.Engine
}

// NewPredictionService creates a new prediction service
func NewPredictionService(eng *engine.Engine) *PredictionService {
	return &PredictionService{engine: eng}
}

// Predict runs the prediction pipeline for a validated request.
func (s *PredictionService) Predict(ctx context.Context, req models.PredictionRequest) (*engine.Result, error) {
	return s.engine.Predict(ctx, req)
}
