package service

import (
	"context"

	"github.com/jengzang/traffic-backend-go/internal/ingest"
)

// IngestService triggers CSV loads behind the admin API.
type IngestService struct {
	loader *ingest.Loader
}

// NewIngestService creates a new ingest service
func NewIngestService(loader *ingest.Loader) *IngestService {
	return &IngestService{loader: loader}
}

// Run loads all CSV drops from the configured data directory.
func (s *IngestService) Run(ctx context.Context) (*ingest.Summary, error) {
	return s.loader.Run(ctx)
}
