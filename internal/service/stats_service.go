package service

import (
	"context"

	"github.com/jengzang/traffic-backend-go/internal/models"
	"github.com/jengzang/traffic-backend-go/internal/repository"
)

// StatsService handles business logic for archive statistics
type StatsService struct {
	stats    *repository.StatsRepository
	readings *repository.ReadingRepository
}

// NewStatsService creates a new stats service
func NewStatsService(stats *repository.StatsRepository, readings *repository.ReadingRepository) *StatsService {
	return &StatsService{stats: stats, readings: readings}
}

// ArchiveStats summarizes the reading archive and segment catalog.
func (s *StatsService) ArchiveStats(ctx context.Context) (*models.ArchiveStats, error) {
	return s.stats.ArchiveStats(ctx)
}

// TotalReadings reports the archive row count, used by the health check.
func (s *StatsService) TotalReadings(ctx context.Context) (int64, error) {
	return s.readings.CountReadings(ctx)
}
