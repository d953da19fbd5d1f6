package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jengzang/traffic-backend-go/internal/models"
)

// StatsRepository computes summary statistics over the reading archive and
// the segment catalog.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// ArchiveStats returns record counts, the covered date range and archive
// averages, plus catalog totals.
func (r *StatsRepository) ArchiveStats(ctx context.Context) (*models.ArchiveStats, error) {
	var s models.ArchiveStats

	query := `SELECT
			COUNT(*),
			COUNT(DISTINCT tmc_code),
			COUNT(DISTINCT date),
			COALESCE(MIN(date), ''),
			COALESCE(MAX(date), ''),
			COALESCE(ROUND(AVG(speed), 2), 0),
			COALESCE(ROUND(AVG(confidence), 2), 0)
		FROM traffic`

	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.TotalRecords, &s.UniqueSegments, &s.UniqueDates,
		&s.EarliestDate, &s.LatestDate, &s.AvgSpeed, &s.AvgConfidence,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query archive stats: %v", ErrStoreUnavailable, err)
	}

	catalogQuery := `SELECT
			COUNT(*),
			COUNT(DISTINCT zip),
			COUNT(DISTINCT road)
		FROM tmc_locations`

	err = r.db.QueryRowContext(ctx, catalogQuery).Scan(
		&s.CatalogSegments, &s.UniqueZipcodes, &s.UniqueRoads,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query catalog stats: %v", ErrStoreUnavailable, err)
	}

	return &s, nil
}
