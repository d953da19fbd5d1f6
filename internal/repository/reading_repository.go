package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jengzang/traffic-backend-go/internal/models"
)

// ReadingRepository handles read-only queries against the historical
// reading archive. No writes happen on the request path.
type ReadingRepository struct {
	db *sql.DB
}

// NewReadingRepository creates a new reading repository
func NewReadingRepository(db *sql.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

const readingColumns = `tmc_code, measurement_tstamp, speed, reference_speed, confidence, hour, day_of_week, date`

// MatchNormal retrieves all readings recorded on the given weekday at the
// given hour.
func (r *ReadingRepository) MatchNormal(ctx context.Context, dayOfWeek, hour int) ([]models.Reading, error) {
	query := `SELECT ` + readingColumns + `
		FROM traffic
		WHERE day_of_week = ? AND hour = ?`

	return r.queryReadings(ctx, query, dayOfWeek, hour)
}

// MatchHoliday retrieves readings from the weekend / Friday-evening
// pattern at the given hour. Holidays are approximated by that pattern
// rather than modeled directly.
func (r *ReadingRepository) MatchHoliday(ctx context.Context, hour int) ([]models.Reading, error) {
	query := `SELECT ` + readingColumns + `
		FROM traffic
		WHERE (
			(day_of_week = 4 AND hour >= 17)
			OR day_of_week IN (5, 6)
		) AND hour = ?`

	return r.queryReadings(ctx, query, hour)
}

// CountReadings returns the total number of archived readings.
func (r *ReadingRepository) CountReadings(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM traffic").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count readings: %v", ErrStoreUnavailable, err)
	}
	return count, nil
}

func (r *ReadingRepository) queryReadings(ctx context.Context, query string, args ...interface{}) ([]models.Reading, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query readings: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var readings []models.Reading
	for rows.Next() {
		var rd models.Reading
		err := rows.Scan(
			&rd.SegmentID, &rd.Timestamp, &rd.Speed, &rd.ReferenceSpeed,
			&rd.Confidence, &rd.Hour, &rd.DayOfWeek, &rd.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reading: %w", err)
		}
		readings = append(readings, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate readings: %v", ErrStoreUnavailable, err)
	}

	return readings, nil
}
