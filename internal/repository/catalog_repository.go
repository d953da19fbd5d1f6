package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jengzang/traffic-backend-go/internal/models"
)

// CatalogRepository handles read-only queries against the segment catalog.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetBySegmentIDs retrieves metadata for the given segment IDs, keyed by
// segment ID. Rows with incomplete geometry are skipped; callers treat a
// missing key as a catalog miss.
func (r *CatalogRepository) GetBySegmentIDs(ctx context.Context, ids []string) (map[string]models.SegmentMetadata, error) {
	if len(ids) == 0 {
		return map[string]models.SegmentMetadata{}, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]

	query := `SELECT tmc, road, direction, intersection, state, county, zip,
		start_latitude, start_longitude, end_latitude, end_longitude, miles
		FROM tmc_locations
		WHERE tmc IN (` + placeholders + `)`

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query segment catalog: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	metadata := make(map[string]models.SegmentMetadata, len(ids))
	for rows.Next() {
		var m models.SegmentMetadata
		var road, direction, intersection, state, county, zip sql.NullString
		var startLat, startLon, endLat, endLon, miles sql.NullFloat64

		err := rows.Scan(
			&m.SegmentID, &road, &direction, &intersection, &state, &county, &zip,
			&startLat, &startLon, &endLat, &endLon, &miles,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan segment metadata: %w", err)
		}

		// Segments without full geometry cannot be rendered
		if !startLat.Valid || !startLon.Valid || !endLat.Valid || !endLon.Valid {
			continue
		}

		m.RoadName = road.String
		m.Direction = direction.String
		m.Intersection = intersection.String
		m.State = state.String
		m.County = county.String
		m.Zip = zip.String
		m.StartLat = startLat.Float64
		m.StartLon = startLon.Float64
		m.EndLat = endLat.Float64
		m.EndLon = endLon.Float64
		m.Miles = miles.Float64

		metadata[m.SegmentID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate segment catalog: %v", ErrStoreUnavailable, err)
	}

	return metadata, nil
}

// CountSegments returns the total number of cataloged segments.
func (r *CatalogRepository) CountSegments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tmc_locations").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count segments: %v", ErrStoreUnavailable, err)
	}
	return count, nil
}
