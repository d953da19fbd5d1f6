package engine

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jengzang/traffic-backend-go/internal/database"
)

// newTestDB opens an in-memory archive with the production schema. The
// pool is pinned to one connection so every query sees the same memory
// database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Bootstrap(db))
	return db
}

func seedReading(t *testing.T, db *sql.DB, segmentID string, dayOfWeek, hour int, speed, reference, confidence float64) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO traffic
		(tmc_code, measurement_tstamp, speed, reference_speed, travel_time_seconds,
		 confidence, hour, day_of_week, date, zipcode)
		VALUES (?, 0, ?, ?, 60, ?, ?, ?, '2025-10-06', '30060')`,
		segmentID, speed, reference, confidence, hour, dayOfWeek)
	require.NoError(t, err)
}

func seedSegment(t *testing.T, db *sql.DB, segmentID, road, direction string) {
	t.Helper()
	_, err := db.Exec(`INSERT OR REPLACE INTO tmc_locations
		(tmc, road, direction, intersection, state, county, zip,
		 start_latitude, start_longitude, end_latitude, end_longitude, miles)
		VALUES (?, ?, ?, 'Main St', 'GA', 'Cobb', '30060', 33.95, -84.55, 33.96, -84.54, 0.8)`,
		segmentID, road, direction)
	require.NoError(t, err)
}
