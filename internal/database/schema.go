package database

import (
	"database/sql"
	"fmt"
)

// Schema statements for the reading archive and the segment catalog,
// mirrored from the CSV source columns. The hour / day_of_week / date
// columns are derived at ingest time so match queries stay index-only.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS traffic (
		tmc_code TEXT NOT NULL,
		measurement_tstamp INTEGER NOT NULL,
		speed REAL NOT NULL,
		reference_speed REAL NOT NULL,
		travel_time_seconds REAL,
		confidence REAL NOT NULL,
		hour INTEGER NOT NULL,
		day_of_week INTEGER NOT NULL,
		date TEXT NOT NULL,
		zipcode TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS tmc_locations (
		tmc TEXT PRIMARY KEY,
		road TEXT,
		direction TEXT,
		intersection TEXT,
		state TEXT,
		county TEXT,
		zip TEXT,
		start_latitude REAL,
		start_longitude REAL,
		end_latitude REAL,
		end_longitude REAL,
		miles REAL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_traffic_hour ON traffic(hour)`,
	`CREATE INDEX IF NOT EXISTS idx_traffic_dow ON traffic(day_of_week)`,
	`CREATE INDEX IF NOT EXISTS idx_traffic_tmc ON traffic(tmc_code)`,
	`CREATE INDEX IF NOT EXISTS idx_traffic_tstamp ON traffic(measurement_tstamp)`,
}

// Bootstrap creates the archive tables and indexes if they do not exist.
func Bootstrap(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to bootstrap schema: %w", err)
		}
	}
	return nil
}
