package ingest

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/jengzang/traffic-backend-go/internal/models"
	"github.com/jengzang/traffic-backend-go/internal/observability"
	"github.com/jengzang/traffic-backend-go/internal/spatial"
)

var zipcodePattern = regexp.MustCompile(`[-.](\d{5})`)

// ExtractZipcode pulls the zipcode out of a data filename such as
// Readings-30060.csv. Returns "" when no zipcode is embedded.
func ExtractZipcode(filename string) string {
	match := zipcodePattern.FindStringSubmatch(filename)
	if match == nil {
		return ""
	}
	return match[1]
}

// Loader fills the reading archive and the segment catalog from the CSV
// drops of the upstream provider. It runs offline or behind the admin
// endpoint, never on the prediction request path.
type Loader struct {
	db      *sql.DB
	dataDir string
}

// NewLoader creates a loader for the given data directory.
func NewLoader(db *sql.DB, dataDir string) *Loader {
	return &Loader{db: db, dataDir: dataDir}
}

// Summary reports what one ingest run loaded.
type Summary struct {
	ReadingFiles int   `json:"reading_files"`
	CatalogFiles int   `json:"catalog_files"`
	Readings     int64 `json:"readings"`
	Segments     int64 `json:"segments"`
	SkippedRows  int64 `json:"skipped_rows"`
}

// Run discovers and loads all Readings*.csv and TMC*Identification*.csv
// files under the data directory. Malformed rows are skipped and counted,
// not fatal.
func (l *Loader) Run(ctx context.Context) (*Summary, error) {
	readingFiles, err := filepath.Glob(filepath.Join(l.dataDir, "Readings*.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to discover reading files: %w", err)
	}
	catalogFiles, err := filepath.Glob(filepath.Join(l.dataDir, "TMC*Identification*.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to discover catalog files: %w", err)
	}
	if len(readingFiles) == 0 && len(catalogFiles) == 0 {
		return nil, fmt.Errorf("no CSV files found in %s", l.dataDir)
	}

	summary := &Summary{
		ReadingFiles: len(readingFiles),
		CatalogFiles: len(catalogFiles),
	}

	for _, path := range readingFiles {
		if err := l.loadReadings(ctx, path, summary); err != nil {
			return nil, err
		}
	}
	for _, path := range catalogFiles {
		if err := l.loadCatalog(ctx, path, summary); err != nil {
			return nil, err
		}
	}

	return summary, nil
}

func (l *Loader) loadReadings(ctx context.Context, path string, summary *Summary) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	zipcode := ExtractZipcode(filepath.Base(path))

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		log.Printf("Warning: skipping %s: %v", path, err)
		return nil
	}
	index := columnIndex(header)

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO traffic
		(tmc_code, measurement_tstamp, speed, reference_speed, travel_time_seconds,
		 confidence, hour, day_of_week, date, zipcode)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare reading insert: %w", err)
	}
	defer stmt.Close()

	var loaded int64
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			summary.SkippedRows++
			continue
		}

		reading, err := readingRow(index, record, zipcode)
		if err != nil {
			summary.SkippedRows++
			continue
		}

		_, err = stmt.ExecContext(ctx,
			reading.SegmentID, reading.Timestamp, reading.Speed, reading.ReferenceSpeed,
			reading.TravelTimeSeconds, reading.Confidence, reading.Hour,
			reading.DayOfWeek, reading.Date, reading.Zipcode,
		)
		if err != nil {
			return fmt.Errorf("failed to insert reading: %w", err)
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit readings from %s: %w", path, err)
	}

	summary.Readings += loaded
	observability.ReadingsIngested.Add(float64(loaded))
	log.Printf("Loaded %d readings from %s (zipcode %q)", loaded, filepath.Base(path), zipcode)
	return nil
}

func (l *Loader) loadCatalog(ctx context.Context, path string, summary *Summary) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		log.Printf("Warning: skipping %s: %v", path, err)
		return nil
	}
	index := columnIndex(header)

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO tmc_locations
		(tmc, road, direction, intersection, state, county, zip,
		 start_latitude, start_longitude, end_latitude, end_longitude, miles)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare catalog insert: %w", err)
	}
	defer stmt.Close()

	var loaded int64
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			summary.SkippedRows++
			continue
		}

		meta, ok := catalogRow(index, record)
		if !ok {
			summary.SkippedRows++
			continue
		}

		_, err = stmt.ExecContext(ctx,
			meta.SegmentID, meta.RoadName, meta.Direction, meta.Intersection,
			meta.State, meta.County, meta.Zip,
			meta.StartLat, meta.StartLon, meta.EndLat, meta.EndLon, meta.Miles,
		)
		if err != nil {
			return fmt.Errorf("failed to insert segment: %w", err)
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog from %s: %w", path, err)
	}

	summary.Segments += loaded
	log.Printf("Loaded %d road segments from %s", loaded, filepath.Base(path))
	return nil
}

// catalogRow converts one TMC identification record. Rows without a TMC
// code or parseable coordinates are rejected. A missing miles column is
// backfilled from the segment's great-circle length.
func catalogRow(index map[string]int, record []string) (models.SegmentMetadata, bool) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	segmentID := field("tmc")
	if segmentID == "" {
		return models.SegmentMetadata{}, false
	}

	startLat, err1 := strconv.ParseFloat(field("start_latitude"), 64)
	startLon, err2 := strconv.ParseFloat(field("start_longitude"), 64)
	endLat, err3 := strconv.ParseFloat(field("end_latitude"), 64)
	endLon, err4 := strconv.ParseFloat(field("end_longitude"), 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return models.SegmentMetadata{}, false
	}

	miles, err := strconv.ParseFloat(field("miles"), 64)
	if err != nil || miles <= 0 {
		miles = spatial.SegmentMiles(startLat, startLon, endLat, endLon)
	}

	return models.SegmentMetadata{
		SegmentID:    segmentID,
		RoadName:     field("road"),
		Direction:    field("direction"),
		Intersection: field("intersection"),
		State:        field("state"),
		County:       field("county"),
		Zip:          field("zip"),
		StartLat:     startLat,
		StartLon:     startLon,
		EndLat:       endLat,
		EndLon:       endLon,
		Miles:        miles,
	}, true
}
