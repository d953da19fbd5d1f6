package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jengzang/traffic-backend-go/internal/models"
)

// Readings CSVs arrive in two timestamp dialects depending on the export
// tool that produced them.
var timestampLayouts = []string{
	"2006-01-02 15:04:05", // ISO export
	"1/2/2006 15:04",      // US export
}

// ParseTimestamp parses a reading timestamp in either supported dialect.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", value)
}

// DayOfWeek converts a timestamp to the archive's weekday convention,
// 0=Monday through 6=Sunday.
func DayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// columnIndex maps a CSV header row to column positions, lowercased.
func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}

// readingRow converts one Readings CSV record into a Reading, deriving
// hour, day-of-week and date from the timestamp. Some exports name the
// confidence column confidence_score.
func readingRow(index map[string]int, record []string, zipcode string) (models.Reading, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	ts, err := ParseTimestamp(field("measurement_tstamp"))
	if err != nil {
		return models.Reading{}, err
	}

	speed, err := strconv.ParseFloat(field("speed"), 64)
	if err != nil {
		return models.Reading{}, fmt.Errorf("bad speed: %w", err)
	}

	reference, err := strconv.ParseFloat(field("reference_speed"), 64)
	if err != nil {
		return models.Reading{}, fmt.Errorf("bad reference_speed: %w", err)
	}

	confidenceField := field("confidence_score")
	if confidenceField == "" {
		confidenceField = field("confidence")
	}
	confidence, err := strconv.ParseFloat(confidenceField, 64)
	if err != nil {
		return models.Reading{}, fmt.Errorf("bad confidence: %w", err)
	}

	// Optional column
	travelTime, _ := strconv.ParseFloat(field("travel_time_seconds"), 64)

	segmentID := field("tmc_code")
	if segmentID == "" {
		return models.Reading{}, fmt.Errorf("missing tmc_code")
	}

	return models.Reading{
		SegmentID:         segmentID,
		Timestamp:         ts.Unix(),
		Speed:             speed,
		ReferenceSpeed:    reference,
		TravelTimeSeconds: travelTime,
		Confidence:        confidence,
		Hour:              ts.Hour(),
		DayOfWeek:         DayOfWeek(ts),
		Date:              ts.Format("2006-01-02"),
		Zipcode:           zipcode,
	}, nil
}
