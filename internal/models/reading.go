package models

// Reading represents one historical speed measurement for a road segment.
// Readings are immutable once ingested; the prediction engine only reads them.
type Reading struct {
	SegmentID string `json:"segment_id" db:"tmc_code"`

	// Measurement
	Timestamp         int64   `json:"timestamp" db:"measurement_tstamp"` // Unix timestamp
	Speed             float64 `json:"speed" db:"speed"`                  // Measured speed (mph)
	ReferenceSpeed    float64 `json:"reference_speed" db:"reference_speed"`
	TravelTimeSeconds float64 `json:"travel_time_seconds,omitempty" db:"travel_time_seconds"`
	Confidence        float64 `json:"confidence" db:"confidence"` // 0~1 measurement quality

	// Derived time features
	Hour      int    `json:"hour" db:"hour"`               // 0-23
	DayOfWeek int    `json:"day_of_week" db:"day_of_week"` // 0=Monday ... 6=Sunday
	Date      string `json:"date" db:"date"`               // YYYY-MM-DD

	// Ingest provenance
	Zipcode string `json:"zipcode,omitempty" db:"zipcode"`
}
