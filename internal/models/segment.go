package models

// SegmentMetadata represents the static description of one physical road
// segment, keyed by its TMC code. One row per segment, immutable.
type SegmentMetadata struct {
	SegmentID    string `json:"segment_id" db:"tmc"`
	RoadName     string `json:"road_name" db:"road"`
	Direction    string `json:"direction" db:"direction"`
	Intersection string `json:"intersection,omitempty" db:"intersection"`
	State        string `json:"state,omitempty" db:"state"`
	County       string `json:"county,omitempty" db:"county"`
	Zip          string `json:"zip,omitempty" db:"zip"`

	// Geometry
	StartLat float64 `json:"start_lat" db:"start_latitude"`
	StartLon float64 `json:"start_lon" db:"start_longitude"`
	EndLat   float64 `json:"end_lat" db:"end_latitude"`
	EndLon   float64 `json:"end_lon" db:"end_longitude"`
	Miles    float64 `json:"miles,omitempty" db:"miles"`
}
