package models

// SegmentPrediction is the engine output for one road segment: the
// aggregated historical statistics joined with the segment's metadata.
// Instances are built per request and discarded with the response.
type SegmentPrediction struct {
	SegmentID string `json:"segment_id"`
	RoadName  string `json:"road_name"`
	Direction string `json:"direction"`

	PredictedSpeed float64 `json:"predicted_speed"` // confidence-weighted mean (mph)
	ReferenceSpeed float64 `json:"reference_speed"` // mean free-flow speed (mph)
	ConfidenceMean float64 `json:"confidence_mean"` // 0~1
	ConfidenceStd  float64 `json:"confidence_std"`
	SampleSize     int     `json:"sample_size"` // matched readings behind this prediction

	SpeedClass string `json:"speed_class"` // fast / moderate / slow, for client coloring

	// Geometry, joined from SegmentMetadata
	StartLat float64 `json:"start_lat"`
	StartLon float64 `json:"start_lon"`
	EndLat   float64 `json:"end_lat"`
	EndLon   float64 `json:"end_lon"`
}

// ArchiveStats summarizes the historical reading archive and the segment
// catalog, for the stats endpoint and health reporting.
type ArchiveStats struct {
	TotalRecords   int64   `json:"total_records"`
	UniqueSegments int64   `json:"unique_segments"`
	UniqueDates    int64   `json:"unique_dates"`
	EarliestDate   string  `json:"earliest_date"`
	LatestDate     string  `json:"latest_date"`
	AvgSpeed       float64 `json:"avg_speed"`
	AvgConfidence  float64 `json:"avg_confidence"`

	CatalogSegments int64 `json:"catalog_segments"`
	UniqueZipcodes  int64 `json:"unique_zipcodes"`
	UniqueRoads     int64 `json:"unique_roads"`
}
