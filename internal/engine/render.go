package engine

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/jengzang/traffic-backend-go/internal/models"
)

// The renderings below are pure transformations of one in-memory
// prediction slice; none of them re-query the store.

// csvHeader is the column order of the tabular renderings.
var csvHeader = []string{
	"segment_id", "road_name", "direction",
	"predicted_speed", "reference_speed",
	"confidence_mean", "confidence_std", "sample_size", "speed_class",
	"start_lat", "start_lon", "end_lat", "end_lon",
}

// RenderRows renders predictions as display rows, header first.
func RenderRows(predictions []models.SegmentPrediction) [][]string {
	rows := make([][]string, 0, len(predictions)+1)
	rows = append(rows, csvHeader)
	for _, p := range predictions {
		rows = append(rows, []string{
			p.SegmentID, p.RoadName, p.Direction,
			formatFloat(p.PredictedSpeed), formatFloat(p.ReferenceSpeed),
			formatFloat(p.ConfidenceMean), formatFloat(p.ConfidenceStd),
			strconv.Itoa(p.SampleSize), p.SpeedClass,
			formatFloat(p.StartLat), formatFloat(p.StartLon),
			formatFloat(p.EndLat), formatFloat(p.EndLon),
		})
	}
	return rows
}

// RenderCSV renders predictions as delimited text with a header row.
func RenderCSV(predictions []models.SegmentPrediction) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.WriteAll(RenderRows(predictions)); err != nil {
		return "", fmt.Errorf("failed to render csv: %w", err)
	}
	return sb.String(), nil
}

// Feature is one GeoJSON feature carrying a segment prediction.
type Feature struct {
	Type       string                   `json:"type"`
	Geometry   Geometry                 `json:"geometry"`
	Properties models.SegmentPrediction `json:"properties"`
}

// Geometry is a GeoJSON point geometry, coordinates [lon, lat].
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// FeatureCollection is a GeoJSON feature collection of predictions.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// RenderGeoJSON renders predictions as a feature collection. Each
// feature's geometry is the segment's start coordinate; the properties
// carry the full prediction record.
func RenderGeoJSON(predictions []models.SegmentPrediction) FeatureCollection {
	features := make([]Feature, 0, len(predictions))
	for _, p := range predictions {
		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: [2]float64{p.StartLon, p.StartLat},
			},
			Properties: p,
		})
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
