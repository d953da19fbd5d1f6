package engine

import (
	"context"
	"log"
	"math"
	"sort"

	"github.com/jengzang/traffic-backend-go/internal/models"
	"github.com/jengzang/traffic-backend-go/internal/observability"
	"github.com/jengzang/traffic-backend-go/internal/repository"
)

// Formatter joins an aggregate with the segment catalog and produces the
// final prediction records. Output is sorted by segment ID ascending so
// identical inputs always yield an identical sequence, independent of map
// iteration order.
type Formatter struct {
	catalog    *repository.CatalogRepository
	thresholds Thresholds
}

// NewFormatter creates a formatter with the given classification policy.
func NewFormatter(catalog *repository.CatalogRepository, thresholds Thresholds) *Formatter {
	return &Formatter{catalog: catalog, thresholds: thresholds}
}

// Format inner-joins the aggregate with the catalog. Segments missing
// from the catalog are dropped and logged as a data-integrity warning;
// the join miss is never a hard failure.
func (f *Formatter) Format(ctx context.Context, aggregate Aggregate) ([]models.SegmentPrediction, error) {
	ids := make([]string, 0, len(aggregate))
	for segmentID := range aggregate {
		ids = append(ids, segmentID)
	}
	sort.Strings(ids)

	metadata, err := f.catalog.GetBySegmentIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	predictions := make([]models.SegmentPrediction, 0, len(ids))
	for _, segmentID := range ids {
		meta, ok := metadata[segmentID]
		if !ok {
			log.Printf("Warning: segment %s has readings but no catalog entry, dropped from output", segmentID)
			observability.CatalogMisses.Inc()
			continue
		}

		agg := aggregate[segmentID]
		predictions = append(predictions, models.SegmentPrediction{
			SegmentID:      segmentID,
			RoadName:       meta.RoadName,
			Direction:      meta.Direction,
			PredictedSpeed: round(agg.PredictedSpeed, 2),
			ReferenceSpeed: round(agg.ReferenceSpeed, 2),
			ConfidenceMean: round(agg.ConfidenceMean, 3),
			ConfidenceStd:  round(agg.ConfidenceStd, 3),
			SampleSize:     agg.SampleSize,
			SpeedClass:     f.thresholds.Classify(agg.PredictedSpeed),
			StartLat:       meta.StartLat,
			StartLon:       meta.StartLon,
			EndLat:         meta.EndLat,
			EndLon:         meta.EndLon,
		})
	}

	return predictions, nil
}

// round keeps the exported aggregates stable across platforms.
func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
