package engine

import (
	"github.com/jengzang/traffic-backend-go/internal/models"
	"github.com/jengzang/traffic-backend-go/internal/stats"
)

// SegmentAggregate holds the per-segment statistics reduced from one
// reading subset.
type SegmentAggregate struct {
	PredictedSpeed float64
	ReferenceSpeed float64
	ConfidenceMean float64
	ConfidenceStd  float64
	SampleSize     int
}

// Aggregate maps segment IDs to their reduced statistics. Segments with
// zero matched readings never appear.
type Aggregate map[string]SegmentAggregate

// Aggregator reduces a reading subset to one aggregate per segment using
// confidence-weighted averaging: low-confidence readings contribute
// proportionally less to the predicted speed.
type Aggregator struct{}

// NewAggregator creates a new aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Reduce groups readings by segment and computes the per-segment
// statistics. An empty subset yields an empty aggregate.
func (a *Aggregator) Reduce(readings []models.Reading) Aggregate {
	type group struct {
		speeds      []float64
		references  []float64
		confidences []float64
	}

	groups := make(map[string]*group)
	for _, r := range readings {
		g, ok := groups[r.SegmentID]
		if !ok {
			g = &group{}
			groups[r.SegmentID] = g
		}
		g.speeds = append(g.speeds, r.Speed)
		g.references = append(g.references, r.ReferenceSpeed)
		g.confidences = append(g.confidences, r.Confidence)
	}

	aggregate := make(Aggregate, len(groups))
	for segmentID, g := range groups {
		aggregate[segmentID] = SegmentAggregate{
			// WeightedMean falls back to the unweighted mean when all
			// confidences are zero.
			PredictedSpeed: stats.WeightedMean(g.speeds, g.confidences),
			ReferenceSpeed: stats.Mean(g.references),
			ConfidenceMean: stats.Mean(g.confidences),
			ConfidenceStd:  stats.StdDev(g.confidences),
			SampleSize:     len(g.speeds),
		}
	}

	return aggregate
}
