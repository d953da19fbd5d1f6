// Package engine implements the traffic prediction core: historical
// matching, confidence-weighted aggregation, day-type blending and result
// formatting. The engine is synchronous and stateless per request; its
// only shared state is the read-only store handle behind the
// repositories.
package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/jengzang/traffic-backend-go/internal/models"
	"github.com/jengzang/traffic-backend-go/internal/observability"
	"github.com/jengzang/traffic-backend-go/internal/repository"
	"github.com/jengzang/traffic-backend-go/internal/spatial"
)

// Options tune the engine's policies.
type Options struct {
	// BlendWeight is the normal-pattern share for special-event blends.
	BlendWeight float64
	// Thresholds is the speed-classification policy.
	Thresholds Thresholds
}

// Engine wires the matcher, aggregator, blender and formatter into one
// prediction pipeline.
type Engine struct {
	matcher    *Matcher
	aggregator *Aggregator
	blender    *Blender
	formatter  *Formatter
}

// Result is the outcome of one prediction request.
type Result struct {
	Predictions []models.SegmentPrediction
	// HistoricalRecords is the number of raw readings matched across all
	// subsets, before aggregation.
	HistoricalRecords int
	// Center is the geographic centroid of the predicted segments' start
	// points, for map framing. Zero when no segments matched.
	Center spatial.Point
}

// New creates an engine over a shared read-only database handle.
func New(db *sql.DB, opts Options) *Engine {
	return &Engine{
		matcher:    NewMatcher(repository.NewReadingRepository(db)),
		aggregator: NewAggregator(),
		blender:    NewBlender(opts.BlendWeight),
		formatter:  NewFormatter(repository.NewCatalogRepository(db), opts.Thresholds),
	}
}

// DefaultOptions returns the standard engine policies.
func DefaultOptions() Options {
	return Options{
		BlendWeight: DefaultBlendWeight,
		Thresholds:  DefaultThresholds,
	}
}

// Predict runs the full pipeline for one request. A request that matches
// no historical readings yields an empty prediction slice, not an error;
// callers distinguish that from store failures by the error value.
func (e *Engine) Predict(ctx context.Context, req models.PredictionRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	subsets, err := e.matcher.Match(ctx, req)
	if err != nil {
		return nil, err
	}
	observability.MatchDuration.Observe(time.Since(start).Seconds())

	matched := 0
	aggregates := make(map[string]Aggregate, len(subsets))
	for _, subset := range subsets {
		matched += len(subset.Readings)
		aggregates[subset.Tag] = e.aggregator.Reduce(subset.Readings)
	}

	merged := aggregates[SubsetNormal]
	if req.DayType == models.DayTypeHoliday {
		merged = aggregates[SubsetHoliday]
	}
	if req.DayType == models.DayTypeSpecialEvent {
		merged = e.blender.Blend(aggregates[SubsetNormal], aggregates[SubsetHoliday])
	}

	predictions, err := e.formatter.Format(ctx, merged)
	if err != nil {
		return nil, err
	}

	observability.PredictionsServed.WithLabelValues(string(req.DayType)).Inc()

	return &Result{
		Predictions:       predictions,
		HistoricalRecords: matched,
		Center:            predictionCenter(predictions),
	}, nil
}

func predictionCenter(predictions []models.SegmentPrediction) spatial.Point {
	if len(predictions) == 0 {
		return spatial.Point{}
	}
	points := make([]spatial.Point, len(predictions))
	for i, p := range predictions {
		points[i] = spatial.Point{Lat: p.StartLat, Lon: p.StartLon}
	}
	return spatial.Centroid(points)
}
