package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PredictionsServed counts prediction requests by day type.
	PredictionsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_predictions_served_total",
		Help: "Total number of prediction requests served, by day type.",
	}, []string{"day_type"})

	// CatalogMisses counts aggregated segments dropped because the
	// segment catalog has no usable row for them.
	CatalogMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "traffic_catalog_misses_total",
		Help: "Total number of predicted segments dropped for missing catalog metadata.",
	})

	// MatchDuration observes historical-match query latency.
	MatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_match_duration_seconds",
		Help:    "Duration of historical-match queries.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
	})

	// ReadingsIngested counts rows loaded by the CSV ingest.
	ReadingsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "traffic_readings_ingested_total",
		Help: "Total number of readings loaded into the archive.",
	})
)
