package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StrategyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_strategy_duration_seconds",
			Help:    "Duration of a single scoring strategy run in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)

	StrategyFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_strategy_failures_total",
			Help: "Total number of scoring strategy runs that failed and contributed nothing",
		},
		[]string{"strategy"},
	)

	// Fallbacks counts requests served by a fallback stage instead of fused scores.
	Fallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_fallbacks_total",
			Help: "Total number of recommendation requests that used a fallback stage",
		},
		[]string{"stage"}, // "active_catalog", "pad"
	)

	SimilarityEdgesWritten = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "similarity_edges_written",
			Help: "Number of similarity edges written by the last recomputation, per recommendation type",
		},
		[]string{"type"},
	)

	RecomputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "similarity_recompute_duration_seconds",
			Help:    "Duration of offline similarity recomputation runs in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 300, 900},
		},
	)

	RecomputeErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "similarity_recompute_errors_total",
			Help: "Total number of offline similarity recomputation runs that failed",
		},
	)

	BehaviorsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "behaviors_recorded_total",
			Help: "Total number of behavior events appended to the log",
		},
		[]string{"behavior_type"},
	)
)

// RecordStrategyRun records the duration of a strategy run and counts it as failed when err is set.
func RecordStrategyRun(strategy string, duration time.Duration, err error) {
	StrategyDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	if err != nil {
		StrategyFailures.WithLabelValues(strategy).Inc()
	}
}

func RecordFallback(stage string) {
	Fallbacks.WithLabelValues(stage).Inc()
}

// RecordRecompute records a recomputation run. Edge counts are only updated for successful runs.
func RecordRecompute(duration time.Duration, edgesByType map[string]int, err error) {
	RecomputeDuration.Observe(duration.Seconds())
	if err != nil {
		RecomputeErrors.Inc()
		return
	}
	for recType, count := range edgesByType {
		SimilarityEdgesWritten.WithLabelValues(recType).Set(float64(count))
	}
}

func RecordBehavior(behaviorType string) {
	BehaviorsRecorded.WithLabelValues(behaviorType).Inc()
}
