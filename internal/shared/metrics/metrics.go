// Package metrics exposes Prometheus collectors for derivative delivery.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "image_derivatives"

// Delivery outcomes used as the result label.
const (
	ResultHit        = "hit"
	ResultGenerated  = "generated"
	ResultInProgress = "in_progress"
	ResultNotFound   = "not_found"
	ResultMissing    = "missing_source"
	ResultDenied     = "denied"
	ResultFailed     = "failed"
)

var (
	// RequestsTotal counts delivery requests by outcome.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Derivative delivery requests by style and result",
		},
		[]string{"style", "result"},
	)

	// GenerationDuration measures effect pipeline plus write time.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_seconds",
			Help:      "Time spent generating a derivative",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"style", "status"},
	)

	// LockContentionTotal counts requests answered with 503 because another worker held the lock.
	LockContentionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lock_contention_total",
			Help:      "Derivative lock acquisitions that lost to another holder",
		},
		[]string{"style"},
	)

	// FlushedTotal counts derivatives removed by flush operations.
	FlushedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flushed_total",
			Help:      "Derivative files removed by flushes",
		},
	)
)

func RecordRequest(style, result string) {
	RequestsTotal.WithLabelValues(style, result).Inc()
}

func RecordGeneration(style, status string, seconds float64) {
	GenerationDuration.WithLabelValues(style, status).Observe(seconds)
}

func RecordLockContention(style string) {
	LockContentionTotal.WithLabelValues(style).Inc()
}

func RecordFlushed(n int) {
	FlushedTotal.Add(float64(n))
}
