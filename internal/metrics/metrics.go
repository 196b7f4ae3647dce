// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: c81e4f20-6b7a-4d93-a2c5-0e9f3b6d1a78

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	reconciliations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "isbn_catalog",
		Name:      "reconciliations_total",
		Help:      "Total number of reconciliations by terminal state",
	}, []string{"state"})
	reconciliationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "isbn_catalog",
		Name:      "reconciliation_duration_seconds",
		Help:      "Histogram of end-to-end reconciliation durations in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms up to ~40s
	})

	providerRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "isbn_catalog",
		Name:      "provider_requests_total",
		Help:      "Total number of metadata provider lookups by provider and result",
	}, []string{"provider", "result"})
	providerDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "isbn_catalog",
		Name:      "provider_request_duration_seconds",
		Help:      "Histogram of metadata provider lookup durations in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.05, 1.6, 10),
	}, []string{"provider"})

	booksGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "isbn_catalog",
		Name:      "books_total",
		Help:      "Current total number of books in the catalog",
	})
	authorsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "isbn_catalog",
		Name:      "authors_total",
		Help:      "Current total number of authors in the catalog",
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(reconciliations, reconciliationDuration,
			providerRequests, providerDuration, booksGauge, authorsGauge)
	})
}

// Reconciliation helpers
func IncReconciliation(state string) { reconciliations.WithLabelValues(state).Inc() }
func ObserveReconciliationDuration(d time.Duration) {
	reconciliationDuration.Observe(d.Seconds())
}

// Provider helpers. result is one of "hit", "miss" or "error".
func IncProviderRequest(provider, result string) {
	providerRequests.WithLabelValues(provider, result).Inc()
}
func ObserveProviderDuration(provider string, d time.Duration) {
	providerDuration.WithLabelValues(provider).Observe(d.Seconds())
}

// Gauges
func SetBooks(n int)   { booksGauge.Set(float64(n)) }
func SetAuthors(n int) { authorsGauge.Set(float64(n)) }
