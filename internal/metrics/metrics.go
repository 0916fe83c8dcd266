// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "folio"

var (
	registerOnce sync.Once

	searchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of catalog searches by display language",
	}, []string{"lang"})
	searchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Histogram of catalog search durations in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12), // 100µs up to ~200ms
	})
	searchResults = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_results",
		Help:      "Number of records returned per search",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
	})
	lookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Total number of record lookups by kind and result (hit, miss)",
	}, []string{"kind", "result"})

	contentRecords = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "content_records",
		Help:      "Current number of records in the published catalog by kind",
	}, []string{"kind"})
	contentReloads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_reloads_total",
		Help:      "Total number of content reloads by status (success, failure)",
	}, []string{"status"})

	memoryAllocGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "process_memory_alloc_bytes",
		Help:      "Current process memory allocation (runtime.Alloc)",
	})
	goroutinesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "process_goroutines",
		Help:      "Number of currently running goroutines",
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(searchesTotal, searchDuration, searchResults, lookupsTotal,
			contentRecords, contentReloads, memoryAllocGauge, goroutinesGauge)
	})
}

// Search helpers
func ObserveSearch(lang string, d time.Duration, results int) {
	searchesTotal.WithLabelValues(lang).Inc()
	searchDuration.Observe(d.Seconds())
	searchResults.Observe(float64(results))
}

// IncLookup records a single-record lookup; found selects the result label.
func IncLookup(kind string, found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	lookupsTotal.WithLabelValues(kind, result).Inc()
}

// Content helpers
func SetContentRecords(kind string, n int) { contentRecords.WithLabelValues(kind).Set(float64(n)) }
func IncReloadSucceeded()                  { contentReloads.WithLabelValues("success").Inc() }
func IncReloadFailed()                     { contentReloads.WithLabelValues("failure").Inc() }

// Gauges
func SetMemoryAlloc(b uint64) { memoryAllocGauge.Set(float64(b)) }
func SetGoroutines(n int)     { goroutinesGauge.Set(float64(n)) }
