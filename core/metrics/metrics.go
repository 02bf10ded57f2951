package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upstream Metrics
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_upstream_requests_total",
			Help: "Total number of upstream catalog requests",
		},
		[]string{"operation", "outcome"}, // outcome: "ok", "error", "not_found", "rejected"
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_upstream_request_duration_seconds",
			Help:    "Duration of upstream catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Response Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "Total number of upstream response cache hits",
		},
		[]string{"driver"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_misses_total",
			Help: "Total number of upstream response cache misses",
		},
		[]string{"driver"},
	)

	// Engine Metrics
	EngineRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_engine_requests_total",
			Help: "Total number of load-more requests by outcome",
		},
		[]string{"engine", "change"},
	)

	EngineBatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_engine_batch_duration_seconds",
			Help:    "Duration of a drained batch including all concurrent fetches",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"engine"},
	)

	EngineStaleResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_engine_stale_results_total",
			Help: "Total number of async results discarded because the engine was reset",
		},
		[]string{"engine", "stage"}, // stage: "resolve", "drain", "enrich"
	)

	EngineRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_engine_accumulated_records",
			Help: "Number of records accumulated by the most recently updated engine of a kind",
		},
		[]string{"engine"},
	)

	// Enrichment Metrics
	EnrichmentLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_enrichment_lookups_total",
			Help: "Total number of name lookups issued by the enrichment join",
		},
		[]string{"engine", "outcome"}, // outcome: "resolved", "unresolved", "error"
	)

	// Session Metrics
	ActiveSessions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_active_sessions",
			Help: "Number of live catalog browsing sessions",
		},
		[]string{"kind"},
	)
)

// RecordUpstream records the outcome and latency of one upstream request.
func RecordUpstream(operation, outcome string, duration time.Duration) {
	UpstreamRequests.WithLabelValues(operation, outcome).Inc()
	UpstreamDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordBatch records the latency of one drained batch.
func RecordBatch(engine string, duration time.Duration) {
	EngineBatchDuration.WithLabelValues(engine).Observe(duration.Seconds())
}
