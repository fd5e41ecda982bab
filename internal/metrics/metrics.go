// Package metrics exposes the Prometheus instruments for the search
// pipeline. Collectors are registered at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits counts searches answered from the cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sheets_cache_hits_total",
		Help: "Total searches answered from the cache.",
	})

	// CacheMisses counts searches that had to go upstream.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sheets_cache_misses_total",
		Help: "Total searches that went to the Scope4 API.",
	})

	// Outcomes counts classified upstream responses by kind, plus the two
	// transport-level conditions "timeout" and "failure".
	Outcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sheets_search_outcomes_total",
		Help: "Total search outcomes by kind.",
	}, []string{"kind"})

	// UpstreamLatency observes the wall time of one Scope4 API round trip.
	// Buckets reach past the 50 second client timeout so slow requests do
	// not all land in +Inf.
	UpstreamLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sheets_upstream_latency_seconds",
		Help:    "Latency of Scope4 API requests.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 50},
	})
)
