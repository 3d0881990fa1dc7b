// Package metrics provides Prometheus metrics for the Fern service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OffersTransformed tracks search records transformed into offers by record type
	OffersTransformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "offers",
			Name:      "transformed_total",
			Help:      "Total number of search records transformed into offers by record type",
		},
		[]string{"record_type"},
	)

	// SearchRequests tracks search backend calls by outcome
	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "search",
			Name:      "requests_total",
			Help:      "Total number of search backend requests by outcome",
		},
		[]string{"outcome"},
	)

	// SearchCacheLookups tracks cache hits and misses for search responses
	SearchCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "search",
			Name:      "cache_lookups_total",
			Help:      "Total number of search cache lookups by result",
		},
		[]string{"result"},
	)

	// SearchDuration tracks search backend request duration in seconds
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fern",
			Subsystem: "search",
			Name:      "request_duration_seconds",
			Help:      "Duration of search backend requests in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	// ClicksEmitted tracks affiliate click events published to the event bus
	ClicksEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "clicks",
			Name:      "emitted_total",
			Help:      "Total number of affiliate click events emitted by status",
		},
		[]string{"status"},
	)
)
