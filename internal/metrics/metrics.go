package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nimah_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nimah_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// Business metrics
	ChatTurns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nimah_chat_turns_total",
			Help: "Total chat turns exchanged with the assistant",
		},
		[]string{"outcome"}, // "answered", "degraded", "failed"
	)

	RecipesExtracted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nimah_recipes_extracted_total",
			Help: "Total recipe cards extracted from assistant replies",
		},
	)

	BookingsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nimah_bookings_received_total",
			Help: "Total booking requests accepted",
		},
	)
)
