package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GuardDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_guard_decisions_total",
			Help: "Total number of route guard decisions",
		},
		[]string{"decision"},
	)

	BackendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_backend_requests_total",
			Help: "Total number of backend API requests by outcome",
		},
		[]string{"method", "outcome"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_backend_request_duration_seconds",
			Help:    "Duration of backend API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	FormValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_form_validation_failures_total",
			Help: "Total number of rejected form submissions",
		},
		[]string{"form"},
	)

	ForcedLogouts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_forced_logouts_total",
			Help: "Sessions destroyed because the backend rejected the credential",
		},
	)
)
