package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Terminal outcomes of a fetch, used as the outcome label
const (
	OutcomeOK              = "ok"
	OutcomeValidationError = "validation_error"
	OutcomeServiceError    = "service_error"
	OutcomeCallError       = "call_error"
	OutcomeTruncated       = "truncated"
)

var (
	// Fetch request metrics
	fetchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fetch_requests_total",
			Help: "Total number of fetch requests by method and outcome",
		},
		[]string{"method", "outcome"},
	)

	fetchRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fetch_request_duration_seconds",
			Help:    "Duration of fetch service calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	fetchRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fetch_requests_in_flight",
			Help: "Number of fetch service calls currently outstanding",
		},
	)

	fetchValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fetch_validation_failures_total",
			Help: "Total number of fetch requests rejected before the external call",
		},
		[]string{"field"},
	)
)

// FetchStarted marks one fetch service call as outstanding
func FetchStarted() {
	fetchRequestsInFlight.Inc()
}

// FetchFinished marks one outstanding fetch service call as done
func FetchFinished() {
	fetchRequestsInFlight.Dec()
}

// RecordFetch records the terminal outcome of one fetch that reached the
// external service
func RecordFetch(method, outcome string, elapsed time.Duration) {
	fetchRequestsTotal.WithLabelValues(method, outcome).Inc()
	fetchRequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// RecordValidationFailure records a fetch rejected by local validation.
// The field label is bounded ("scheme" or "method").
func RecordValidationFailure(field string) {
	fetchValidationFailures.WithLabelValues(field).Inc()
}
