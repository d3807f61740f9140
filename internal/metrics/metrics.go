// Package metrics defines the Prometheus collectors exported on /metrics.
// Collectors register with the default registry at package init via promauto.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts requests by method, chi route pattern and status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safereach_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration observes request latency by method and route.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "safereach_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// RateLimited counts requests rejected by the per-IP limiter.
	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safereach_rate_limited_total",
			Help: "Requests rejected by rate limiting, by route.",
		},
		[]string{"route"},
	)

	// ArrivalsClaimed counts trips closed by arrival detection.
	ArrivalsClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "safereach_arrivals_claimed_total",
		Help: "Trips claimed for arrival notification.",
	})

	// SMSDeliveries counts per-recipient outcomes: sent or failed.
	SMSDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safereach_sms_deliveries_total",
			Help: "SMS deliveries by outcome.",
		},
		[]string{"outcome"},
	)

	// SMSRetries counts extra send attempts made after a transient failure.
	SMSRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "safereach_sms_retries_total",
		Help: "SMS send attempts beyond the first.",
	})

	// BreakerState is 0 closed, 1 half-open, 2 open.
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "safereach_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open).",
		},
		[]string{"name"},
	)

	// BreakerRejections counts calls refused while a breaker was open.
	BreakerRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safereach_circuit_breaker_rejections_total",
			Help: "Calls rejected by an open circuit breaker.",
		},
		[]string{"name"},
	)
)

// ObserveHTTP records one finished request.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
