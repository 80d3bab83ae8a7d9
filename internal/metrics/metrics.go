package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamCallsTotal tracks transport attempts per operation and outcome class
	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audition_upstream_calls_total",
			Help: "Total number of upstream transport attempts",
		},
		[]string{"operation", "class"},
	)

	// UpstreamRetriesTotal tracks retried attempts per operation
	UpstreamRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audition_upstream_retries_total",
			Help: "Total number of retried upstream attempts",
		},
		[]string{"operation"},
	)

	// UpstreamShortCircuitsTotal tracks calls rejected by the open circuit breaker
	UpstreamShortCircuitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audition_upstream_short_circuits_total",
			Help: "Total number of calls rejected while the circuit breaker was open",
		},
		[]string{"operation"},
	)

	// UpstreamLatency tracks upstream attempt latency
	UpstreamLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "audition_upstream_latency_seconds",
			Help:    "Upstream attempt latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// CircuitBreakerState exposes the breaker state (0=closed, 1=open, 2=half-open)
	CircuitBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "audition_circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
	)

	// HTTPRequestDuration tracks inbound request latency per route and status
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "audition_http_request_duration_seconds",
			Help:    "Inbound HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
