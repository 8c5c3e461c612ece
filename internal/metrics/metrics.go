// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeSuccess  = "success"
	OutcomeUpstream = "upstream_error"
	OutcomeNetwork  = "network_error"
	OutcomeAuth     = "auth_error"
	OutcomeFailure  = "failure"
)

var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aep_proxy_upstream_requests_total",
			Help: "Total number of calls issued to the AEP API, by gateway operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aep_proxy_upstream_request_duration_seconds",
			Help:    "Latency of calls issued to the AEP API.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	TokenGrantsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aep_proxy_token_grants_total",
			Help: "Total number of access token requests sent to Adobe IMS.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(UpstreamRequestsTotal, UpstreamRequestDuration, TokenGrantsTotal)
}

// ObserveUpstream records one gateway call.
func ObserveUpstream(operation, outcome string, started time.Time) {
	UpstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
