// Package metrics registers the Prometheus collectors for the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled HTTP requests by method, path and status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "credit_scoring_http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"method", "path", "status"})

	// RequestDuration observes request latency by method and path.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "credit_scoring_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// AssessmentsTotal counts computed assessments by risk tier.
	AssessmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "credit_scoring_assessments_total",
		Help: "Total number of scoring assessments computed, by risk level",
	}, []string{"risk_level"})

	// StoreErrorsTotal counts failed persistence attempts.
	StoreErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "credit_scoring_store_errors_total",
		Help: "Total number of failed assessment store operations",
	})
)
