// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_http_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sentiment_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// PredictionsTotal counts served predictions by sentiment label.
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_predictions_total",
			Help: "Total number of predictions served, by label.",
		},
		[]string{"label"},
	)

	// PredictionCacheHits counts prediction-cache lookups by outcome.
	PredictionCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_prediction_cache_lookups_total",
			Help: "Prediction cache lookups, by outcome (hit or miss).",
		},
		[]string{"outcome"},
	)
)
