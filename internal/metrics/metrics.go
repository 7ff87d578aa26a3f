package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resale_price_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resale_price_http_request_latency_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ValidationRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resale_price_validation_rejections_total",
			Help: "Requests rejected by input validation, by field",
		},
		[]string{"field"},
	)

	CoefficientFetchLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resale_price_coefficient_fetch_latency_seconds",
			Help:    "Coefficient store lookup latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
	)

	CoefficientFetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "resale_price_coefficient_fetch_errors_total",
			Help: "Total failed coefficient store lookups",
		},
	)

	CoefficientCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resale_price_coefficient_cache_results_total",
			Help: "Coefficient cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	PredictionsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "resale_price_predictions_served_total",
			Help: "Total predicted values returned",
		},
	)

	EmptyPredictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "resale_price_empty_predictions_total",
			Help: "Valid requests that matched no coefficient rows",
		},
	)
)
