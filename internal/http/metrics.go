package http

import (
	"attempt-stats/internal/shared/metrics"
)

var (
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{"method", "route", "status", metrics.FieldErrorCode},
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
