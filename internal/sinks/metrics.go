package sinks

import (
	"attempt-stats/internal/shared/metrics"
)

var (
	metricSinkDeliveriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSink,
			Name:      "deliveries_total",
		},
		[]string{"sink", metrics.FieldErrorCode},
	)
)
