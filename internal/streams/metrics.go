package streams

import (
	"attempt-stats/internal/shared/metrics"
)

var (
	streamBatchRequested              = "batch_requested"
	metricBatchRequestedProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "batch_requested_published_total",
		},
		[]string{"stream_id", "trigger"},
	)

	metricBatchRequestedConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "batch_requested_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
