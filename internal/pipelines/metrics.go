package pipelines

import (
	"attempt-stats/internal/shared/metrics"
)

var (
	metricBatchRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "batch_runs_total",
		},
		[]string{"status", metrics.FieldErrorCode},
	)

	metricBatchRunDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "batch_run_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"status"},
	)

	metricBatchSubmittedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "batch_submitted_total",
		},
		[]string{"trigger", metrics.FieldErrorCode},
	)
)
