package fetchers

import (
	"attempt-stats/internal/shared/metrics"
)

const outcomeOK = "ok"

var (
	metricFetchAttemptsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFetch,
			Name:      "attempts_total",
		},
		[]string{metrics.FieldOutcome},
	)
)
