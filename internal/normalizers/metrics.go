package normalizers

import (
	"errors"

	"attempt-stats/internal/shared/metrics"
)

const (
	outcomeOK            = "ok"
	outcomeParamDecode   = "param_decode_error"
	outcomeInvalidRecord = "invalid_record"
)

var (
	metricNormalizeRecordsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubNormalize,
			Name:      "records_total",
		},
		[]string{metrics.FieldOutcome},
	)
)

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrParamDecode):
		return outcomeParamDecode
	default:
		return outcomeInvalidRecord
	}
}
