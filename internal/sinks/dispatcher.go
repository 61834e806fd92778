package sinks

import (
	"context"
	"fmt"

	"attempt-stats/internal/models"
	"attempt-stats/internal/shared/loggers"
	"attempt-stats/internal/shared/metrics"
)

//go:generate mockgen -source=dispatcher.go -destination=./mocks/dispatcher_mock.go -package=mocks
type Dispatcher interface {
	// Dispatch delivers the batch to every sink in order and reports one result per sink.
	// A failing sink never prevents delivery to the next one.
	Dispatch(ctx context.Context, batch *models.Batch) []models.DeliveryResult
}

type dispatcher struct {
	sinks []Sink
}

func NewDispatcher(sinks ...Sink) Dispatcher {
	return &dispatcher{sinks: sinks}
}

func (d *dispatcher) Dispatch(ctx context.Context, batch *models.Batch) []models.DeliveryResult {
	results := make([]models.DeliveryResult, 0, len(d.sinks))
	for _, sink := range d.sinks {
		results = append(results, deliver(ctx, sink, batch))
	}
	return results
}

func deliver(ctx context.Context, sink Sink, batch *models.Batch) (result models.DeliveryResult) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldSink, sink.Name()).Logger()
	result.Sink = sink.Name()

	defer func() {
		if r := recover(); r != nil {
			err := errDeliveryFailed(sink.Name(), fmt.Errorf("panic: %v", r))
			result.Delivered = false
			result.ErrorCode = err.Code
			result.Error = err.Error()
			metricSinkDeliveriesTotal.WithLabelValues(sink.Name(), err.Code).Inc()
			logger.Error().Str(loggers.FieldErrorCode, err.Code).Interface("panic", r).Msg("sink panicked")
		}
	}()

	if err := sink.Deliver(ctx, batch); err != nil {
		code := codeOf(err)
		result.ErrorCode = code
		result.Error = err.Error()
		metricSinkDeliveriesTotal.WithLabelValues(sink.Name(), code).Inc()
		logger.Error().Err(err).Str(loggers.FieldErrorCode, code).Msg("sink delivery failed")
		return result
	}

	result.Delivered = true
	metricSinkDeliveriesTotal.WithLabelValues(sink.Name(), metrics.ValueNoError).Inc()
	logger.Info().Int(loggers.FieldRecordCount, len(batch.Records)).Msg("sink delivery succeeded")
	return result
}
