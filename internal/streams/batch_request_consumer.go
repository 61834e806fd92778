package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"attempt-stats/internal/events"
	"attempt-stats/internal/models"
	"attempt-stats/internal/shared/loggers"
	"attempt-stats/internal/shared/metrics"
	"attempt-stats/internal/shared/svcerrors"
)

// BatchRunner runs one accepted batch to completion.
//
//go:generate mockgen -source=batch_request_consumer.go -destination=./mocks/batch_request_consumer_mock.go -package=mocks
type BatchRunner interface {
	RunBatch(ctx context.Context, batchID string, window models.TimeWindow) (*models.BatchReport, *svcerrors.ServiceError)
}

type BatchRequestConsumer interface {
	Start(ctx context.Context)
	// Stop runs what is still queued, then returns. When ctx is done first, the worker's
	// context is cancelled so the remaining batches fail fast and Stop returns ctx.Err().
	Stop(ctx context.Context) error
}

type batchRequestConsumer struct {
	queue  *Queue[events.BatchRequestedEvent]
	runner BatchRunner

	wg     sync.WaitGroup
	cancel context.CancelFunc

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}

	logger loggers.Logger
}

func NewBatchRequestConsumer(queue *Queue[events.BatchRequestedEvent], runner BatchRunner, logger loggers.Logger) BatchRequestConsumer {
	return &batchRequestConsumer{
		queue:  queue,
		runner: runner,
		cancel: func() {},
		stopCh: make(chan struct{}),
		logger: logger,
	}
}

// Start spawns a single worker, so batches run one at a time in request order.
// Sinks overwrite shared targets (spreadsheet range, report keys) and must not race.
func (consumer *batchRequestConsumer) Start(ctx context.Context) {
	consumer.startOnce.Do(func() {
		workerCtx, cancel := context.WithCancel(ctx)
		consumer.cancel = cancel

		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			defer cancel()

			consumer.runWorker(workerCtx)
		}()
	})
}

func (consumer *batchRequestConsumer) Stop(ctx context.Context) error {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })

	done := make(chan struct{})
	go func() {
		consumer.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		consumer.logger.Warn().Err(ctx.Err()).Msg("stop deadline reached, cancelling queued batches")
		consumer.cancel()
		<-done
		return ctx.Err()
	}
}

func (consumer *batchRequestConsumer) runWorker(ctx context.Context) {
	ch := consumer.queue.receive()
	for {
		select {
		case <-ctx.Done():
			consumer.drain(ctx, ch)
			return
		case <-consumer.stopCh:
			consumer.drain(ctx, ch)
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, event)
		}
	}
}

// drain hands every event still buffered to the runner. Accepted batches already have a
// pending report; with ctx cancelled the runner records them as failed instead of running them.
func (consumer *batchRequestConsumer) drain(ctx context.Context, ch <-chan events.BatchRequestedEvent) {
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, event)
		default:
			return
		}
	}
}

func (consumer *batchRequestConsumer) handle(ctx context.Context, event events.BatchRequestedEvent) {
	ctx = consumer.logger.With().
		Str(loggers.FieldBatchID, event.BatchID).
		Str(loggers.FieldRequestID, event.BatchID).
		Str("trigger", string(event.Trigger)).
		Logger().WithContext(ctx)

	// Handle panic recovery to prevent the worker goroutine from crashing
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricBatchRequestedConsumedTotal.WithLabelValues(streamBatchRequested, svcErr.Code).Inc()
		}
	}()

	_, svcError := consumer.runner.RunBatch(ctx, event.BatchID, event.Window)
	if svcError != nil {
		metricBatchRequestedConsumedTotal.WithLabelValues(streamBatchRequested, svcError.Code).Inc()
		return
	}
	metricBatchRequestedConsumedTotal.WithLabelValues(streamBatchRequested, metrics.ValueNoError).Inc()
}
