package streams

import (
	"context"

	"attempt-stats/internal/events"
)

// BatchRequestProducer hands accepted batch requests to the worker lane.
//
//go:generate mockgen -source=batch_request_producer.go -destination=./mocks/batch_request_producer_mock.go -package=mocks
type BatchRequestProducer interface {
	Produce(ctx context.Context, event events.BatchRequestedEvent) error
}

type batchRequestProducer struct {
	queue *Queue[events.BatchRequestedEvent]
}

func NewBatchRequestProducer(queue *Queue[events.BatchRequestedEvent]) BatchRequestProducer {
	return &batchRequestProducer{
		queue: queue,
	}
}

func (producer *batchRequestProducer) Produce(ctx context.Context, event events.BatchRequestedEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := producer.queue.Publish(ctx, event); err != nil {
		return err
	}
	metricBatchRequestedProducedTotal.WithLabelValues(streamBatchRequested, string(event.Trigger)).Inc()
	return nil
}
