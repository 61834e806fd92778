package sinks

import (
	"context"

	"attempt-stats/internal/models"
	"attempt-stats/internal/stores"
)

type tableSink struct {
	store stores.AttemptTableStore
}

// NewTableSink appends the batch's normalized records to the attempt table, all or nothing.
func NewTableSink(store stores.AttemptTableStore) Sink {
	return &tableSink{store: store}
}

func (s *tableSink) Name() string { return NameTable }

func (s *tableSink) Deliver(ctx context.Context, batch *models.Batch) error {
	if err := s.store.EnsureTable(ctx); err != nil {
		return errTablePersistenceFailed(err)
	}
	if err := s.store.InsertAll(ctx, batch.Records); err != nil {
		return errTablePersistenceFailed(err)
	}
	return nil
}
