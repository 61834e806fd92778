package sinks

import (
	"context"
	"errors"

	"attempt-stats/internal/models"
	"attempt-stats/internal/shared/loggers"
	"attempt-stats/internal/stores"
)

type archiveSink struct {
	store stores.RawBatchStore
}

// NewArchiveSink keeps the raw API response of each window, once.
func NewArchiveSink(store stores.RawBatchStore) Sink {
	return &archiveSink{store: store}
}

func (s *archiveSink) Name() string { return NameArchive }

func (s *archiveSink) Deliver(ctx context.Context, batch *models.Batch) error {
	key, err := s.store.Put(ctx, batch)
	if err != nil {
		if errors.Is(err, stores.ErrRawBatchAlreadyExist) {
			return errArchiveAlreadyExists(key, err)
		}
		return errArchiveDeliveryFailed(err)
	}
	loggers.Ctx(ctx).Debug().Str("key", key).Msg("archived raw batch")
	return nil
}
