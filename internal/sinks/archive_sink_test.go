package sinks_test

import (
	"context"
	"errors"
	"testing"

	"attempt-stats/internal/models"
	"attempt-stats/internal/shared/svcerrors"
	"attempt-stats/internal/sinks"
	"attempt-stats/internal/stores"
	storemocks "attempt-stats/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestArchiveSink_Deliver(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	batch := &models.Batch{BatchID: "batch-1"}

	store := storemocks.NewMockRawBatchStore(ctrl)
	store.EXPECT().Put(ctx, batch).Return("raw-batches/w.json", nil)

	sink := sinks.NewArchiveSink(store)
	assert.Equal(t, "archive", sink.Name())
	assert.NoError(t, sink.Deliver(ctx, batch))
}

func TestArchiveSink_Deliver_AlreadyArchived(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storemocks.NewMockRawBatchStore(ctrl)
	store.EXPECT().Put(gomock.Any(), gomock.Any()).Return("raw-batches/w.json", stores.ErrRawBatchAlreadyExist)

	err := sinks.NewArchiveSink(store).Deliver(context.Background(), &models.Batch{})

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "SINK_1000", svcErr.Code)
	assert.Equal(t, "resource_conflict", svcErr.Category)
	assert.Contains(t, svcErr.Message, "raw-batches/w.json")
	assert.ErrorIs(t, err, stores.ErrRawBatchAlreadyExist)
}

func TestArchiveSink_Deliver_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storemocks.NewMockRawBatchStore(ctrl)
	store.EXPECT().Put(gomock.Any(), gomock.Any()).Return("", errors.New("bucket unreachable"))

	err := sinks.NewArchiveSink(store).Deliver(context.Background(), &models.Batch{})

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "SINK_9003", svcErr.Code)
}
