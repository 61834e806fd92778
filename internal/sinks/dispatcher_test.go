package sinks_test

import (
	"context"
	"errors"
	"testing"

	"attempt-stats/internal/models"
	"attempt-stats/internal/shared/svcerrors"
	"attempt-stats/internal/sinks"
	"attempt-stats/internal/sinks/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockSink(ctrl *gomock.Controller, name string) *mocks.MockSink {
	sink := mocks.NewMockSink(ctrl)
	sink.EXPECT().Name().Return(name).AnyTimes()
	return sink
}

func TestDispatch_AllSinksSucceed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	batch := &models.Batch{BatchID: "batch-1"}

	archive := newMockSink(ctrl, "archive")
	table := newMockSink(ctrl, "table")
	gomock.InOrder(
		archive.EXPECT().Deliver(ctx, batch).Return(nil),
		table.EXPECT().Deliver(ctx, batch).Return(nil),
	)

	results := sinks.NewDispatcher(archive, table).Dispatch(ctx, batch)

	assert.Equal(t, []models.DeliveryResult{
		{Sink: "archive", Delivered: true},
		{Sink: "table", Delivered: true},
	}, results)
}

func TestDispatch_FailingSinkDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	batch := &models.Batch{BatchID: "batch-1"}

	sheets := newMockSink(ctrl, "sheets")
	table := newMockSink(ctrl, "table")
	archive := newMockSink(ctrl, "archive")

	sheetsErr := svcerrors.NewInternalError("SINK_9001", errors.New("quota exceeded"))
	gomock.InOrder(
		sheets.EXPECT().Deliver(ctx, batch).Return(sheetsErr),
		table.EXPECT().Deliver(ctx, batch).Return(nil),
		archive.EXPECT().Deliver(ctx, batch).Return(errors.New("disk full")),
	)

	results := sinks.NewDispatcher(sheets, table, archive).Dispatch(ctx, batch)

	require.Len(t, results, 3)
	assert.False(t, results[0].Delivered)
	assert.Equal(t, "SINK_9001", results[0].ErrorCode)
	assert.Contains(t, results[0].Error, "quota exceeded")

	assert.True(t, results[1].Delivered)
	assert.Empty(t, results[1].ErrorCode)

	assert.False(t, results[2].Delivered)
	assert.Equal(t, "SINK_9000", results[2].ErrorCode, "errors without a code get the generic delivery code")
}

func TestDispatch_PanickingSinkIsIsolated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	batch := &models.Batch{BatchID: "batch-1"}

	broken := newMockSink(ctrl, "broken")
	table := newMockSink(ctrl, "table")
	broken.EXPECT().Deliver(ctx, batch).DoAndReturn(func(context.Context, *models.Batch) error {
		panic("nil map")
	})
	table.EXPECT().Deliver(ctx, batch).Return(nil)

	results := sinks.NewDispatcher(broken, table).Dispatch(ctx, batch)

	require.Len(t, results, 2)
	assert.False(t, results[0].Delivered)
	assert.Equal(t, "SINK_9000", results[0].ErrorCode)
	assert.Contains(t, results[0].Error, "nil map")
	assert.True(t, results[1].Delivered)
}

func TestDispatch_NoSinks(t *testing.T) {
	t.Parallel()

	results := sinks.NewDispatcher().Dispatch(context.Background(), &models.Batch{})
	assert.Empty(t, results)
}
