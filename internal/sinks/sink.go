package sinks

import (
	"context"

	"attempt-stats/internal/models"
)

const (
	NameSheets  = "sheets"
	NameTable   = "table"
	NameArchive = "archive"
	NameEmail   = "email"
)

// Sink is one delivery target of a finished batch. Deliver must not modify the batch.
//
//go:generate mockgen -source=sink.go -destination=./mocks/sink_mock.go -package=mocks
type Sink interface {
	Name() string
	Deliver(ctx context.Context, batch *models.Batch) error
}

// Notifier reports the outcome of a batch run, successful or not.
type Notifier interface {
	Notify(ctx context.Context, report *models.BatchReport) error
}
