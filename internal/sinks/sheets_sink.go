package sinks

import (
	"context"
	"fmt"
	"strings"

	"attempt-stats/internal/models"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const valueInputRaw = "RAW"

type SheetsOptions struct {
	SpreadsheetID string
	Worksheet     string
}

type sheetsSink struct {
	service *sheets.Service
	opts    SheetsOptions
}

// NewSheetsSink builds the spreadsheet sink. clientOpts carry the credentials,
// usually option.WithCredentialsFile.
func NewSheetsSink(ctx context.Context, opts SheetsOptions, clientOpts ...option.ClientOption) (Sink, error) {
	clientOpts = append([]option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}, clientOpts...)
	service, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &sheetsSink{service: service, opts: opts}, nil
}

func (s *sheetsSink) Name() string { return NameSheets }

// Deliver overwrites the fixed block starting at A1, so rerunning a batch leaves one copy.
func (s *sheetsSink) Deliver(ctx context.Context, batch *models.Batch) error {
	valueRange := &sheets.ValueRange{
		MajorDimension: "ROWS",
		Values:         SummaryRows(batch),
	}
	_, err := s.service.Spreadsheets.Values.
		Update(s.opts.SpreadsheetID, a1Range(s.opts.Worksheet, "A1"), valueRange).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return errSheetsDeliveryFailed(err)
	}
	return nil
}

// SummaryRows lays out the header at row 1 and one row per counter from row 2,
// followed by the batch identity.
func SummaryRows(batch *models.Batch) [][]any {
	rows := [][]any{{"metric", "value"}}
	for _, entry := range batch.Summary.Entries() {
		rows = append(rows, []any{entry.Name, entry.Value})
	}
	rows = append(rows,
		[]any{"skipped_records", batch.Skipped},
		[]any{"batch_id", batch.BatchID},
		[]any{"window_start", batch.Window.StartParam()},
		[]any{"window_end", batch.Window.EndParam()},
	)
	return rows
}

// a1Range quotes the worksheet title so names with spaces or quotes are addressed correctly.
func a1Range(worksheet, cell string) string {
	return "'" + strings.ReplaceAll(worksheet, "'", "''") + "'!" + cell
}
