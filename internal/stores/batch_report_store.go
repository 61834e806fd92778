package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"attempt-stats/internal/models"
	"attempt-stats/internal/shared/filestorages"
)

var (
	ErrBatchReportNotFound = errors.New("batch report not found")
)

//go:generate mockgen -source=batch_report_store.go -destination=./mocks/batch_report_store_mock.go -package=mocks
type BatchReportStore interface {
	Upsert(ctx context.Context, report *models.BatchReport) error
	Get(ctx context.Context, batchID string) (*models.BatchReport, error)
}

type batchReportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewBatchReportStore(fileStorage filestorages.FileStorage) BatchReportStore {
	return &batchReportStore{fileStorage: fileStorage, dir: "batch-reports"}
}

func (s *batchReportStore) Upsert(ctx context.Context, report *models.BatchReport) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal batch report: %w", err)
	}
	_, err = s.fileStorage.Put(ctx, s.getKey(report.BatchID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true, ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to put batch report: %w", err)
	}
	return nil
}

func (s *batchReportStore) Get(ctx context.Context, batchID string) (*models.BatchReport, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(batchID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrBatchReportNotFound
		}
		return nil, fmt.Errorf("failed to get batch report: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch report: %w", err)
	}
	var report models.BatchReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal batch report: %w", err)
	}
	return &report, nil
}

func (s *batchReportStore) getKey(batchID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, batchID)
}
