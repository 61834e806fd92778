package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"attempt-stats/internal/models"
	"attempt-stats/internal/shared/filestorages"
)

var (
	ErrRawBatchAlreadyExist = errors.New("raw batch already exists")
)

// RawBatchStore archives the raw API response of a window. Put is create-if-not-exists
// keyed by the window, so a second run over the same window is detected.
//
// Example scenario:
//   - The 12:00-13:00 window is fetched and archived under raw-batches/20230401T120000.000000Z-20230401T130000.000000Z.json
//   - An operator reruns the same window
//   - Put returns ErrRawBatchAlreadyExist and the first archive stays untouched
//
//go:generate mockgen -source=raw_batch_store.go -destination=./mocks/raw_batch_store_mock.go -package=mocks
type RawBatchStore interface {
	Put(ctx context.Context, batch *models.Batch) (string, error)
}

type rawBatch struct {
	BatchID string                    `json:"batchId"`
	Window  models.TimeWindow         `json:"window"`
	Records []models.RawAttemptRecord `json:"records"`
}

type rawBatchStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewRawBatchStore(fileStorage filestorages.FileStorage) RawBatchStore {
	return &rawBatchStore{fileStorage: fileStorage, dir: "raw-batches"}
}

func (s *rawBatchStore) Put(ctx context.Context, batch *models.Batch) (string, error) {
	records := batch.Raw
	if records == nil {
		records = []models.RawAttemptRecord{}
	}
	jsonData, err := json.Marshal(rawBatch{BatchID: batch.BatchID, Window: batch.Window, Records: records})
	if err != nil {
		return "", fmt.Errorf("failed to marshal raw batch: %w", err)
	}

	key := s.getKey(batch.Window)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false, ContentType: "application/json"})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return key, ErrRawBatchAlreadyExist
		}
		return "", fmt.Errorf("failed to put raw batch: %w", err)
	}
	return key, nil
}

func (s *rawBatchStore) getKey(window models.TimeWindow) string {
	return fmt.Sprintf("%s/%s.json", s.dir, window.Key())
}
