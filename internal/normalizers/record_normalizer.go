package normalizers

import (
	"context"
	"fmt"
	"strings"

	"attempt-stats/internal/models"
	"attempt-stats/internal/shared/loggers"
	"attempt-stats/internal/shared/validators"
)

//go:generate mockgen -source=record_normalizer.go -destination=./mocks/record_normalizer_mock.go -package=mocks
type RecordNormalizer interface {
	// Normalize flattens one raw record. It fails with ErrParamDecode or ErrInvalidRecord.
	Normalize(raw models.RawAttemptRecord) (models.NormalizedRecord, error)
	// NormalizeAll normalizes every record in order, skipping (and logging) the ones that fail.
	NormalizeAll(ctx context.Context, raws []models.RawAttemptRecord) ([]models.NormalizedRecord, int)
}

type recordNormalizer struct {
	validate *validators.Validate
}

func NewRecordNormalizer() RecordNormalizer {
	return &recordNormalizer{
		validate: validators.NewJSON(),
	}
}

func (n *recordNormalizer) Normalize(raw models.RawAttemptRecord) (models.NormalizedRecord, error) {
	raw.UserID = strings.TrimSpace(raw.UserID)
	raw.AttemptType = strings.TrimSpace(raw.AttemptType)

	if err := n.validate.Struct(raw); err != nil {
		return models.NormalizedRecord{}, fmt.Errorf("%w: missing %s", ErrInvalidRecord, strings.Join(validators.FieldNames(err), ", "))
	}

	createdAt, err := models.ParseTimestamp(raw.CreatedAt)
	if err != nil {
		return models.NormalizedRecord{}, fmt.Errorf("%w: created_at: %w", ErrInvalidRecord, err)
	}

	params, err := DecodePassbackParams(raw.PassbackParams)
	if err != nil {
		return models.NormalizedRecord{}, err
	}

	return models.NewNormalizedRecord(raw, params, createdAt), nil
}

func (n *recordNormalizer) NormalizeAll(ctx context.Context, raws []models.RawAttemptRecord) ([]models.NormalizedRecord, int) {
	logger := loggers.Ctx(ctx)

	records := make([]models.NormalizedRecord, 0, len(raws))
	skipped := 0
	for i, raw := range raws {
		record, err := n.Normalize(raw)
		metricNormalizeRecordsTotal.WithLabelValues(outcomeOf(err)).Inc()
		if err != nil {
			skipped++
			logger.Warn().
				Err(err).
				Str(loggers.FieldUserID, raw.UserID).
				Int("index", i).
				Msg("skipping attempt record")
			continue
		}
		logger.Debug().
			Str(loggers.FieldUserID, record.UserID).
			Str("attempt_type", record.AttemptType).
			Msg("normalized attempt record")
		records = append(records, record)
	}

	logger.Info().
		Int(loggers.FieldRecordCount, len(records)).
		Int("skipped", skipped).
		Msg("normalized attempt records")
	return records, skipped
}
