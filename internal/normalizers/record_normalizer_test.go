package normalizers_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"attempt-stats/internal/models"
	"attempt-stats/internal/normalizers"
	"attempt-stats/internal/shared/loggers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func validRaw(userID string) models.RawAttemptRecord {
	return models.RawAttemptRecord{
		UserID:         userID,
		PassbackParams: "{'oauth_consumer_key': 'key', 'lis_result_sourcedid': 'sourced', 'lis_outcome_service_url': 'https://lms.example/grade'}",
		AttemptType:    "submit",
		CreatedAt:      "2023-04-01 12:46:54.169469",
		IsCorrect:      boolPtr(true),
	}
}

func TestNormalize_FlattensRecord(t *testing.T) {
	t.Parallel()

	normalizer := normalizers.NewRecordNormalizer()

	record, err := normalizer.Normalize(validRaw("u1"))
	require.NoError(t, err)

	assert.Equal(t, "u1", record.UserID)
	require.NotNil(t, record.OAuthConsumerKey)
	assert.Equal(t, "key", *record.OAuthConsumerKey)
	require.NotNil(t, record.LISResultSourcedID)
	assert.Equal(t, "sourced", *record.LISResultSourcedID)
	require.NotNil(t, record.LISOutcomeServiceURL)
	assert.Equal(t, "https://lms.example/grade", *record.LISOutcomeServiceURL)
	require.NotNil(t, record.IsCorrect)
	assert.True(t, *record.IsCorrect)
	assert.Equal(t, "submit", record.AttemptType)
	assert.Equal(t, time.Date(2023, 4, 1, 12, 46, 54, 169469000, time.UTC), record.CreatedAt)
}

func TestNormalize_KeepsNullIsCorrect(t *testing.T) {
	t.Parallel()

	raw := validRaw("u1")
	raw.IsCorrect = nil

	record, err := normalizers.NewRecordNormalizer().Normalize(raw)
	require.NoError(t, err)
	assert.Nil(t, record.IsCorrect)
}

func TestNormalize_InvalidRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(r *models.RawAttemptRecord)
	}{
		{name: "missing user id", mutate: func(r *models.RawAttemptRecord) { r.UserID = "  " }},
		{name: "missing attempt type", mutate: func(r *models.RawAttemptRecord) { r.AttemptType = "" }},
		{name: "missing created_at", mutate: func(r *models.RawAttemptRecord) { r.CreatedAt = "" }},
		{name: "unparseable created_at", mutate: func(r *models.RawAttemptRecord) { r.CreatedAt = "01/04/2023" }},
	}

	normalizer := normalizers.NewRecordNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw("u1")
			tt.mutate(&raw)
			_, err := normalizer.Normalize(raw)
			assert.ErrorIs(t, err, normalizers.ErrInvalidRecord)
		})
	}
}

func TestNormalizeAll_SkipsMalformedAndContinues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := loggers.NewWithWriter("warn", &buf)
	require.NoError(t, err)
	ctx := logger.WithContext(context.Background())

	broken := validRaw("u2")
	broken.PassbackParams = "{'lis_result_sourcedid': 'it's broken'}"

	raws := []models.RawAttemptRecord{validRaw("u1"), broken, validRaw("u3")}

	records, skipped := normalizers.NewRecordNormalizer().NormalizeAll(ctx, raws)

	assert.Equal(t, 1, skipped)
	require.Len(t, records, 2)
	assert.Equal(t, "u1", records[0].UserID)
	assert.Equal(t, "u3", records[1].UserID)

	assert.Contains(t, buf.String(), `"user_id":"u2"`)
	assert.Contains(t, buf.String(), "skipping attempt record")
}

func TestNormalizeAll_Empty(t *testing.T) {
	t.Parallel()

	records, skipped := normalizers.NewRecordNormalizer().NormalizeAll(context.Background(), nil)

	assert.Empty(t, records)
	assert.Zero(t, skipped)
}
