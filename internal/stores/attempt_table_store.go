package stores

import (
	"context"
	"fmt"

	"attempt-stats/internal/models"
	"attempt-stats/internal/shared/databases"
)

const attemptTableName = "student_data"

const createAttemptTableSQL = `CREATE TABLE IF NOT EXISTS ` + attemptTableName + ` (
	user_id TEXT,
	oauth_consumer_key TEXT,
	lis_result_sourcedid TEXT,
	lis_outcome_service_url TEXT,
	is_correct BOOLEAN,
	attempt_type TEXT,
	created_at TIMESTAMP
)`

// AttemptTableStore appends normalized records to the student_data table.
//
//go:generate mockgen -source=attempt_table_store.go -destination=./mocks/attempt_table_store_mock.go -package=mocks
type AttemptTableStore interface {
	// EnsureTable creates the table when it does not exist yet.
	EnsureTable(ctx context.Context) error
	// InsertAll writes every record in one transaction: all rows are committed or none are.
	InsertAll(ctx context.Context, records []models.NormalizedRecord) error
}

type attemptTableStore struct {
	db        *databases.DB
	insertSQL string
}

func NewAttemptTableStore(db *databases.DB) AttemptTableStore {
	return &attemptTableStore{
		db: db,
		insertSQL: `INSERT INTO ` + attemptTableName + ` (user_id, oauth_consumer_key, lis_result_sourcedid, lis_outcome_service_url, is_correct, attempt_type, created_at)
	VALUES (` + db.Dialect.Placeholders(1, 7) + `)`,
	}
}

func (s *attemptTableStore) EnsureTable(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createAttemptTableSQL); err != nil {
		return fmt.Errorf("create %s: %w", attemptTableName, err)
	}
	return nil
}

func (s *attemptTableStore) InsertAll(ctx context.Context, records []models.NormalizedRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s insert: %w", attemptTableName, err)
	}
	rollbackWith := func(cause error) error {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("%w: rollback %s insert: %v", cause, attemptTableName, rollbackErr)
		}
		return cause
	}

	stmt, err := tx.PrepareContext(ctx, s.insertSQL)
	if err != nil {
		return rollbackWith(fmt.Errorf("prepare insert: %w", err))
	}
	defer stmt.Close()

	for i, record := range records {
		if _, err := stmt.ExecContext(ctx,
			record.UserID,
			record.OAuthConsumerKey,
			record.LISResultSourcedID,
			record.LISOutcomeServiceURL,
			record.IsCorrect,
			record.AttemptType,
			record.CreatedAt.UTC(),
		); err != nil {
			return rollbackWith(fmt.Errorf("insert record %d (user %s): %w", i, record.UserID, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s insert: %w", attemptTableName, err)
	}
	return nil
}
