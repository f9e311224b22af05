package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type pgStore struct {
	db *sql.DB
}

// NewPGStore builds a Postgres-backed usage store.
func NewPGStore(db *sql.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) Insert(ctx context.Context, log UsageLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin usage tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO usage_logs (id, user_email, resumes_processed, created_at)
		VALUES ($1, $2, $3, $4)
	`, log.ID, log.UserEmail, log.ResumesProcessed, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert usage log: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE users
		SET total_resumes = total_resumes + $2,
		    login_count = login_count + 1,
		    updated_at = NOW()
		WHERE email = $1
	`, log.UserEmail, log.ResumesProcessed)
	if err != nil {
		return fmt.Errorf("update user counters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit usage tx: %w", err)
	}
	return nil
}

func (s *pgStore) List(ctx context.Context) ([]UsageLog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_email, resumes_processed, created_at
		FROM usage_logs
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list usage logs: %w", err)
	}
	defer rows.Close()

	var out []UsageLog
	for rows.Next() {
		var log UsageLog
		if err := rows.Scan(&log.ID, &log.UserEmail, &log.ResumesProcessed, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan usage log: %w", err)
		}
		out = append(out, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate usage logs: %w", err)
	}
	return out, nil
}
