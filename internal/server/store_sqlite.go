package server

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// progressKey identifies the single local profile.
const progressKey = "default"

// SQLiteStore keeps the progress blob in the progress table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM progress WHERE key = ?`, progressKey,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQLiteStore) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO progress (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		progressKey, data, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
