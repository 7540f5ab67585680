package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	portsrepo "github.com/finwyse/fin_tracker_app/internal/core/ports/repositories"
)

// kvStore implements the KVStore port over the kv_store table. Every value is
// a whole JSON document; writes are last-writer-wins upserts.
type kvStore struct {
	db *sql.DB
}

func newKVStore(db *sql.DB) *kvStore {
	return &kvStore{db: db}
}

var _ portsrepo.KVStore = (*kvStore)(nil)

func (s *kvStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("key %q: %w", key, apperrors.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func (s *kvStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store`); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return nil
}
