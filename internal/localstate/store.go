// Package localstate implements the durable local key-value snapshot store.
// It backs the credit ledger, search history, and last-used settings so they
// survive process restarts independently of the remote database.
package localstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ranklens/ranklens-backend/internal/domain"
)

// Fixed key names. Each key is scoped by user ID in the primary key.
const (
	KeyCredits   = "credits"
	KeyHistory   = "history"
	KeyLanguage  = "language"
	KeyLiveMode  = "live_mode"
	KeyLastQuery = "last_query"
)

// Store is a per-user key-value snapshot store backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate state db: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		user_id    TEXT NOT NULL,
		key        TEXT NOT NULL,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, key)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Ping verifies the snapshot database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores value under (userID, key), replacing any previous value.
func (s *Store) Put(ctx context.Context, userID uuid.UUID, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (user_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		userID.String(), key, value, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Get returns the value stored under (userID, key).
// Returns domain.ErrNotFound if no snapshot exists.
func (s *Store) Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM snapshots WHERE user_id = ? AND key = ?`,
		userID.String(), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Delete removes the value stored under (userID, key). Missing keys are not an error.
func (s *Store) Delete(ctx context.Context, userID uuid.UUID, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE user_id = ? AND key = ?`,
		userID.String(), key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
