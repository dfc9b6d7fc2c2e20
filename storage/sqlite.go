// Package storage keeps the game snapshot on the device in a SQLite file.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"hidden_piece/story"
)

const schema = `CREATE TABLE IF NOT EXISTS saves (
	app_key TEXT PRIMARY KEY,
	snapshot BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLite persists snapshots under a single key.
type SQLite struct {
	db  *sql.DB
	key string
	now func() time.Time
}

var _ story.Persister = (*SQLite)(nil)

// Open opens the database at path and creates the saves table.
func Open(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create saves table: %w", err)
	}
	return &SQLite{db: db, key: story.SaveKey, now: time.Now}, nil
}

// Close releases the underlying connection.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load returns the saved snapshot, or nil when nothing is saved.
func (s *SQLite) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT snapshot FROM saves WHERE app_key = ?`, s.key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return data, nil
}

// Save replaces the snapshot.
func (s *SQLite) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO saves (app_key, snapshot, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(app_key) DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at`,
		s.key, data, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Clear deletes the snapshot.
func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE app_key = ?`, s.key); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}

// UpdatedAt returns when the snapshot was last written.
func (s *SQLite) UpdatedAt(ctx context.Context) (time.Time, bool, error) {
	var ms int64
	err := s.db.QueryRowContext(ctx, `SELECT updated_at FROM saves WHERE app_key = ?`, s.key).Scan(&ms)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("load snapshot time: %w", err)
	}
	return time.UnixMilli(ms), true, nil
}
