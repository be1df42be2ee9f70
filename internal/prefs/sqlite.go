package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Zachkp/portfolio/internal/theme"
)

const schema = `
CREATE TABLE IF NOT EXISTS theme_prefs (
	visitor_id TEXT PRIMARY KEY,
	theme TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLStore persists preferences in a sqlite database.
type SQLStore struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates the database file and its table if needed.
func Open(path string) (*SQLStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("prefs: create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("prefs: open %s: %w", path, err)
	}
	// sqlite serialises writers anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("prefs: create schema: %w", err)
	}
	return &SQLStore{db: db, now: time.Now}, nil
}

func (s *SQLStore) Get(ctx context.Context, visitor string) (theme.Theme, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT theme FROM theme_prefs WHERE visitor_id = ?`, visitor).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return theme.Light, false, nil
	}
	if err != nil {
		return theme.Light, false, fmt.Errorf("prefs: get: %w", err)
	}
	t, err := theme.ParseTheme(raw)
	if err != nil {
		return theme.Light, false, fmt.Errorf("prefs: stored value: %w", err)
	}
	return t, true, nil
}

func (s *SQLStore) Set(ctx context.Context, visitor string, t theme.Theme) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO theme_prefs (visitor_id, theme, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(visitor_id) DO UPDATE SET theme = excluded.theme, updated_at = excluded.updated_at
	`, visitor, t.String(), s.now().Unix())
	if err != nil {
		return fmt.Errorf("prefs: set: %w", err)
	}
	return nil
}

// Cleanup drops preferences nobody has touched for olderThan.
func (s *SQLStore) Cleanup(ctx context.Context, olderThan time.Duration) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM theme_prefs WHERE updated_at < ?`, s.now().Add(-olderThan).Unix())
	if err != nil {
		return 0, fmt.Errorf("prefs: cleanup: %w", err)
	}
	return result.RowsAffected()
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
