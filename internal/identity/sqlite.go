package identity

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS identities (
	key TEXT PRIMARY KEY,
	id  TEXT NOT NULL
);`

// SQLiteStore is a Store backed by a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create identity store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Add(key string) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existing string
	err = tx.QueryRow(`SELECT id FROM identities WHERE key = ?`, key).Scan(&existing)
	switch {
	case err == nil:
		return "", duplicate(key)
	case !errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("lookup %s: %w", key, err)
	}

	id := newID()
	if _, err := tx.Exec(`INSERT INTO identities (key, id) VALUES (?, ?)`, key, id); err != nil {
		return "", fmt.Errorf("insert %s: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	return id, nil
}

func (s *SQLiteStore) Read(key string) (string, bool, error) {
	var id string

	err := s.db.QueryRow(`SELECT id FROM identities WHERE key = ?`, key).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("lookup %s: %w", key, err)
	}

	return id, true, nil
}

func (s *SQLiteStore) Delete(key string) error {
	res, err := s.db.Exec(`DELETE FROM identities WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}

	if n == 0 {
		return notFound(key)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
