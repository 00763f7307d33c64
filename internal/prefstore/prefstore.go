// Package prefstore persists cross-session editor preferences. The
// original editor kept these in browser localStorage; the server keeps
// them in a small sqlite database so every client sees the same state.
package prefstore

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const discountEnabledKey = "discountEnabled"

// Store is a key-value preference store backed by sqlite.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the preference database at path.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("prefstore: opening %s: %w", path, err)
	}
	db.SetMaxOpenConns(1) // sqlite best practice for simple services

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS prefs (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("prefstore: creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// DiscountEnabled reports whether the discount row participates in
// totals. Defaults to true when the preference has never been set.
func (s *Store) DiscountEnabled() (bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, discountEnabledKey).Scan(&v)
	if err == sql.ErrNoRows {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("prefstore: reading %s: %w", discountEnabledKey, err)
	}
	return v != "false", nil
}

// SetDiscountEnabled stores the discount toggle.
func (s *Store) SetDiscountEnabled(enabled bool) error {
	v := "true"
	if !enabled {
		v = "false"
	}
	return s.set(discountEnabledKey, v)
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("prefstore: writing %s: %w", key, err)
	}
	return nil
}
