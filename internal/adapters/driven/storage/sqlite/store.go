// Package sqlite persists the host's static credential store.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// SQLite driver (CGO-free).
	_ "modernc.org/sqlite"
)

// Store is the unified SQLite store for host-side persistence.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path. An empty path
// defaults to the user config directory.
func NewStore(path string) (*Store, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		dir := filepath.Join(configDir, "nodekit")
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create config dir: %w", err)
		}
		path = filepath.Join(dir, "nodekit.db")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// migrate creates the schema if it does not exist.
func (s *Store) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS credentials (
	id         TEXT PRIMARY KEY,
	type       TEXT NOT NULL UNIQUE,
	kind       TEXT NOT NULL,
	data       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// CredentialStore returns the credential store interface backed by this
// database.
func (s *Store) CredentialStore() *CredentialStore {
	return &CredentialStore{db: s.db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
