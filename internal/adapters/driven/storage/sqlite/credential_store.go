package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flowline-labs/nodekit/internal/core/domain"
	"github.com/flowline-labs/nodekit/internal/core/ports/driven"
	"github.com/flowline-labs/nodekit/internal/core/ports/driving"
)

// Ensure CredentialStore implements the interfaces.
var (
	_ driven.CredentialStore    = (*CredentialStore)(nil)
	_ driving.CredentialManager = (*CredentialStore)(nil)
)

// CredentialStore persists static credential specs keyed by credential type
// name. This is the lookup the fallback path consults when dynamic
// credentials are disabled or fail.
type CredentialStore struct {
	db *sql.DB
}

// Save stores a credential spec under a credential type name, replacing any
// existing credential of that type.
func (s *CredentialStore) Save(ctx context.Context, credentialType string, spec *domain.CredentialSpec) error {
	if credentialType == "" {
		return fmt.Errorf("%w: credential type is required", domain.ErrInvalidInput)
	}

	data, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}

	now := time.Now().UTC()
	const query = `
INSERT INTO credentials (id, type, kind, data, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(type) DO UPDATE SET
	kind = excluded.kind,
	data = excluded.data,
	updated_at = excluded.updated_at;`

	_, err = s.db.ExecContext(ctx, query,
		uuid.NewString(), credentialType, string(spec.Kind), string(data), now, now)
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

// GetCredentials returns the stored credential spec for a credential type
// name.
func (s *CredentialStore) GetCredentials(ctx context.Context, credentialType string) (*domain.CredentialSpec, error) {
	const query = `SELECT data FROM credentials WHERE type = ?;`

	var data string
	err := s.db.QueryRowContext(ctx, query, credentialType).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: credentials %q", domain.ErrNotFound, credentialType)
	}
	if err != nil {
		return nil, fmt.Errorf("get credential: %w", err)
	}

	var spec domain.CredentialSpec
	if err := json.Unmarshal([]byte(data), &spec); err != nil {
		return nil, fmt.Errorf("decode credential: %w", err)
	}
	return &spec, nil
}

// List returns all stored credentials, without secret material.
func (s *CredentialStore) List(ctx context.Context) ([]domain.CredentialInfo, error) {
	const query = `SELECT id, type, kind, created_at, updated_at FROM credentials ORDER BY type;`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	var creds []domain.CredentialInfo
	for rows.Next() {
		var c domain.CredentialInfo
		var kind string
		if err := rows.Scan(&c.ID, &c.Type, &kind, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}
		c.Kind = domain.CredentialKind(kind)
		creds = append(creds, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	return creds, nil
}

// Delete removes the stored credential of the given type.
func (s *CredentialStore) Delete(ctx context.Context, credentialType string) error {
	const query = `DELETE FROM credentials WHERE type = ?;`

	res, err := s.db.ExecContext(ctx, query, credentialType)
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: credentials %q", domain.ErrNotFound, credentialType)
	}
	return nil
}
