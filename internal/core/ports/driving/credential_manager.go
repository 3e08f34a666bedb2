// Package driving defines the interfaces through which users drive the
// application.
package driving

import (
	"context"

	"github.com/flowline-labs/nodekit/internal/core/domain"
)

// CredentialManager manages the host's persisted static credentials.
type CredentialManager interface {
	// Save stores a credential spec under a credential type name,
	// replacing any existing credential of that type.
	Save(ctx context.Context, credentialType string, spec *domain.CredentialSpec) error

	// GetCredentials returns the stored credential spec for a type name.
	GetCredentials(ctx context.Context, credentialType string) (*domain.CredentialSpec, error)

	// List returns all stored credentials, without secret material.
	List(ctx context.Context) ([]domain.CredentialInfo, error)

	// Delete removes the stored credential of the given type.
	Delete(ctx context.Context, credentialType string) error
}
