package driven

import (
	"context"

	"github.com/flowline-labs/nodekit/internal/core/domain"
)

// CredentialStore provides the host's persisted static-credential lookup.
// This is the fallback path when dynamic credentials are disabled or fail.
type CredentialStore interface {
	// GetCredentials returns the stored credential spec for a credential
	// type name. Returns an error wrapping domain.ErrNotFound when no
	// credential of that type is stored.
	GetCredentials(ctx context.Context, credentialType string) (*domain.CredentialSpec, error)
}

// TokenProvider supplies an OAuth access token for API calls.
type TokenProvider interface {
	// GetToken returns a valid access token.
	GetToken(ctx context.Context) (string, error)
}
