package credentials

import (
	"context"

	"github.com/flowline-labs/nodekit/internal/core/domain"
	"github.com/flowline-labs/nodekit/internal/logger"
)

// StaticLookup is the host's stored-credential lookup function.
type StaticLookup func(ctx context.Context, credentialType string) (*domain.CredentialSpec, error)

// WithFallback wraps a static lookup so that dynamic resolution is attempted
// first when enabled. Any failure during dynamic resolution falls back to the
// original lookup, called exactly once with its result returned unchanged.
// A previously working static-credential node must never break because a
// dynamic parameter is misconfigured.
func (r *Resolver) WithFallback(itemIndex int, lookup StaticLookup) StaticLookup {
	return func(ctx context.Context, credentialType string) (*domain.CredentialSpec, error) {
		if r.IsDynamicEnabled(itemIndex) {
			spec, err := r.ResolveSpec(itemIndex)
			if err == nil {
				return spec, nil
			}
			logger.Debugf("dynamic credential resolution failed for item %d, using stored credentials: %v", itemIndex, err)
		}
		return lookup(ctx, credentialType)
	}
}
