package credentials

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/flowline-labs/nodekit/internal/core/domain"
	"github.com/flowline-labs/nodekit/internal/core/ports/driven"
)

// TokenSource adapts an OAuth2 credential spec to an oauth2.TokenSource so
// resolved dynamic credentials can feed API clients built on oauth2.
func TokenSource(spec *domain.CredentialSpec) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: spec.AccessToken})
}

// NewTokenSource adapts a TokenProvider to an oauth2.TokenSource.
func NewTokenSource(ctx context.Context, tp driven.TokenProvider) oauth2.TokenSource {
	return &providerTokenSource{ctx: ctx, provider: tp}
}

type providerTokenSource struct {
	ctx      context.Context
	provider driven.TokenProvider
}

// Token fetches the current access token from the provider.
func (s *providerTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.provider.GetToken(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("get token: %w", err)
	}
	return &oauth2.Token{AccessToken: token}, nil
}

// Ensure ResolverTokenProvider implements the interface.
var _ driven.TokenProvider = (*ResolverTokenProvider)(nil)

// ResolverTokenProvider exposes a resolver's dynamic OAuth2 credentials as a
// TokenProvider for one item index. API clients that consume TokenProviders
// (e.g. the Graph client) can then run on upstream workflow data.
type ResolverTokenProvider struct {
	resolver  *Resolver
	itemIndex int
}

// NewResolverTokenProvider creates a TokenProvider backed by dynamic
// credential resolution for the given item.
func NewResolverTokenProvider(resolver *Resolver, itemIndex int) *ResolverTokenProvider {
	return &ResolverTokenProvider{resolver: resolver, itemIndex: itemIndex}
}

// GetToken resolves the item's credentials and returns the access token.
// Fails when the resolved spec is not an OAuth2 credential.
func (p *ResolverTokenProvider) GetToken(_ context.Context) (string, error) {
	spec, err := p.resolver.ResolveSpec(p.itemIndex)
	if err != nil {
		return "", err
	}
	if spec.Kind != domain.CredentialOAuth2 {
		return "", fmt.Errorf("%w: %q (want %q)", ErrUnsupportedType, spec.Kind, domain.CredentialOAuth2)
	}
	return spec.AccessToken, nil
}
