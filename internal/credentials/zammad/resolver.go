// Package zammad implements the Zammad-flavoured dynamic credential resolver.
//
// Zammad differs from the generic resolver in three ways: the instance base
// URL is itself part of the credential and rewrites the request URL, token
// auth uses the "Token token=" Authorization scheme, and basic-auth
// credentials travel in the descriptor's auth structure instead of a
// pre-computed header.
package zammad

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/flowline-labs/nodekit/internal/core/domain"
	"github.com/flowline-labs/nodekit/internal/core/ports/driven"
	"github.com/flowline-labs/nodekit/internal/credentials"
	"github.com/flowline-labs/nodekit/internal/params"
)

// apiPrefix is the fixed API-version prefix on all Zammad endpoints.
const apiPrefix = "/api/v1"

// TokenPrefix is the Authorization scheme Zammad expects for token auth.
const TokenPrefix = "Token token="

// Zammad-specific parameter names.
const (
	// ParamBaseURL is the resolved Zammad instance base URL.
	ParamBaseURL = "baseUrl"
	// ParamAllowUnauthorizedCerts disables TLS certificate verification.
	ParamAllowUnauthorizedCerts = "allowUnauthorizedCerts"
)

// Credential type discriminator values accepted by Zammad nodes.
const (
	// TypeTokenAuth authenticates with an API token.
	TypeTokenAuth = "tokenAuth"
	// TypeBasicAuth authenticates with username and password.
	TypeBasicAuth = "basicAuth"
)

// Resolver resolves Zammad dynamic credentials from node parameters.
type Resolver struct {
	store     driven.ParameterStore
	flagParam string
}

// NewResolver creates a Zammad resolver over the given parameter store.
func NewResolver(store driven.ParameterStore) *Resolver {
	return &Resolver{
		store:     store,
		flagParam: credentials.ParamDynamicEnabled,
	}
}

// IsDynamicEnabled reports whether dynamic credentials are turned on for the
// item. Read failures count as disabled.
func (r *Resolver) IsDynamicEnabled(itemIndex int) bool {
	return params.BoolOr(r.store, r.flagParam, itemIndex, false)
}

// ResolveSpec builds a credential spec from the item's parameters.
func (r *Resolver) ResolveSpec(itemIndex int) (*domain.CredentialSpec, error) {
	if !r.IsDynamicEnabled(itemIndex) {
		return nil, credentials.ErrNotEnabled
	}

	credType, err := params.String(r.store, credentials.ParamCredentialType, itemIndex)
	if err != nil {
		return nil, &credentials.ResolutionError{Cause: err}
	}

	switch credType {
	case TypeTokenAuth:
		token, err := params.String(r.store, credentials.ParamAccessToken, itemIndex)
		if err != nil {
			return nil, &credentials.ResolutionError{Cause: err}
		}
		return &domain.CredentialSpec{
			Kind:        domain.CredentialOAuth2,
			AccessToken: token,
			TokenPrefix: TokenPrefix,
		}, nil

	case TypeBasicAuth:
		username, err := params.String(r.store, credentials.ParamUsername, itemIndex)
		if err != nil {
			return nil, &credentials.ResolutionError{Cause: err}
		}
		password, err := params.String(r.store, credentials.ParamPassword, itemIndex)
		if err != nil {
			return nil, &credentials.ResolutionError{Cause: err}
		}
		return &domain.CredentialSpec{
			Kind:     domain.CredentialBasicAuth,
			Username: username,
			Password: password,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", credentials.ErrUnsupportedType, credType)
	}
}

// Authenticate resolves the item's Zammad credentials and applies them to the
// descriptor: the URL is rebased onto the resolved instance base URL, token
// auth becomes a "Token token=" Authorization header, and basic auth is
// placed in the descriptor's auth structure. The input descriptor is never
// mutated. When dynamic credentials are disabled the descriptor is returned
// unchanged as a copy.
func (r *Resolver) Authenticate(desc domain.RequestDescriptor, itemIndex int) (domain.RequestDescriptor, error) {
	if !r.IsDynamicEnabled(itemIndex) {
		return desc.Clone(), nil
	}

	spec, err := r.ResolveSpec(itemIndex)
	if err != nil {
		return domain.RequestDescriptor{}, err
	}

	baseURL, err := params.String(r.store, ParamBaseURL, itemIndex)
	if err != nil {
		return domain.RequestDescriptor{}, &credentials.ResolutionError{Cause: err}
	}

	out := desc.Clone()
	out.URL = RewriteBaseURL(out.URL, baseURL)
	out.SkipTLSVerify = params.BoolOr(r.store, ParamAllowUnauthorizedCerts, itemIndex, false)

	switch spec.Kind {
	case domain.CredentialOAuth2:
		if out.Headers == nil {
			out.Headers = make(map[string]string, 1)
		}
		out.Headers["Authorization"] = spec.TokenPrefix + spec.AccessToken
	case domain.CredentialBasicAuth:
		out.Auth = &domain.BasicAuth{Username: spec.Username, Password: spec.Password}
	}

	return out, nil
}

// RewriteBaseURL rebases a request URL onto a new instance base URL. The path
// suffix following the fixed /api/v1 prefix is preserved; a trailing slash on
// the base URL is stripped. URLs without the prefix keep their full path.
func RewriteBaseURL(rawURL, baseURL string) string {
	base := strings.TrimRight(baseURL, "/")

	suffix := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		suffix = u.Path
		if u.RawQuery != "" {
			suffix += "?" + u.RawQuery
		}
	}
	if i := strings.Index(suffix, apiPrefix); i >= 0 {
		suffix = suffix[i+len(apiPrefix):]
	}

	return base + apiPrefix + suffix
}
