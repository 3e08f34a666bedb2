package credentials

import (
	"errors"
	"fmt"

	"github.com/flowline-labs/nodekit/internal/core/domain"
	"github.com/flowline-labs/nodekit/internal/core/ports/driven"
	"github.com/flowline-labs/nodekit/internal/params"
)

// Parameter names read by the resolver. The enabling flag is scoped per node
// family and can be overridden with WithFlagParameter.
const (
	// ParamDynamicEnabled is the default opt-in flag parameter.
	ParamDynamicEnabled = "useDynamicCredentials"
	// ParamCredentialType selects the active authentication variant.
	ParamCredentialType = "credentialType"
	// ParamAccessToken is the OAuth2 access token field.
	ParamAccessToken = "accessToken"
	// ParamAPIKey is the API key field.
	ParamAPIKey = "apiKey"
	// ParamAPIKeyLocation is where the API key is placed (header/query).
	ParamAPIKeyLocation = "apiKeyLocation"
	// ParamAPIKeyName is the header or query parameter name for the key.
	ParamAPIKeyName = "apiKeyName"
	// ParamUsername is the basic-auth username field.
	ParamUsername = "username"
	// ParamPassword is the basic-auth password field.
	ParamPassword = "password"
)

// DefaultTokenPrefix is prepended to OAuth2 access tokens in the
// Authorization header unless overridden with WithTokenPrefix.
const DefaultTokenPrefix = "Bearer "

// Errors returned by the resolver.
var (
	// ErrNotEnabled indicates dynamic credentials are not turned on for the
	// item. Callers check IsDynamicEnabled first; this is never surfaced to
	// the end user as an error.
	ErrNotEnabled = errors.New("credentials: dynamic credentials not enabled")

	// ErrUnsupportedType indicates the credential type discriminator matched
	// no known variant.
	ErrUnsupportedType = errors.New("credentials: unsupported credential type")
)

// ResolutionError wraps a parameter-read failure encountered while building a
// credential spec after enablement was confirmed.
type ResolutionError struct {
	Cause error
}

func (e *ResolutionError) Error() string {
	return "credentials: resolution failed: " + e.Cause.Error()
}

func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// Resolver resolves dynamic credential specs from a parameter store.
type Resolver struct {
	store       driven.ParameterStore
	flagParam   string
	tokenPrefix string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFlagParameter overrides the name of the enabling flag parameter.
// Node families scope the flag name to avoid collisions.
func WithFlagParameter(name string) Option {
	return func(r *Resolver) {
		r.flagParam = name
	}
}

// WithTokenPrefix overrides the Authorization prefix for OAuth2 specs.
// Pass an empty string for services that expect the bare token.
func WithTokenPrefix(prefix string) Option {
	return func(r *Resolver) {
		r.tokenPrefix = prefix
	}
}

// NewResolver creates a resolver over the given parameter store.
func NewResolver(store driven.ParameterStore, opts ...Option) *Resolver {
	r := &Resolver{
		store:       store,
		flagParam:   ParamDynamicEnabled,
		tokenPrefix: DefaultTokenPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IsDynamicEnabled reports whether dynamic credentials are turned on for the
// item. Any read failure (missing parameter, wrong type) counts as disabled:
// dynamic credentials are opt-in and their absence must not break static
// call sites.
func (r *Resolver) IsDynamicEnabled(itemIndex int) bool {
	return params.BoolOr(r.store, r.flagParam, itemIndex, false)
}

// ResolveSpec builds a credential spec from the item's parameters. Fails with
// ErrNotEnabled when the flag is off, ErrUnsupportedType when the
// discriminator matches no variant, and a ResolutionError wrapping the cause
// for any underlying parameter-read failure.
func (r *Resolver) ResolveSpec(itemIndex int) (*domain.CredentialSpec, error) {
	if !r.IsDynamicEnabled(itemIndex) {
		return nil, ErrNotEnabled
	}

	credType, err := params.String(r.store, ParamCredentialType, itemIndex)
	if err != nil {
		return nil, &ResolutionError{Cause: err}
	}

	switch domain.CredentialKind(credType) {
	case domain.CredentialOAuth2:
		return r.resolveOAuth2(itemIndex)
	case domain.CredentialAPIKey:
		return r.resolveAPIKey(itemIndex)
	case domain.CredentialBasicAuth:
		return r.resolveBasicAuth(itemIndex)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, credType)
	}
}

func (r *Resolver) resolveOAuth2(itemIndex int) (*domain.CredentialSpec, error) {
	token, err := params.String(r.store, ParamAccessToken, itemIndex)
	if err != nil {
		return nil, &ResolutionError{Cause: err}
	}
	return &domain.CredentialSpec{
		Kind:        domain.CredentialOAuth2,
		AccessToken: token,
		TokenPrefix: r.tokenPrefix,
	}, nil
}

func (r *Resolver) resolveAPIKey(itemIndex int) (*domain.CredentialSpec, error) {
	key, err := params.String(r.store, ParamAPIKey, itemIndex)
	if err != nil {
		return nil, &ResolutionError{Cause: err}
	}

	location := domain.KeyLocation(params.StringOr(r.store, ParamAPIKeyLocation, itemIndex, string(domain.LocationHeader)))
	if location != domain.LocationHeader && location != domain.LocationQuery {
		return nil, &ResolutionError{
			Cause: fmt.Errorf("%w: unknown api key location %q", domain.ErrInvalidInput, location),
		}
	}

	return &domain.CredentialSpec{
		Kind:     domain.CredentialAPIKey,
		Key:      key,
		Location: location,
		Name:     params.StringOr(r.store, ParamAPIKeyName, itemIndex, domain.DefaultAPIKeyName),
	}, nil
}

func (r *Resolver) resolveBasicAuth(itemIndex int) (*domain.CredentialSpec, error) {
	username, err := params.String(r.store, ParamUsername, itemIndex)
	if err != nil {
		return nil, &ResolutionError{Cause: err}
	}
	password, err := params.String(r.store, ParamPassword, itemIndex)
	if err != nil {
		return nil, &ResolutionError{Cause: err}
	}
	return &domain.CredentialSpec{
		Kind:     domain.CredentialBasicAuth,
		Username: username,
		Password: password,
	}, nil
}

// Authenticate resolves the item's dynamic credentials and applies them to
// the descriptor. When dynamic credentials are disabled the descriptor is
// returned unchanged (as a copy) with no error; resolution failures after
// enablement are surfaced.
func (r *Resolver) Authenticate(desc domain.RequestDescriptor, itemIndex int) (domain.RequestDescriptor, error) {
	if !r.IsDynamicEnabled(itemIndex) {
		return desc.Clone(), nil
	}
	spec, err := r.ResolveSpec(itemIndex)
	if err != nil {
		return domain.RequestDescriptor{}, err
	}
	return Apply(desc, spec), nil
}
