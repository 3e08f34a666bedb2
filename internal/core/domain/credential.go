package domain

// CredentialKind identifies which authentication variant a spec carries.
type CredentialKind string

const (
	// CredentialOAuth2 is a bearer-style access token credential.
	CredentialOAuth2 CredentialKind = "oauth2"
	// CredentialAPIKey is an API key placed in a header or query parameter.
	CredentialAPIKey CredentialKind = "apiKey"
	// CredentialBasicAuth is a username/password credential.
	CredentialBasicAuth CredentialKind = "basicAuth"
)

// KeyLocation identifies where an API key is placed on the request.
type KeyLocation string

const (
	// LocationHeader places the API key in a request header.
	LocationHeader KeyLocation = "header"
	// LocationQuery places the API key in a query parameter.
	LocationQuery KeyLocation = "query"
)

// DefaultAPIKeyName is the header/query parameter name used when a node does
// not configure one.
const DefaultAPIKeyName = "X-API-Key"

// CredentialSpec holds the authentication material for one request. Exactly
// one variant is active, selected by Kind; fields for inactive variants are
// zero. A spec is constructed fresh per item index and has no identity or
// persistence beyond the call that produced it.
type CredentialSpec struct {
	// Kind selects the active variant.
	Kind CredentialKind

	// AccessToken is the token for OAuth2 specs.
	AccessToken string
	// TokenPrefix is prepended to the token in the Authorization header
	// (typically "Bearer "). Explicit so either prefix convention is
	// reproducible per service.
	TokenPrefix string

	// Key is the API key for APIKey specs.
	Key string
	// Location is where the API key is placed (defaults to header).
	Location KeyLocation
	// Name is the header or query parameter name for the API key.
	Name string

	// Username is the username for BasicAuth specs.
	Username string
	// Password is the password for BasicAuth specs.
	Password string
}

// CredentialSource identifies where authentication material originates.
type CredentialSource string

const (
	// SourceStatic defers to the host's persisted credential store.
	SourceStatic CredentialSource = "static"
	// SourceDynamic reads credential fields from node parameters at run time.
	SourceDynamic CredentialSource = "dynamic"
)
