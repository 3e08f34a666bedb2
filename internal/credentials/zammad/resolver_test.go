package zammad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowline-labs/nodekit/internal/core/domain"
	"github.com/flowline-labs/nodekit/internal/credentials"
	"github.com/flowline-labs/nodekit/internal/params"
)

// newStore builds a snapshot store over a single item's parameters.
func newStore(item map[string]any) *params.SnapshotStore {
	return params.NewSnapshotStore([]map[string]any{item})
}

func TestRewriteBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		baseURL string
		want    string
	}{
		{
			name:    "replaces host, preserves suffix",
			rawURL:  "https://old.example.com/api/v1/tickets/5",
			baseURL: "https://new.example.com/",
			want:    "https://new.example.com/api/v1/tickets/5",
		},
		{
			name:    "base without trailing slash",
			rawURL:  "https://old.example.com/api/v1/users",
			baseURL: "https://new.example.com",
			want:    "https://new.example.com/api/v1/users",
		},
		{
			name:    "preserves query string",
			rawURL:  "https://old.example.com/api/v1/tickets?page=2",
			baseURL: "https://new.example.com/",
			want:    "https://new.example.com/api/v1/tickets?page=2",
		},
		{
			name:    "path without api prefix",
			rawURL:  "https://old.example.com/tickets/5",
			baseURL: "https://new.example.com",
			want:    "https://new.example.com/api/v1/tickets/5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteBaseURL(tt.rawURL, tt.baseURL))
		})
	}
}

func TestResolver_ResolveSpec_TokenAuth(t *testing.T) {
	resolver := NewResolver(newStore(map[string]any{
		credentials.ParamDynamicEnabled: true,
		credentials.ParamCredentialType: TypeTokenAuth,
		credentials.ParamAccessToken:    "zammad-token",
	}))

	spec, err := resolver.ResolveSpec(0)
	require.NoError(t, err)

	assert.Equal(t, domain.CredentialOAuth2, spec.Kind)
	assert.Equal(t, "zammad-token", spec.AccessToken)
	assert.Equal(t, "Token token=", spec.TokenPrefix)
}

func TestResolver_ResolveSpec_BasicAuth(t *testing.T) {
	resolver := NewResolver(newStore(map[string]any{
		credentials.ParamDynamicEnabled: true,
		credentials.ParamCredentialType: TypeBasicAuth,
		credentials.ParamUsername:       "agent@example.com",
		credentials.ParamPassword:       "secret",
	}))

	spec, err := resolver.ResolveSpec(0)
	require.NoError(t, err)

	assert.Equal(t, domain.CredentialBasicAuth, spec.Kind)
	assert.Equal(t, "agent@example.com", spec.Username)
	assert.Equal(t, "secret", spec.Password)
}

func TestResolver_ResolveSpec_UnsupportedType(t *testing.T) {
	resolver := NewResolver(newStore(map[string]any{
		credentials.ParamDynamicEnabled: true,
		credentials.ParamCredentialType: "oauth2",
	}))

	spec, err := resolver.ResolveSpec(0)

	assert.Nil(t, spec)
	assert.ErrorIs(t, err, credentials.ErrUnsupportedType)
}

func TestResolver_ResolveSpec_NotEnabled(t *testing.T) {
	resolver := NewResolver(newStore(map[string]any{}))

	_, err := resolver.ResolveSpec(0)
	assert.ErrorIs(t, err, credentials.ErrNotEnabled)
}

func TestResolver_Authenticate_TokenAuth(t *testing.T) {
	resolver := NewResolver(newStore(map[string]any{
		credentials.ParamDynamicEnabled: true,
		credentials.ParamCredentialType: TypeTokenAuth,
		credentials.ParamAccessToken:    "zammad-token",
		ParamBaseURL:                    "https://new.example.com/",
	}))
	desc := domain.RequestDescriptor{
		Method: "GET",
		URL:    "https://old.example.com/api/v1/tickets/5",
	}

	out, err := resolver.Authenticate(desc, 0)
	require.NoError(t, err)

	assert.Equal(t, "https://new.example.com/api/v1/tickets/5", out.URL)
	assert.Equal(t, "Token token=zammad-token", out.Headers["Authorization"])
	assert.Nil(t, out.Auth)
	assert.False(t, out.SkipTLSVerify)
}

func TestResolver_Authenticate_BasicAuthUsesAuthStructure(t *testing.T) {
	resolver := NewResolver(newStore(map[string]any{
		credentials.ParamDynamicEnabled: true,
		credentials.ParamCredentialType: TypeBasicAuth,
		credentials.ParamUsername:       "agent@example.com",
		credentials.ParamPassword:       "secret",
		ParamBaseURL:                    "https://new.example.com",
	}))
	desc := domain.RequestDescriptor{
		URL:     "https://old.example.com/api/v1/users",
		Headers: map[string]string{"Accept": "application/json"},
	}

	out, err := resolver.Authenticate(desc, 0)
	require.NoError(t, err)

	require.NotNil(t, out.Auth)
	assert.Equal(t, "agent@example.com", out.Auth.Username)
	assert.Equal(t, "secret", out.Auth.Password)
	assert.NotContains(t, out.Headers, "Authorization",
		"basic auth travels in the auth structure, not a header")
}

func TestResolver_Authenticate_SkipTLSVerify(t *testing.T) {
	resolver := NewResolver(newStore(map[string]any{
		credentials.ParamDynamicEnabled: true,
		credentials.ParamCredentialType: TypeTokenAuth,
		credentials.ParamAccessToken:    "t",
		ParamBaseURL:                    "https://internal.example.com",
		ParamAllowUnauthorizedCerts:     true,
	}))

	out, err := resolver.Authenticate(domain.RequestDescriptor{URL: "https://old.example.com/api/v1/tickets"}, 0)
	require.NoError(t, err)

	assert.True(t, out.SkipTLSVerify)
}

func TestResolver_Authenticate_MissingBaseURL(t *testing.T) {
	resolver := NewResolver(newStore(map[string]any{
		credentials.ParamDynamicEnabled: true,
		credentials.ParamCredentialType: TypeTokenAuth,
		credentials.ParamAccessToken:    "t",
	}))

	_, err := resolver.Authenticate(domain.RequestDescriptor{URL: "https://old.example.com/api/v1/tickets"}, 0)

	var resErr *credentials.ResolutionError
	assert.ErrorAs(t, err, &resErr)
}

func TestResolver_Authenticate_Disabled(t *testing.T) {
	resolver := NewResolver(newStore(map[string]any{}))
	desc := domain.RequestDescriptor{URL: "https://old.example.com/api/v1/tickets"}

	out, err := resolver.Authenticate(desc, 0)
	require.NoError(t, err)

	assert.Equal(t, desc, out, "disabled resolution returns the descriptor unchanged")
}

func TestResolver_Authenticate_NeverMutatesInput(t *testing.T) {
	resolver := NewResolver(newStore(map[string]any{
		credentials.ParamDynamicEnabled: true,
		credentials.ParamCredentialType: TypeTokenAuth,
		credentials.ParamAccessToken:    "t",
		ParamBaseURL:                    "https://new.example.com",
	}))
	original := domain.RequestDescriptor{
		URL:     "https://old.example.com/api/v1/tickets/5",
		Headers: map[string]string{"Accept": "application/json"},
	}
	snapshot := original.Clone()

	_, err := resolver.Authenticate(original, 0)
	require.NoError(t, err)

	assert.Equal(t, snapshot, original)
}
