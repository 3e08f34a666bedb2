package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeParamFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolve_OAuth2(t *testing.T) {
	path := writeParamFile(t, `
[[items]]
useDynamicCredentials = true
credentialType = "oauth2"
accessToken = "my-secret-token"
`)

	out, err := runCommand(t, nil, "",
		"resolve", "--params", path, "--url", "https://example.com/api/v1/tickets")
	require.NoError(t, err)

	assert.Contains(t, out, "dynamic credentials: enabled")
	assert.Contains(t, out, "GET https://example.com/api/v1/tickets")
	assert.Contains(t, out, "header: Authorization: Bearer ****")
	assert.NotContains(t, out, "my-secret-token", "secrets must be masked")
}

func TestResolve_Disabled(t *testing.T) {
	path := writeParamFile(t, `
[[items]]
useDynamicCredentials = false
`)

	out, err := runCommand(t, nil, "", "resolve", "--params", path)
	require.NoError(t, err)

	assert.Contains(t, out, "dynamic credentials: disabled")
}

func TestResolve_Zammad(t *testing.T) {
	path := writeParamFile(t, `
[[items]]
useDynamicCredentials = true
credentialType = "tokenAuth"
accessToken = "zammad-token"
baseUrl = "https://new.example.com/"
`)

	out, err := runCommand(t, nil, "",
		"resolve", "--params", path, "--zammad",
		"--url", "https://old.example.com/api/v1/tickets/5")
	require.NoError(t, err)

	assert.Contains(t, out, "GET https://new.example.com/api/v1/tickets/5")
	assert.Contains(t, out, "header: Authorization: Token ****")
}

func TestResolve_MissingParamsFile(t *testing.T) {
	_, err := runCommand(t, nil, "",
		"resolve", "--params", filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty", value: "", want: ""},
		{name: "short", value: "abc", want: "****"},
		{name: "long", value: "super-secret-value", want: "su****"},
		{name: "bearer scheme", value: "Bearer my-token", want: "Bearer ****"},
		{name: "basic scheme", value: "Basic dTpw", want: "Basic ****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maskSecret(tt.value))
		})
	}
}
