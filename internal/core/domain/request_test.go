package domain

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestDescriptor_Clone(t *testing.T) {
	original := RequestDescriptor{
		Method:  "POST",
		URL:     "https://example.com/api/v1/tickets",
		Headers: map[string]string{"Accept": "application/json"},
		Query:   map[string]string{"page": "1"},
		Body:    map[string]string{"title": "hello"},
		Auth:    &BasicAuth{Username: "u", Password: "p"},
	}

	clone := original.Clone()

	assert.Equal(t, original, clone)

	// Mutating the clone must not affect the original
	clone.Headers["Authorization"] = "Bearer abc"
	clone.Query["page"] = "2"
	clone.Auth.Password = "changed"

	assert.NotContains(t, original.Headers, "Authorization")
	assert.Equal(t, "1", original.Query["page"])
	assert.Equal(t, "p", original.Auth.Password)
}

func TestRequestDescriptor_Clone_NilMaps(t *testing.T) {
	clone := RequestDescriptor{URL: "https://example.com"}.Clone()

	assert.Nil(t, clone.Headers)
	assert.Nil(t, clone.Query)
	assert.Nil(t, clone.Auth)
}

func TestRequestDescriptor_HTTPRequest(t *testing.T) {
	desc := RequestDescriptor{
		Method:  "GET",
		URL:     "https://example.com/api/v1/tickets",
		Headers: map[string]string{"Accept": "application/json"},
		Query:   map[string]string{"per_page": "50"},
	}

	req, err := desc.HTTPRequest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "https://example.com/api/v1/tickets?per_page=50", req.URL.String())
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
}

func TestRequestDescriptor_HTTPRequest_DefaultsToGet(t *testing.T) {
	req, err := RequestDescriptor{URL: "https://example.com"}.HTTPRequest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
}

func TestRequestDescriptor_HTTPRequest_Body(t *testing.T) {
	desc := RequestDescriptor{
		Method: "POST",
		URL:    "https://example.com/api/v1/tickets",
		Body:   map[string]string{"title": "hello"},
	}

	req, err := desc.HTTPRequest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	data, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"hello"}`, string(data))
}

func TestRequestDescriptor_HTTPRequest_BasicAuth(t *testing.T) {
	desc := RequestDescriptor{
		URL:  "https://example.com",
		Auth: &BasicAuth{Username: "u", Password: "p"},
	}

	req, err := desc.HTTPRequest(context.Background())
	require.NoError(t, err)

	username, password, ok := req.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "u", username)
	assert.Equal(t, "p", password)
}

func TestRequestDescriptor_HTTPRequest_MergesExistingQuery(t *testing.T) {
	desc := RequestDescriptor{
		URL:   "https://example.com/search?q=test",
		Query: map[string]string{"page": "2"},
	}

	req, err := desc.HTTPRequest(context.Background())
	require.NoError(t, err)

	q := req.URL.Query()
	assert.Equal(t, "test", q.Get("q"))
	assert.Equal(t, "2", q.Get("page"))
}
