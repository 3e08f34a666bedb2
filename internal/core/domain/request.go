package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// BasicAuth holds a username/password pair carried on a request descriptor.
// Some services (e.g. Zammad) expect credentials in a dedicated auth structure
// rather than a pre-computed Authorization header.
type BasicAuth struct {
	Username string
	Password string
}

// RequestDescriptor is the structured representation of an outbound HTTP call
// before execution. Credential resolution operates on descriptors by copy:
// a resolver never mutates a caller's descriptor in place.
type RequestDescriptor struct {
	// Method is the HTTP method (defaults to GET when empty).
	Method string
	// URL is the request URL without query parameters from Query.
	URL string
	// Headers are the request headers.
	Headers map[string]string
	// Query holds query parameters merged into the URL at build time.
	Query map[string]string
	// Body is an optional JSON-serialisable request body.
	Body any
	// Auth carries basic-auth credentials applied at build time.
	Auth *BasicAuth
	// SkipTLSVerify disables certificate verification for this request.
	SkipTLSVerify bool
}

// Clone returns a deep copy of the descriptor. Header and query maps are
// copied so mutating the clone never affects the original.
func (r RequestDescriptor) Clone() RequestDescriptor {
	out := r
	if r.Headers != nil {
		out.Headers = make(map[string]string, len(r.Headers))
		for k, v := range r.Headers {
			out.Headers[k] = v
		}
	}
	if r.Query != nil {
		out.Query = make(map[string]string, len(r.Query))
		for k, v := range r.Query {
			out.Query[k] = v
		}
	}
	if r.Auth != nil {
		auth := *r.Auth
		out.Auth = &auth
	}
	return out
}

// HTTPRequest builds an executable *http.Request from the descriptor.
// Query parameters are merged into the URL, headers are set, and a non-nil
// body is JSON-encoded.
func (r RequestDescriptor) HTTPRequest(ctx context.Context) (*http.Request, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	u, err := url.Parse(r.URL)
	if err != nil {
		return nil, fmt.Errorf("parse request url: %w", err)
	}
	if len(r.Query) > 0 {
		q := u.Query()
		for k, v := range r.Query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	var body *bytes.Reader
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	var req *http.Request
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, u.String(), body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u.String(), http.NoBody)
	}
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	if r.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.Auth != nil {
		req.SetBasicAuth(r.Auth.Username, r.Auth.Password)
	}

	return req, nil
}
