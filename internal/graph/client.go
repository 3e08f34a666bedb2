// Package graph provides Microsoft Graph mail helpers: a rate-limited client,
// nextLink pagination, and attachment fetching. The HTTP client itself is
// injected; this package only shapes and sequences the calls.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/flowline-labs/nodekit/internal/core/ports/driven"
)

// defaultBaseURL is the Microsoft Graph API base URL.
const defaultBaseURL = "https://graph.microsoft.com/v1.0"

// Doer executes HTTP requests. Satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the Microsoft Graph mail API.
type Client struct {
	http    Doer
	baseURL string
	tokens  driven.TokenProvider
	limiter *RateLimiter
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *Client) {
		c.http = doer
	}
}

// WithBaseURL overrides the Graph API base URL. Used in tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithRateLimiter overrides the default rate limiter.
func WithRateLimiter(limiter *RateLimiter) ClientOption {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// NewClient creates a Graph client authenticating with the token provider.
func NewClient(tokens driven.TokenProvider, opts ...ClientOption) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultBaseURL,
		tokens:  tokens,
		limiter: NewRateLimiter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON performs a rate-limited GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	token, err := c.tokens.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("graph request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if IsRateLimited(resp.StatusCode) {
			retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
			c.limiter.RecordRateLimitError(retryAfter)
		}
		return fmt.Errorf("graph request failed with status %d: %w",
			resp.StatusCode, WrapError(resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
