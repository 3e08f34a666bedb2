package graph

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 2})

	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow(), "burst exhausted")
}

func TestRateLimiter_Wait(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 1000, BurstSize: 10})

	require.NoError(t, limiter.Wait(context.Background()))
}

func TestRateLimiter_Wait_ContextCancelled(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 1000, BurstSize: 10})
	limiter.RecordRateLimitError(60)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, limiter.Wait(ctx), context.DeadlineExceeded)
}

func TestRateLimiter_RecordRateLimitError(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 1000, BurstSize: 10})

	assert.True(t, limiter.Allow())

	limiter.RecordRateLimitError(30)
	assert.False(t, limiter.Allow(), "backoff blocks requests")
}

func TestRateLimiter_RecordRateLimitError_DefaultBackoff(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 1000, BurstSize: 10})

	// Missing or malformed Retry-After falls back to a fixed backoff.
	limiter.RecordRateLimitError(0)
	assert.False(t, limiter.Allow())
}
