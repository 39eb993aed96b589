package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryPolicy bounds retries of transient failures. Injected rather than
// hard-coded so tests can substitute zero-delay policies.
type RetryPolicy struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryPolicy returns the standard production policy.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		InitialWait: 1 * time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}
}

// retryProvider is a decorator that retries transient errors with
// exponential backoff and jitter. Every attempt re-sends the same
// request.
type retryProvider struct {
	inner  Provider
	policy RetryPolicy
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, policy RetryPolicy) Provider {
	return &retryProvider{inner: p, policy: policy}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.policy.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !r.shouldRetry(ctx, err, &invalidRetried) {
			return nil, err
		}

		// Last attempt: surface the error without sleeping.
		if attempt == r.policy.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *retryProvider) ModelID() string {
	return r.inner.ModelID()
}

// shouldRetry classifies an error as retryable or terminal.
func (r *retryProvider) shouldRetry(ctx context.Context, err error, invalidRetried *bool) bool {
	// The caller gave up; stop immediately.
	if ctx.Err() != nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	// Credentials won't fix themselves.
	var auth *ErrAuthentication
	if errors.As(err, &auth) {
		return false
	}

	// Max tokens is a configuration issue, not transient.
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	// A schema-invalid response gets one retry.
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	// Rate limits, per-attempt timeouts, and unavailability are
	// transient. Unclassified errors (raw network failures) are treated
	// the same way.
	return true
}

// backoff computes the wait before the next attempt.
func (r *retryProvider) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.policy.InitialWait) * math.Pow(r.policy.Multiplier, float64(attempt))
	if wait > float64(r.policy.MaxWait) {
		wait = float64(r.policy.MaxWait)
	}

	// ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
