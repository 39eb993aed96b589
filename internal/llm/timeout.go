package llm

import (
	"context"
	"errors"
	"time"
)

// timeoutProvider bounds each attempt with a deadline so a stuck request
// cannot hang the whole session. Sits under the retry decorator, so a
// timed-out attempt is retried like any other transient failure.
type timeoutProvider struct {
	inner Provider
	limit time.Duration
}

// WithTimeout wraps a Provider with a per-attempt deadline.
// A non-positive limit disables the wrapper.
func WithTimeout(p Provider, limit time.Duration) Provider {
	if limit <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, limit: limit}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()

	resp, err := t.inner.Generate(attemptCtx, req)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		// Our deadline fired, not the caller's.
		return nil, &ErrTimeout{After: t.limit, Err: err}
	}
	return resp, err
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
