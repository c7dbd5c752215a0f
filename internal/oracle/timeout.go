package oracle

import (
	"context"
	"errors"
	"time"
)

// TimeoutProvider is a decorator that bounds every Generate call with a
// deadline. A call that hits the deadline is reported as
// *ErrProviderUnavailable so it routes through the same fallback path as
// any other oracle failure. Cancellation from the caller's own context is
// passed through untouched.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider so that no single call can outlive d.
// A non-positive d disables the bound.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: d}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.inner.Generate(callCtx, req)
	if err == nil {
		return resp, nil
	}

	// Our deadline fired: convert to unavailability. The parent context
	// being done means the caller cancelled, which is not ours to mask.
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}
	return nil, err
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
