package resilience

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy bounds attempts for one logical upstream call and produces
// its backoff schedule: exponential with jitter, capped at MaxDelay.
type RetryPolicy struct {
	maxAttempts  int
	initialDelay time.Duration
	maxDelay     time.Duration
}

// NewRetryPolicy creates a policy. Attempts below 1 and non-positive
// delays fall back to safe minimums.
func NewRetryPolicy(maxAttempts int, initialDelay, maxDelay time.Duration) *RetryPolicy {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if initialDelay <= 0 {
		initialDelay = 200 * time.Millisecond
	}
	if maxDelay < initialDelay {
		maxDelay = initialDelay
	}
	return &RetryPolicy{
		maxAttempts:  maxAttempts,
		initialDelay: initialDelay,
		maxDelay:     maxDelay,
	}
}

// MaxAttempts returns the attempt budget per logical call.
func (p *RetryPolicy) MaxAttempts() int {
	return p.maxAttempts
}

// Schedule returns a fresh backoff sequence for one logical call. The
// sequence is non-decreasing up to the cap, modulo jitter.
func (p *RetryPolicy) Schedule() retry.Backoff {
	b := retry.NewExponential(p.initialDelay)
	b = retry.WithJitter(p.initialDelay/2, b)
	b = retry.WithCappedDuration(p.maxDelay, b)
	return b
}

// Wait sleeps for the next delay in the schedule, honoring ctx. Only the
// calling goroutine is suspended. Returns the ctx error if cancellation
// or the deadline cuts the wait short.
func (p *RetryPolicy) Wait(ctx context.Context, b retry.Backoff) error {
	delay, stop := b.Next()
	if stop {
		delay = p.maxDelay
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
