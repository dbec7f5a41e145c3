// Package retry runs an operation a bounded number of times with a fixed
// delay between attempts, retrying only errors the caller classifies as
// transient.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// DefaultAttempts is the total number of tries, the first one included.
	DefaultAttempts = 3
	// DefaultDelay is the pause between two tries.
	DefaultDelay = 2 * time.Second
)

// Classifier reports whether an error is worth another attempt.
type Classifier func(err error) bool

// Policy configures Do.
type Policy struct {
	// Attempts is the total number of tries. Values below 1 mean 1.
	Attempts int
	// Delay is the fixed pause between tries.
	Delay time.Duration
	// Retryable classifies errors. A nil classifier retries everything.
	Retryable Classifier
	// OnRetry is called before each pause with the failed attempt number
	// (starting at 1) and its error.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// DefaultPolicy returns 3 attempts with a 2 second pause, retrying the
// errors the classifier accepts.
func DefaultPolicy(retryable Classifier) Policy {
	return Policy{
		Attempts:  DefaultAttempts,
		Delay:     DefaultDelay,
		Retryable: retryable,
		OnRetry:   nil,
	}
}

// Do calls op until it succeeds, returns a non-retryable error, or the
// attempts run out. The error returned is the one from the last attempt.
// Cancelling ctx stops waiting and returns the context error.
func Do[T any](ctx context.Context, policy Policy, op func(ctx context.Context) (T, error)) (T, error) {
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}

	attempt := 0

	operation := func() (T, error) {
		attempt++

		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		if policy.Retryable != nil && !policy.Retryable(err) {
			return result, backoff.Permanent(err)
		}

		return result, err
	}

	notify := func(err error, delay time.Duration) {
		if policy.OnRetry != nil {
			policy.OnRetry(attempt, err, delay)
		}
	}

	//nolint:gosec // attempts is at least 1
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(policy.Delay), uint64(attempts-1)), ctx)

	return backoff.RetryNotifyWithData(operation, b, notify)
}
