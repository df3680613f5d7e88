// Package retry implements the shared backoff policy for outbound calls:
// a small fixed attempt budget with a doubling delay between attempts.
// Only errors marked Transient are retried; validation and not-found
// failures pass through on the first attempt.
package retry

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultAttempts  = 3
	DefaultBaseDelay = time.Second
)

type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// Transient marks err as retryable. The wrapped error stays visible to
// errors.Is and errors.As.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

func IsTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

// Do invokes fn up to attempts times, sleeping base, 2*base, 4*base ...
// between attempts. It stops early on success, on a non-transient error,
// or when ctx is done. The last error is returned after the budget is
// exhausted.
func Do(ctx context.Context, attempts int, base time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = DefaultAttempts
	}
	if base <= 0 {
		base = DefaultBaseDelay
	}

	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			t := time.NewTimer(base << (i - 1))
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}

		err = fn()
		if err == nil {
			return nil
		}
		if !IsTransient(err) {
			return err
		}
	}
	return err
}
