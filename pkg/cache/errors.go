package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when a cache backend cannot be reached
// (connection refused, timeout).
var ErrUnavailable = errors.New("cache backend unavailable")

// retryAttempts and retryBaseDelay shape RetryWithBackoff's schedule:
// up to 3 tries with 1s, 2s waits between them.
const (
	retryAttempts  = 3
	retryBaseDelay = time.Second
)

// RetryableError marks an error as worth retrying.
type RetryableError struct{ Err error }

// Retryable wraps an error as a RetryableError.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// Error returns the message of the wrapped error.
func (e *RetryableError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err carries a RetryableError anywhere in
// its chain.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn, retrying with doubling delays as long as it
// returns a Retryable error. Other errors, success, and running out of
// attempts all end the loop; a cancelled ctx ends it between attempts.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryBaseDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !IsRetryable(err) || attempt == retryAttempts {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
}
