package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"google.golang.org/api/googleapi"
)

const (
	// maxTries bounds the number of attempts per remote call.
	maxTries = 4

	// initialInterval is the first backoff delay.
	initialInterval = 500 * time.Millisecond
)

// Do runs op with exponential backoff, retrying transient transport errors.
// Client errors (4xx other than 408 and 429) are treated as permanent and
// returned immediately. Context cancellation stops the retry loop.
func Do[T any](ctx context.Context, op func() (T, error)) (T, error) {
	wrapped := func() (T, error) {
		v, err := op()
		if err != nil && !isRetryable(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialInterval

	return backoff.Retry(ctx, wrapped,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(maxTries),
	)
}

// isRetryable reports whether a remote call error is worth retrying.
// Rate limiting, timeouts and server faults are transient; other client
// errors are not.
func isRetryable(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == 408 || gerr.Code == 429:
			return true
		case gerr.Code >= 500:
			return true
		case gerr.Code >= 400:
			return false
		}
	}
	// Network-level failures come through as plain errors
	return true
}
