package notify

import (
	"context"
	"errors"
	"time"
)

// RetryConfig controls retry behavior for SMS delivery
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts before giving up
	MaxAttempts int

	// Delay is the fixed wait between attempts
	Delay time.Duration
}

// DefaultRetryConfig matches the delivery contract: three attempts with
// a fixed two-second gap.
var DefaultRetryConfig = RetryConfig{
	MaxAttempts: 3,
	Delay:       2 * time.Second,
}

// RetryResult indicates the outcome of a retried operation
type RetryResult struct {
	// Success indicates if the operation eventually succeeded
	Success bool

	// Attempts is how many attempts were made
	Attempts int

	// LastErr is the error from the final failed attempt (if any)
	LastErr error
}

// retryFixed retries an operation with a fixed inter-attempt delay.
// Configuration errors abort immediately: retrying cannot fix missing
// credentials.
func retryFixed(
	ctx context.Context,
	cfg RetryConfig,
	operation func(ctx context.Context) error,
) RetryResult {
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := operation(ctx)
		if err == nil {
			return RetryResult{Success: true, Attempts: attempt}
		}

		lastErr = err

		if errors.Is(err, ErrNotConfigured) {
			return RetryResult{Success: false, Attempts: attempt, LastErr: err}
		}

		if attempt < cfg.MaxAttempts {
			select {
			case <-ctx.Done():
				return RetryResult{Success: false, Attempts: attempt, LastErr: ctx.Err()}
			case <-time.After(cfg.Delay):
			}
		}
	}

	return RetryResult{Success: false, Attempts: cfg.MaxAttempts, LastErr: lastErr}
}
