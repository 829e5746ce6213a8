package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// RetryConfig controls exponential backoff for LLM calls.
type RetryConfig struct {
	MaxRetries  int           // attempts after the first call
	InitialWait time.Duration // wait before the first retry
	MaxWait     time.Duration // cap on a single wait
	Multiplier  float64       // wait growth factor
}

// DefaultRetryConfig returns the backoff used for provider calls: 3 retries,
// 1s initial wait, doubling, capped at 30s.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:  3,
		InitialWait: 1 * time.Second,
		MaxWait:     30 * time.Second,
		Multiplier:  2.0,
	}
}

// RetryExhaustedError is returned when all attempts failed. It wraps the last
// error observed.
type RetryExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("all %d attempts failed: %v", e.Attempts, e.LastErr)
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.LastErr
}

// Retry runs fn with exponential backoff. Non-retryable errors are returned
// immediately; retryable ones are retried until the budget is exhausted.
// Context cancellation aborts the wait and returns the context error.
func Retry[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, error) {
	var zero T

	wait := cfg.InitialWait
	attempts := cfg.MaxRetries + 1
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(wait):
			}
			wait = time.Duration(float64(wait) * cfg.Multiplier)
			if wait > cfg.MaxWait {
				wait = cfg.MaxWait
			}
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !IsRetryable(err) {
			return zero, err
		}
	}

	return zero, &RetryExhaustedError{Attempts: attempts, LastErr: lastErr}
}

// retryableMarkers are substrings of provider error messages that indicate a
// transient condition worth retrying.
var retryableMarkers = []string{
	"429",
	"rate limit",
	"ratelimit",
	"quota",
	"resource exhausted",
	"500",
	"502",
	"503",
	"504",
	"internal error",
	"deadline exceeded",
	"connection reset",
	"temporarily unavailable",
}

// IsRetryable reports whether an error looks transient. Provider SDK errors do
// not expose a stable typed surface for this, so classification is by message.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range retryableMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
