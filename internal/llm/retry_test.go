package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:  3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), fastRetryConfig(), func() (string, error) {
		calls++
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestRetry_RecoversFromTransientError(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), fastRetryConfig(), func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("googleapi: Error 429: rate limit exceeded")
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, calls)
}

func TestRetry_NonRetryableFailsImmediately(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fastRetryConfig(), func() (string, error) {
		calls++
		return "", errors.New("API key not valid")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetry_ExhaustsBudget(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fastRetryConfig(), func() (string, error) {
		calls++
		return "", errors.New("503 service temporarily unavailable")
	})

	require.Error(t, err)
	assert.Equal(t, 4, calls) // initial attempt + 3 retries

	var exhausted *RetryExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 4, exhausted.Attempts)
	assert.Contains(t, exhausted.LastErr.Error(), "503")
}

func TestRetry_ContextCancellationStopsWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := fastRetryConfig()
	cfg.InitialWait = time.Minute

	calls := 0
	start := time.Now()
	_, err := Retry(ctx, cfg, func() (string, error) {
		calls++
		cancel()
		return "", errors.New("429 too many requests")
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{errors.New("googleapi: Error 429: Quota exceeded"), true},
		{errors.New("rate limit reached"), true},
		{errors.New("rpc error: code = ResourceExhausted desc = resource exhausted"), true},
		{errors.New("500 internal error"), true},
		{errors.New("502 bad gateway"), true},
		{errors.New("connection reset by peer"), true},
		{errors.New("API key not valid"), false},
		{errors.New("invalid request payload"), false},
		{nil, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsRetryable(tc.err), "error %v", tc.err)
	}
}
