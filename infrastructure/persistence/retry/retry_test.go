package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponentialBackoffWithJitterBounds(t *testing.T) {
	cfg := Config{
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      2 * time.Second,
		BackoffFactor: 2.0,
		JitterEnabled: true,
	}

	for attempt := 1; attempt <= 10; attempt++ {
		delay := ExponentialBackoffWithJitter(attempt, cfg)
		require.GreaterOrEqual(t, delay, time.Duration(0))
		// Jitter scales by at most 1.2x of the capped delay.
		require.LessOrEqual(t, delay, time.Duration(float64(cfg.MaxDelay)*1.2))
	}

	require.Equal(t, time.Duration(0), ExponentialBackoffWithJitter(0, cfg))
}

func TestExecuteWithRetryStopsOnPermanentError(t *testing.T) {
	permanent := errors.New("document not found")

	calls := 0
	err := ExecuteWithRetry(context.Background(), DefaultConfig, func(context.Context) error {
		calls++
		return permanent
	})

	require.ErrorIs(t, err, permanent)
	require.Equal(t, 1, calls)
}

func TestExecuteWithRetryRetriesPredicateErrors(t *testing.T) {
	transient := errors.New("connection reset")
	cfg := Config{
		Enabled:       true,
		MaxAttempts:   3,
		InitialDelay:  time.Millisecond,
		MaxDelay:      time.Millisecond,
		BackoffFactor: 1.0,
		RetryPredicate: func(err error) bool {
			return errors.Is(err, transient)
		},
	}

	calls := 0
	err := ExecuteWithRetry(context.Background(), cfg, func(context.Context) error {
		calls++
		if calls < 3 {
			return transient
		}
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestExecuteWithRetryDisabledRunsOnce(t *testing.T) {
	calls := 0
	err := ExecuteWithRetry(context.Background(), Config{Enabled: false}, func(context.Context) error {
		calls++
		return errors.New("boom")
	})

	require.Error(t, err)
	require.Equal(t, 1, calls)
}

func TestExecuteWithRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ExecuteWithRetry(ctx, DefaultConfig, func(context.Context) error {
		t.Fatal("fn must not run after cancellation")
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
}
