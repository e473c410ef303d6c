package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds on the first attempt", func(t *testing.T) {
		calls := 0
		err := Do(ctx, fastConfig(), func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := Do(ctx, fastConfig(), func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns the last error after exhausting attempts", func(t *testing.T) {
		calls := 0
		wantErr := errors.New("still down")
		err := Do(ctx, fastConfig(), func() error {
			calls++
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable error stops immediately", func(t *testing.T) {
		cfg := fastConfig()
		cfg.RetryableErrors = []string{"connection refused"}
		calls := 0
		err := Do(ctx, cfg, func() error {
			calls++
			return errors.New("syntax error")
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retryable pattern matching is case-insensitive", func(t *testing.T) {
		cfg := fastConfig()
		cfg.RetryableErrors = []string{"Connection Refused"}
		calls := 0
		_ = Do(ctx, cfg, func() error {
			calls++
			return errors.New("dial tcp: connection refused")
		})
		assert.Equal(t, cfg.MaxAttempts, calls)
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := Do(cctx, fastConfig(), func() error {
			return errors.New("transient")
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("zero attempts is rejected", func(t *testing.T) {
		err := Do(ctx, Config{}, func() error { return nil })
		assert.Error(t, err)
	})
}

func TestDoWithResult(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the successful result", func(t *testing.T) {
		calls := 0
		got, err := DoWithResult(ctx, fastConfig(), func() (int, error) {
			calls++
			if calls < 2 {
				return 0, errors.New("transient")
			}
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("returns the zero value on failure", func(t *testing.T) {
		got, err := DoWithResult(ctx, fastConfig(), func() (string, error) {
			return "partial", errors.New("down")
		})
		assert.Error(t, err)
		assert.Empty(t, got)
	})
}

func TestBackoff(t *testing.T) {
	cfg := Config{InitialDelay: time.Second, MaxDelay: 5 * time.Second, Multiplier: 2.0}

	assert.Equal(t, time.Second, backoff(0, cfg))
	assert.Equal(t, 2*time.Second, backoff(1, cfg))
	assert.Equal(t, 4*time.Second, backoff(2, cfg))
	assert.Equal(t, 5*time.Second, backoff(3, cfg))
	assert.Equal(t, 5*time.Second, backoff(10, cfg))
}

func TestPostgresConfig(t *testing.T) {
	cfg := PostgresConfig()
	assert.NotEmpty(t, cfg.RetryableErrors)
	assert.True(t, retryable(errors.New("dial tcp 127.0.0.1:5432: connection refused"), cfg))
	assert.False(t, retryable(errors.New("password authentication failed"), cfg))
}
