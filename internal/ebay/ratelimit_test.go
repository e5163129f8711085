package ebay

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowsUpToDailyLimit(t *testing.T) {
	t.Parallel()

	r := NewRateLimiter(1000, 1000, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Wait(ctx))
	}
	assert.Equal(t, int64(3), r.DailyCount())

	err := r.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestRateLimiter_DailyWindowResets(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	r := NewRateLimiter(1000, 1000, 1, WithRateLimiterNowFunc(func() time.Time { return now }))
	ctx := context.Background()

	require.NoError(t, r.Wait(ctx))
	require.ErrorIs(t, r.Wait(ctx), ErrDailyLimitReached)

	// Advance past the 24h window.
	now = now.Add(25 * time.Hour)
	require.NoError(t, r.Wait(ctx))
	assert.Equal(t, int64(1), r.DailyCount())
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	// Burst 1 with a tiny rate forces the second call to block.
	r := NewRateLimiter(0.001, 1, 100)

	require.NoError(t, r.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := r.Wait(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDailyLimitReached)
}
