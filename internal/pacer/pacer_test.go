package pacer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacer_WaitSpacesCalls(t *testing.T) {
	clock := NewFakeClock(time.Unix(1_700_000_000, 0))
	p := New(5*time.Second, clock)

	for i := 0; i < 3; i++ {
		require.NoError(t, p.Wait(context.Background()))
	}
	assert.Equal(t, []time.Duration{5 * time.Second, 5 * time.Second, 5 * time.Second}, clock.Sleeps())
}

func TestPacer_ElapsedTimeCountsTowardsInterval(t *testing.T) {
	clock := NewFakeClock(time.Unix(1_700_000_000, 0))
	p := New(5*time.Second, clock)

	clock.Advance(3 * time.Second)
	require.NoError(t, p.Wait(context.Background()))
	sleeps := clock.Sleeps()
	require.Len(t, sleeps, 1)
	assert.InDelta(t, float64(2*time.Second), float64(sleeps[0]), float64(time.Millisecond))

	clock.Advance(10 * time.Second)
	require.NoError(t, p.Wait(context.Background()))
	assert.Len(t, clock.Sleeps(), 1)
}

func TestPacer_ZeroInterval(t *testing.T) {
	clock := NewFakeClock(time.Now())
	p := New(0, clock)
	require.NoError(t, p.Wait(context.Background()))
	assert.Empty(t, clock.Sleeps())
}

func TestPacer_CancelledContext(t *testing.T) {
	clock := NewFakeClock(time.Now())
	p := New(time.Second, clock)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Wait(ctx), context.Canceled)
}

func TestPacer_Backoff(t *testing.T) {
	p := New(5*time.Second, NewFakeClock(time.Now()))
	assert.Equal(t, 5*time.Second, p.Backoff(0))
	assert.Equal(t, 10*time.Second, p.Backoff(1))
	assert.Equal(t, 20*time.Second, p.Backoff(2))
	assert.Equal(t, 40*time.Second, p.Backoff(3))
	assert.Equal(t, 40*time.Second, p.Backoff(10))
}

func TestSystemClock_SleepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	err := SystemClock().Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPacer_ResetDrainsRefilledToken(t *testing.T) {
	clock := NewFakeClock(time.Unix(1_700_000_000, 0))
	p := New(5*time.Second, clock)

	// 空闲足够久，令牌桶已经补满
	clock.Advance(time.Minute)
	p.Reset()
	require.NoError(t, p.Wait(context.Background()))
	assert.Equal(t, []time.Duration{5 * time.Second}, clock.Sleeps())
}

func TestPacer_SleepDoesNotCountAsInterval(t *testing.T) {
	clock := NewFakeClock(time.Unix(1_700_000_000, 0))
	p := New(5*time.Second, clock)

	require.NoError(t, p.Sleep(context.Background(), 10*time.Second))
	require.NoError(t, p.Wait(context.Background()))
	assert.Equal(t, []time.Duration{10 * time.Second, 5 * time.Second}, clock.Sleeps())
}
