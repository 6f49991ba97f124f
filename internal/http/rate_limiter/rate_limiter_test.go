package rate_limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiter_Burst(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	l := New(1, 3)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		require.True(t, l.Allow("1.2.3.4"), "request %d within burst", i+1)
	}
	require.False(t, l.Allow("1.2.3.4"))
	require.True(t, l.Allow("5.6.7.8"), "visitors are limited independently")

	now = now.Add(time.Second)
	require.True(t, l.Allow("1.2.3.4"), "one token refills per second")
	require.False(t, l.Allow("1.2.3.4"))
}

func TestLimiter_Cleanup(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	l := New(1, 1)
	l.now = func() time.Time { return now }

	l.Allow("old")
	now = now.Add(4 * time.Minute)
	l.Allow("fresh")
	now = now.Add(2 * time.Minute)

	require.Equal(t, 1, l.Cleanup(5*time.Minute))
	require.Equal(t, 1, l.Len())

	l.Reset()
	require.Zero(t, l.Len())
}
