package auth

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/redissvc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	s := NewMemorySessionStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Revoke(ctx, "live", now.Add(time.Hour)))
	require.NoError(t, s.Revoke(ctx, "stale", now.Add(-time.Minute)))

	revoked, err := s.IsRevoked(ctx, "live")
	require.NoError(t, err)
	require.True(t, revoked)

	revoked, _ = s.IsRevoked(ctx, "stale")
	require.False(t, revoked, "already-expired tokens are not stored")

	revoked, _ = s.IsRevoked(ctx, "unknown")
	require.False(t, revoked)

	now = now.Add(2 * time.Hour)
	revoked, _ = s.IsRevoked(ctx, "live")
	require.False(t, revoked)
	require.Equal(t, 1, s.Cleanup())
	require.Zero(t, s.Cleanup())
}

func TestMemorySessionStore_CleanerStops(t *testing.T) {
	s := NewMemorySessionStore()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.StartCleaner(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleaner did not stop after cancel")
	}
}

func TestRedisSessionStore(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	rdb, err := redissvc.Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	s := NewRedisSessionStore(rdb)
	jti := uuid.NewString()

	revoked, err := s.IsRevoked(ctx, jti)
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, jti, time.Now().Add(time.Minute)))
	revoked, err = s.IsRevoked(ctx, jti)
	require.NoError(t, err)
	require.True(t, revoked)
}
