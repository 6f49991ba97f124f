package ban

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/redissvc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	at := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	entries := []BanLogEntry{
		{Target: "1.1.1.1", Route: "/auth/login", Strikes: 5, Time: at},
		{Target: "2.2.2.2", Route: "/auth/login", Strikes: 5, Time: at},
		{Target: "1.1.1.1", Route: "/products", Strikes: 5, Time: at},
	}

	s := Summarize(entries)

	require.Equal(t, 3, s.Total)
	require.Equal(t, []Count{{Key: "/auth/login", Count: 2}, {Key: "/products", Count: 1}}, s.ByRoute)
	require.Equal(t, []Count{{Key: "1.1.1.1", Count: 2}, {Key: "2.2.2.2", Count: 1}}, s.ByTarget)
	require.Len(t, s.Entries, 3)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	require.Zero(t, s.Total)
	require.Empty(t, s.ByRoute)
}

func TestNextRun(t *testing.T) {
	loc := time.UTC
	morning := time.Date(2024, time.March, 10, 8, 0, 0, 0, loc)
	require.Equal(t, time.Date(2024, time.March, 10, 23, 59, 0, 0, loc), nextRun(morning))

	exactly := time.Date(2024, time.March, 10, 23, 59, 0, 0, loc)
	require.Equal(t, time.Date(2024, time.March, 11, 23, 59, 0, 0, loc), nextRun(exactly))

	late := time.Date(2024, time.March, 31, 23, 59, 30, 0, loc)
	require.Equal(t, time.Date(2024, time.April, 1, 23, 59, 0, 0, loc), nextRun(late))
}

func TestService_StrikesAndBan(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	rdb, err := redissvc.Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	s := NewService(rdb, Config{MaxStrikes: 3, StrikeWindow: time.Minute, Duration: time.Minute})
	target := "test-" + uuid.NewString()
	t.Cleanup(func() { rdb.Del(ctx, bannedPrefix+target, strikesPrefix+target) })

	for i := 0; i < 2; i++ {
		banned, err := s.RecordStrike(ctx, target, "/products")
		require.NoError(t, err)
		require.False(t, banned)
	}
	isBanned, err := s.IsBanned(ctx, target)
	require.NoError(t, err)
	require.False(t, isBanned)

	banned, err := s.RecordStrike(ctx, target, "/products")
	require.NoError(t, err)
	require.True(t, banned)

	isBanned, err = s.IsBanned(ctx, target)
	require.NoError(t, err)
	require.True(t, isBanned)
}
