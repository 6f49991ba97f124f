package redissvc_test

import (
	"context"
	"os"
	"testing"

	"github.com/Akshadkurundwade07/shopflow/internal/redissvc"
	"github.com/stretchr/testify/require"
)

func TestConnect_InvalidURL(t *testing.T) {
	_, err := redissvc.Connect(context.Background(), "http://localhost:6379")
	require.ErrorContains(t, err, "invalid redis url")
}

func TestConnect_Live(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	rdb, err := redissvc.Connect(context.Background(), url)
	require.NoError(t, err)
	require.NoError(t, rdb.Close())
}
