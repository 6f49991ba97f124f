package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/repo"
	"github.com/stretchr/testify/require"
)

func TestInMemoryMovementRepository_GetByProductID(t *testing.T) {
	r := repo.NewInMemoryMovementRepository()
	ctx := context.Background()
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	for day := 0; day < 5; day++ {
		r.AddMovement(owner, "p1", day+1, base.AddDate(0, 0, day))
	}
	r.AddMovement(owner, "p2", 9, base)
	r.AddMovement("owner-2", "p1", 9, base)

	all, total, err := r.GetByProductID(ctx, owner, "p1", repo.MovementFilter{})
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Equal(t, 5, all[0].Delta, "newest first")

	since := base.AddDate(0, 0, 1)
	until := base.AddDate(0, 0, 3)
	ranged, total, err := r.GetByProductID(ctx, owner, "p1", repo.MovementFilter{Since: &since, Until: &until})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Equal(t, []int{4, 3, 2}, []int{ranged[0].Delta, ranged[1].Delta, ranged[2].Delta})

	paged, total, err := r.GetByProductID(ctx, owner, "p1", repo.MovementFilter{Offset: ptr(1), Limit: ptr(2)})
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Len(t, paged, 2)
	require.Equal(t, 4, paged[0].Delta)

	empty, total, err := r.GetByProductID(ctx, owner, "p1", repo.MovementFilter{Offset: ptr(50)})
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Empty(t, empty)
}

func TestInMemoryMovementRepository_LimitIsCapped(t *testing.T) {
	r := repo.NewInMemoryMovementRepository()
	ctx := context.Background()
	for i := 0; i < repo.MaxMovementLimit+20; i++ {
		_, err := r.Log(ctx, owner, "p1", 1)
		require.NoError(t, err)
	}

	got, total, err := r.GetByProductID(ctx, owner, "p1", repo.MovementFilter{Limit: ptr(1000)})
	require.NoError(t, err)
	require.Equal(t, repo.MaxMovementLimit+20, total)
	require.Len(t, got, repo.MaxMovementLimit)
}

func TestInMemoryMovementRepository_Summary(t *testing.T) {
	r := repo.NewInMemoryMovementRepository()
	ctx := context.Background()

	s, err := r.Summary(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, repo.MovementSummary{}, s)

	for _, id := range []string{"a", "b", "b", "a", "c"} {
		_, err := r.Log(ctx, owner, id, 1)
		require.NoError(t, err)
	}
	_, _ = r.Log(ctx, "owner-2", "c", 1)

	s, err = r.Summary(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, 5, s.TotalMovements)
	require.Equal(t, "a", s.MostMovedProduct.ProductID, "ties go to the first product that moved")
	require.Equal(t, 2, s.MostMovedProduct.MovementCount)
}
