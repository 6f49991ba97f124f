package repo_test

import (
	"context"
	"testing"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
	"github.com/Akshadkurundwade07/shopflow/internal/repo"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCategoryRepository(t *testing.T) {
	r := repo.NewInMemoryCategoryRepository()
	ctx := context.Background()

	books, err := r.Create(ctx, models.Category{OwnerID: owner, Name: "Books", Color: "#8B5CF6"})
	require.NoError(t, err)
	require.NotEmpty(t, books.ID)

	_, err = r.Create(ctx, models.Category{OwnerID: owner, Name: "bOOKS"})
	require.ErrorIs(t, err, repo.ErrDuplicateCategory)

	toys, err := r.Create(ctx, models.Category{OwnerID: owner, Name: "Toys"})
	require.NoError(t, err)

	_, err = r.Update(ctx, owner, toys.ID, models.CategoryPatch{Name: ptr("BOOKS")})
	require.ErrorIs(t, err, repo.ErrDuplicateCategory)

	renamed, err := r.Update(ctx, owner, books.ID, models.CategoryPatch{Name: ptr("books")})
	require.NoError(t, err, "renaming to a case variant of itself is allowed")
	require.Equal(t, "books", renamed.Name)
	require.Equal(t, "#8B5CF6", renamed.Color)

	all, err := r.GetAll(ctx, owner)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "books", all[0].Name)

	require.NoError(t, r.Delete(ctx, owner, books.ID))
	_, err = r.GetByID(ctx, owner, books.ID)
	require.ErrorIs(t, err, repo.ErrCategoryNotFound)
	require.ErrorIs(t, r.Delete(ctx, owner, books.ID), repo.ErrCategoryNotFound)

	others, err := r.GetAll(ctx, "owner-2")
	require.NoError(t, err)
	require.Empty(t, others)
}
