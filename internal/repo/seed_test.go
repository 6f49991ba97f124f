package repo_test

import (
	"context"
	"testing"

	"github.com/Akshadkurundwade07/shopflow/internal/repo"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("categories only", func(t *testing.T) {
		categories := repo.NewInMemoryCategoryRepository()
		products := repo.NewInMemoryProductRepository()

		require.NoError(t, repo.SeedCatalog(ctx, categories, products, owner, false))

		cs, _ := categories.GetAll(ctx, owner)
		require.Len(t, cs, len(repo.DefaultCategories()))
		ps, _ := products.GetAll(ctx, owner)
		require.Empty(t, ps)
	})

	t.Run("with sample products", func(t *testing.T) {
		categories := repo.NewInMemoryCategoryRepository()
		products := repo.NewInMemoryProductRepository()

		require.NoError(t, repo.SeedCatalog(ctx, categories, products, owner, true))

		cs, _ := categories.GetAll(ctx, owner)
		known := map[string]bool{}
		for _, c := range cs {
			require.NotEmpty(t, c.Color)
			known[c.Name] = true
		}
		ps, _ := products.GetAll(ctx, owner)
		require.Len(t, ps, 5)
		for _, p := range ps {
			require.True(t, known[p.Category], "sample product %s references unknown category %q", p.SKU, p.Category)
			require.Equal(t, owner, p.OwnerID)
		}
	})

	t.Run("second run fails on duplicates", func(t *testing.T) {
		categories := repo.NewInMemoryCategoryRepository()
		products := repo.NewInMemoryProductRepository()
		require.NoError(t, repo.SeedCatalog(ctx, categories, products, owner, true))

		err := repo.SeedCatalog(ctx, categories, products, owner, true)
		require.ErrorIs(t, err, repo.ErrDuplicateCategory)
	})
}

func TestSampleProducts(t *testing.T) {
	ps := repo.SampleProducts()
	require.Len(t, ps, 5)

	require.Equal(t, "Wireless Headphones", ps[0].Name)
	require.Equal(t, "High-quality Bluetooth headphones with noise cancellation", ps[0].Description)
	require.Equal(t, "Learn JavaScript programming from basics to advanced", ps[3].Description)
	require.Zero(t, ps[3].Stock)
	require.Equal(t, "50ft expandable garden hose with spray nozzle", ps[4].Description)
}
