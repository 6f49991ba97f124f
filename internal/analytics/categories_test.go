package analytics_test

import (
	"testing"

	"github.com/Akshadkurundwade07/shopflow/internal/analytics"
	"github.com/Akshadkurundwade07/shopflow/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCategoryRollup(t *testing.T) {
	categories := []models.Category{
		category("1", "Electronics", "#3B82F6"),
		category("2", "Clothing", "#10B981"),
		category("3", "Books", "#8B5CF6"),
	}

	t.Run("counts low stock per category", func(t *testing.T) {
		products := []models.Product{
			product("a", "Electronics", 100, 60, 25, 5),
			product("b", "Electronics", 10, 5, 2, 5),
			product("c", "Clothing", 19.99, 8, 50, 10),
		}

		rollup := analytics.CategoryRollup(products, categories)

		require.Len(t, rollup, 3)
		electronics := rollup[0]
		require.Equal(t, "Electronics", electronics.Category)
		require.Equal(t, 2, electronics.TotalProducts)
		require.Equal(t, 1, electronics.LowStockCount)
		require.Equal(t, 2520.0, electronics.TotalValue)
		require.Equal(t, 55.0, electronics.AveragePrice)
		require.Equal(t, "#3B82F6", electronics.Color)

		clothing := rollup[1]
		require.Equal(t, 1, clothing.TotalProducts)
		require.Equal(t, 999.5, clothing.TotalValue)
		require.Equal(t, 19.99, clothing.AveragePrice)
	})

	t.Run("follows category order and zeroes empty categories", func(t *testing.T) {
		rollup := analytics.CategoryRollup(nil, categories)

		require.Len(t, rollup, 3)
		for i, c := range categories {
			require.Equal(t, analytics.CategoryAnalytics{Category: c.Name, Color: c.Color}, rollup[i])
		}
	})

	t.Run("dangling category names are excluded", func(t *testing.T) {
		products := []models.Product{
			product("a", "Books", 39.99, 20, 0, 3),
			product("b", "Toys", 15, 5, 4, 1),
			product("c", "books", 12, 5, 4, 1),
		}

		rollup := analytics.CategoryRollup(products, categories)

		total := 0
		for _, ca := range rollup {
			total += ca.TotalProducts
		}
		require.Equal(t, 1, total)
		require.Equal(t, 1, rollup[2].TotalProducts)
	})

	t.Run("no categories", func(t *testing.T) {
		rollup := analytics.CategoryRollup([]models.Product{product("a", "Books", 1, 1, 1, 1)}, nil)

		require.NotNil(t, rollup)
		require.Empty(t, rollup)
	})
}
