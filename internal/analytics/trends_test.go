package analytics_test

import (
	"math/rand/v2"
	"testing"

	"github.com/Akshadkurundwade07/shopflow/internal/analytics"
	"github.com/Akshadkurundwade07/shopflow/internal/models"
	"github.com/stretchr/testify/require"
)

func TestInventoryTrends_MidpointDraws(t *testing.T) {
	engine := analytics.NewEngine(analytics.WithRandomSource(fixedSource{f: 0.5, i: 5}))
	products := []models.Product{
		product("a", "", 10, 4, 3, 1),
		product("b", "", 2.5, 1, 4, 1),
	}

	trends := engine.InventoryTrends(products, []models.Category{category("1", "Books", "")})

	require.Equal(t, analytics.InventoryTrends{
		TotalValue:        40,
		TotalProducts:     2,
		AverageStockLevel: 3.5,
		CategoriesCount:   1,
	}, trends)
}

func TestInventoryTrends_Empty(t *testing.T) {
	trends := analytics.NewEngine().InventoryTrends(nil, nil)

	require.Zero(t, trends.TotalValue)
	require.Zero(t, trends.TotalProducts)
	require.Zero(t, trends.AverageStockLevel)
	require.Zero(t, trends.CategoriesCount)
}

func TestInventoryTrends_DeltaBounds(t *testing.T) {
	engine := analytics.NewEngine(analytics.WithRandomSource(rand.New(rand.NewPCG(9, 9))))
	products := []models.Product{product("a", "", 10, 4, 3, 1)}

	for i := 0; i < 500; i++ {
		trends := engine.InventoryTrends(products, nil)

		require.GreaterOrEqual(t, trends.TotalValueChange, -10.0)
		require.LessOrEqual(t, trends.TotalValueChange, 10.0)
		require.GreaterOrEqual(t, trends.TotalProductsChange, -5)
		require.LessOrEqual(t, trends.TotalProductsChange, 5)
		require.GreaterOrEqual(t, trends.StockLevelChange, -15.0)
		require.LessOrEqual(t, trends.StockLevelChange, 15.0)
	}
}

func TestInventoryTrends_ExtremeDraws(t *testing.T) {
	low := analytics.NewEngine(analytics.WithRandomSource(fixedSource{f: 0, i: 0})).InventoryTrends(nil, nil)
	require.Equal(t, -10.0, low.TotalValueChange)
	require.Equal(t, -5, low.TotalProductsChange)
	require.Equal(t, -15.0, low.StockLevelChange)

	high := analytics.NewEngine(analytics.WithRandomSource(fixedSource{f: 0.999, i: 100})).InventoryTrends(nil, nil)
	require.Equal(t, 5, high.TotalProductsChange)
}
