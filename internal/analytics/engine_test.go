package analytics_test

import (
	"sync"
	"testing"

	"github.com/Akshadkurundwade07/shopflow/internal/analytics"
	"github.com/Akshadkurundwade07/shopflow/internal/models"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	engine := analytics.NewEngine(analytics.WithClock(clock))
	products := []models.Product{
		product("a", "Electronics", 99.99, 60, 25, 5),
		product("b", "Books", 39.99, 20, 0, 3),
	}
	categories := []models.Category{category("1", "Electronics", "#3B82F6"), category("2", "Books", "#8B5CF6")}

	report := engine.Report(products, categories, analytics.Range90Days)

	require.Equal(t, analytics.Range90Days, report.DateRange)
	require.Len(t, report.Sales, 90)
	require.Len(t, report.Categories, 2)
	require.Len(t, report.Products, 2)
	require.Equal(t, 2, report.Trends.TotalProducts)
	require.Len(t, report.StockMovement, 30)
	require.Len(t, report.Alerts.OutOfStock, 1)
}

func TestReport_DoesNotMutateSnapshot(t *testing.T) {
	engine := analytics.NewEngine()
	products := []models.Product{
		product("cheap", "", 1, 0, 1, 1),
		product("pricey", "", 1000, 0, 10, 1),
	}
	before := append([]models.Product(nil), products...)

	_ = engine.Report(products, nil, analytics.Range7Days)

	require.Equal(t, before, products)
}

func TestEngine_ConcurrentUse(t *testing.T) {
	engine := analytics.NewEngine()
	products := []models.Product{product("a", "Books", 10, 5, 10, 2)}
	categories := []models.Category{category("1", "Books", "")}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report := engine.Report(products, categories, analytics.Range30Days)
			require.Len(t, report.Sales, 30)
		}()
	}
	wg.Wait()
}
