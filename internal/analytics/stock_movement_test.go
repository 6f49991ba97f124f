package analytics_test

import (
	"math/rand/v2"
	"testing"

	"github.com/Akshadkurundwade07/shopflow/internal/analytics"
	"github.com/stretchr/testify/require"
)

func TestStockMovementSeries(t *testing.T) {
	engine := analytics.NewEngine(
		analytics.WithRandomSource(rand.New(rand.NewPCG(1, 2))),
		analytics.WithClock(clock),
	)

	series := engine.StockMovementSeries()

	require.Len(t, series, analytics.StockMovementDays)
	require.Equal(t, "2024-02-10", series[0].Date)
	require.Equal(t, "2024-03-10", series[len(series)-1].Date)
	for _, day := range series {
		require.GreaterOrEqual(t, day.StockIn, 10)
		require.Less(t, day.StockIn, 60)
		require.GreaterOrEqual(t, day.StockOut, 5)
		require.Less(t, day.StockOut, 45)
		require.Equal(t, day.StockIn-day.StockOut, day.NetChange)
	}
}

func TestStockMovementSeries_IgnoresDateRange(t *testing.T) {
	engine := analytics.NewEngine(analytics.WithClock(clock))

	report := engine.Report(nil, nil, analytics.Range7Days)

	require.Len(t, report.Sales, 7)
	require.Len(t, report.StockMovement, 30)
}
