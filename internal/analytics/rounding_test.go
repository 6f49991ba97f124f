package analytics_test

import (
	"math"
	"testing"

	"github.com/Akshadkurundwade07/shopflow/internal/analytics"
	"github.com/Akshadkurundwade07/shopflow/internal/models"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{10, 10},
		{1.005, 1.01},
		{2.345, 2.35},
		{0.125, 0.13},
		{-2.345, -2.34},
		{-0.001, 0},
		{239.994999, 239.99},
		{2499.75, 2499.75},
	}

	for _, tt := range tests {
		if got := analytics.RoundMoney(tt.in); got != tt.want {
			t.Errorf("RoundMoney(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestRoundMoney_NonFinite(t *testing.T) {
	if got := analytics.RoundMoney(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf to pass through, got %v", got)
	}
	if got := analytics.RoundMoney(math.Inf(-1)); !math.IsInf(got, -1) {
		t.Errorf("expected -Inf to pass through, got %v", got)
	}
	if got := analytics.RoundMoney(math.NaN()); !math.IsNaN(got) {
		t.Errorf("expected NaN to pass through, got %v", got)
	}
}

func TestViews_HugePricesDoNotPanic(t *testing.T) {
	products := []models.Product{product("1", "Books", math.MaxFloat64/2, 1, 10, 2)}
	categories := []models.Category{category("c1", "Books", "#8B5CF6")}
	e := analytics.NewEngine(analytics.WithRandomSource(fixedSource{f: 0.5, i: 1}), analytics.WithClock(clock))

	rollup := analytics.CategoryRollup(products, categories)
	if !math.IsInf(rollup[0].TotalValue, 1) {
		t.Errorf("expected an overflowing total value, got %v", rollup[0].TotalValue)
	}
	e.Report(products, categories, analytics.Range30Days)
}
