package analytics

import (
	"sort"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
)

const (
	maxPerformanceUnits = 10
	maxTurnoverRate     = 5
)

// ProductPerformance ranks products by synthetic revenue, highest first.
// Products with equal revenue keep their input order.
func (e *Engine) ProductPerformance(products []models.Product) []ProductPerformance {
	perf := make([]ProductPerformance, 0, len(products))
	for _, p := range products {
		revenue := e.rnd.Float64() * p.Price * float64(min(p.Stock, maxPerformanceUnits))
		margin := profitMargin(p)
		turnover := e.rnd.Float64() * maxTurnoverRate

		perf = append(perf, ProductPerformance{
			ID:           p.ID,
			Name:         p.Name,
			Category:     p.Category,
			Revenue:      RoundMoney(revenue),
			Profit:       RoundMoney(revenue * margin),
			ProfitMargin: RoundMoney(margin * 100),
			TurnoverRate: RoundMoney(turnover),
			Stock:        p.Stock,
		})
	}

	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].Revenue > perf[j].Revenue
	})
	return perf
}

// profitMargin is (price-cost)/price as a fraction, or 0 for free products.
func profitMargin(p models.Product) float64 {
	if p.Price == 0 {
		return 0
	}
	return (p.Price - p.Cost) / p.Price
}
