package analytics

import "github.com/Akshadkurundwade07/shopflow/internal/models"

const (
	maxDailyUnits = 5
	minItemsSold  = 5
	maxItemsSold  = 25
)

// SalesSeries fabricates one sales record per day for the last `days` days.
// Each product in stock sells a uniform random amount in [0, min(stock, 5)) per day;
// the same draw drives both revenue and profit.
func (e *Engine) SalesSeries(products []models.Product, days int) []SalesPoint {
	if days <= 0 {
		return []SalesPoint{}
	}

	series := make([]SalesPoint, 0, days)
	for _, date := range e.dayLabels(days) {
		var revenue, profit float64
		for _, p := range products {
			units := e.unitsSold(p)
			revenue += units * p.Price
			profit += units * (p.Price - p.Cost)
		}
		series = append(series, SalesPoint{
			Date:      date,
			Revenue:   RoundMoney(revenue),
			Profit:    RoundMoney(profit),
			ItemsSold: randomIn(e.rnd, minItemsSold, maxItemsSold),
		})
	}
	return series
}

func (e *Engine) unitsSold(p models.Product) float64 {
	if p.Stock <= 0 {
		return 0
	}
	return e.rnd.Float64() * float64(min(p.Stock, maxDailyUnits))
}
