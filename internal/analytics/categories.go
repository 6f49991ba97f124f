package analytics

import "github.com/Akshadkurundwade07/shopflow/internal/models"

// CategoryRollup summarizes the products of each category, in category order.
// Products are matched by exact category name; products naming an unknown
// category are not counted anywhere.
func CategoryRollup(products []models.Product, categories []models.Category) []CategoryAnalytics {
	rollup := make([]CategoryAnalytics, 0, len(categories))
	for _, c := range categories {
		ca := CategoryAnalytics{Category: c.Name, Color: c.Color}

		var totalValue, totalPrice float64
		for _, p := range products {
			if p.Category != c.Name {
				continue
			}
			ca.TotalProducts++
			totalValue += p.Price * float64(p.Stock)
			totalPrice += p.Price
			if p.IsLowStock() {
				ca.LowStockCount++
			}
		}

		ca.TotalValue = RoundMoney(totalValue)
		if ca.TotalProducts > 0 {
			ca.AveragePrice = RoundMoney(totalPrice / float64(ca.TotalProducts))
		}
		rollup = append(rollup, ca)
	}
	return rollup
}
