package analytics

import "github.com/Akshadkurundwade07/shopflow/internal/models"

// InventoryTrends reports current totals next to synthetic deltas:
// value change in [-10%, +10%), product count change in [-5, +5] and
// stock level change in [-15%, +15%). The deltas have no relation to history.
func (e *Engine) InventoryTrends(products []models.Product, categories []models.Category) InventoryTrends {
	var totalValue float64
	var totalStock int
	for _, p := range products {
		totalValue += p.Price * float64(p.Stock)
		totalStock += p.Stock
	}

	var averageStock float64
	if len(products) > 0 {
		averageStock = float64(totalStock) / float64(len(products))
	}

	return InventoryTrends{
		TotalValue:          RoundMoney(totalValue),
		TotalValueChange:    RoundMoney((e.rnd.Float64() - 0.5) * 20),
		TotalProducts:       len(products),
		TotalProductsChange: randomIn(e.rnd, -5, 6),
		AverageStockLevel:   RoundMoney(averageStock),
		StockLevelChange:    RoundMoney((e.rnd.Float64() - 0.5) * 30),
		CategoriesCount:     len(categories),
	}
}
