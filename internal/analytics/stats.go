package analytics

import "github.com/Akshadkurundwade07/shopflow/internal/models"

// ComputeStats returns the dashboard counters. TotalValue is the exact sum of
// price*stock and is not rounded.
func ComputeStats(products []models.Product, categories []models.Category) InventoryStats {
	stats := InventoryStats{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
	}
	for _, p := range products {
		stats.TotalValue += p.Price * float64(p.Stock)
		switch {
		case p.IsOutOfStock():
			stats.OutOfStockItems++
		case p.IsLowStock():
			stats.LowStockItems++
		}
	}
	return stats
}
