package analytics

import "github.com/Akshadkurundwade07/shopflow/internal/models"

// ClassifyAlerts sorts products into low stock, out of stock and overstock.
// The three groups never share a product. Overstock entries get a fresh
// synthetic AverageUsage in [1, 10) on every call.
func (e *Engine) ClassifyAlerts(products []models.Product) AlertsData {
	alerts := AlertsData{
		LowStock:   []LowStockAlert{},
		OutOfStock: []OutOfStockAlert{},
		Overstock:  []OverstockAlert{},
	}

	for _, p := range products {
		switch {
		case p.IsOutOfStock():
			alerts.OutOfStock = append(alerts.OutOfStock, OutOfStockAlert{
				ID:          p.ID,
				Name:        p.Name,
				Category:    p.Category,
				MinStock:    p.MinStock,
				LastUpdated: p.UpdatedAt,
			})
		case p.IsLowStock():
			alerts.LowStock = append(alerts.LowStock, LowStockAlert{
				ID:           p.ID,
				Name:         p.Name,
				Category:     p.Category,
				CurrentStock: p.Stock,
				MinStock:     p.MinStock,
			})
		case p.IsOverstocked():
			alerts.Overstock = append(alerts.Overstock, OverstockAlert{
				ID:           p.ID,
				Name:         p.Name,
				Category:     p.Category,
				CurrentStock: p.Stock,
				MinStock:     p.MinStock,
				AverageUsage: randomIn(e.rnd, 1, 10),
			})
		}
	}
	return alerts
}
