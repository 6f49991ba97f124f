package analytics

import "time"

// InventoryStats feeds the dashboard summary cards.
type InventoryStats struct {
	TotalProducts   int     `json:"total_products"`
	TotalValue      float64 `json:"total_value"`
	LowStockItems   int     `json:"low_stock_items"`
	OutOfStockItems int     `json:"out_of_stock_items"`
	TotalCategories int     `json:"total_categories"`
}

// SalesPoint is one day of the synthetic sales series.
type SalesPoint struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
	ItemsSold int     `json:"items_sold"`
}

type CategoryAnalytics struct {
	Category      string  `json:"category"`
	TotalProducts int     `json:"total_products"`
	TotalValue    float64 `json:"total_value"`
	AveragePrice  float64 `json:"average_price"`
	LowStockCount int     `json:"low_stock_count"`
	Color         string  `json:"color"`
}

type ProductPerformance struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profit_margin"`
	TurnoverRate float64 `json:"turnover_rate"`
	Stock        int     `json:"stock"`
}

// InventoryTrends pairs current totals with synthetic period-over-period deltas.
type InventoryTrends struct {
	TotalValue          float64 `json:"total_value"`
	TotalValueChange    float64 `json:"total_value_change"`
	TotalProducts       int     `json:"total_products"`
	TotalProductsChange int     `json:"total_products_change"`
	AverageStockLevel   float64 `json:"average_stock_level"`
	StockLevelChange    float64 `json:"stock_level_change"`
	CategoriesCount     int     `json:"categories_count"`
}

type StockMovement struct {
	Date      string `json:"date"`
	StockIn   int    `json:"stock_in"`
	StockOut  int    `json:"stock_out"`
	NetChange int    `json:"net_change"`
}

type LowStockAlert struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
}

type OutOfStockAlert struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	MinStock    int       `json:"min_stock"`
	LastUpdated time.Time `json:"last_updated"`
}

type OverstockAlert struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
	AverageUsage int    `json:"average_usage"`
}

// AlertsData holds three disjoint groups of products.
type AlertsData struct {
	LowStock   []LowStockAlert   `json:"low_stock"`
	OutOfStock []OutOfStockAlert `json:"out_of_stock"`
	Overstock  []OverstockAlert  `json:"overstock"`
}

// Report is everything the analytics view renders for one date range.
type Report struct {
	DateRange     DateRange            `json:"date_range"`
	Sales         []SalesPoint         `json:"sales"`
	Categories    []CategoryAnalytics  `json:"categories"`
	Products      []ProductPerformance `json:"products"`
	Trends        InventoryTrends      `json:"trends"`
	StockMovement []StockMovement      `json:"stock_movement"`
	Alerts        AlertsData           `json:"alerts"`
}
