package handlers

import (
	"net/http"

	"github.com/Akshadkurundwade07/shopflow/internal/analytics"
)

func dateRange(w http.ResponseWriter, r *http.Request) (analytics.DateRange, bool) {
	dr, err := analytics.ParseDateRange(r.URL.Query().Get("range"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	return dr, true
}

// GetAnalyticsReport godoc
// @Summary Full analytics report
// @Description Sales, category, product, trend, stock movement and alert views in one response. Sales and trend figures are synthetic.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param range query string false "Date range (7d|30d|90d|1y), default 30d"
// @Success 200 {object} analytics.Report
// @Failure 400 {string} string "Invalid range"
// @Failure 500 {string} string "Internal error"
// @Router /analytics [get]
func (s *Server) GetAnalyticsReport(w http.ResponseWriter, r *http.Request) {
	dr, ok := dateRange(w, r)
	if !ok {
		return
	}
	products, categories, err := s.snapshot(r)
	if err != nil {
		s.internalError(w, r, "failed to fetch analytics", err)
		return
	}
	writeJSON(w, http.StatusOK, s.Analytics.Report(products, categories, dr))
}

// GetSalesSeries godoc
// @Summary Daily synthetic sales for the selected range
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param range query string false "Date range (7d|30d|90d|1y), default 30d"
// @Success 200 {array} analytics.SalesPoint
// @Failure 400 {string} string "Invalid range"
// @Router /analytics/sales [get]
func (s *Server) GetSalesSeries(w http.ResponseWriter, r *http.Request) {
	dr, ok := dateRange(w, r)
	if !ok {
		return
	}
	products, _, err := s.snapshot(r)
	if err != nil {
		s.internalError(w, r, "failed to fetch analytics", err)
		return
	}
	writeJSON(w, http.StatusOK, s.Analytics.SalesSeries(products, dr.Days()))
}

// GetCategoryAnalytics godoc
// @Summary Per-category rollup
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} analytics.CategoryAnalytics
// @Router /analytics/categories [get]
func (s *Server) GetCategoryAnalytics(w http.ResponseWriter, r *http.Request) {
	products, categories, err := s.snapshot(r)
	if err != nil {
		s.internalError(w, r, "failed to fetch analytics", err)
		return
	}
	writeJSON(w, http.StatusOK, analytics.CategoryRollup(products, categories))
}

// GetProductPerformance godoc
// @Summary Products ranked by synthetic revenue
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} analytics.ProductPerformance
// @Router /analytics/products [get]
func (s *Server) GetProductPerformance(w http.ResponseWriter, r *http.Request) {
	products, _, err := s.snapshot(r)
	if err != nil {
		s.internalError(w, r, "failed to fetch analytics", err)
		return
	}
	writeJSON(w, http.StatusOK, s.Analytics.ProductPerformance(products))
}

// GetInventoryTrends godoc
// @Summary Inventory totals with period-over-period changes
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} analytics.InventoryTrends
// @Router /analytics/trends [get]
func (s *Server) GetInventoryTrends(w http.ResponseWriter, r *http.Request) {
	products, categories, err := s.snapshot(r)
	if err != nil {
		s.internalError(w, r, "failed to fetch analytics", err)
		return
	}
	writeJSON(w, http.StatusOK, s.Analytics.InventoryTrends(products, categories))
}

// GetStockMovementSeries godoc
// @Summary Synthetic stock in/out for the last 30 days
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} analytics.StockMovement
// @Router /analytics/stock-movement [get]
func (s *Server) GetStockMovementSeries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Analytics.StockMovementSeries())
}

// GetAlerts godoc
// @Summary Low stock, out of stock and overstock products
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} analytics.AlertsData
// @Router /analytics/alerts [get]
func (s *Server) GetAlerts(w http.ResponseWriter, r *http.Request) {
	products, _, err := s.snapshot(r)
	if err != nil {
		s.internalError(w, r, "failed to fetch analytics", err)
		return
	}
	writeJSON(w, http.StatusOK, s.Analytics.ClassifyAlerts(products))
}
