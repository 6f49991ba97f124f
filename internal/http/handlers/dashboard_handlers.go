package handlers

import (
	"errors"
	"net/http"

	"github.com/Akshadkurundwade07/shopflow/internal/analytics"
	"github.com/Akshadkurundwade07/shopflow/internal/models"
	"github.com/Akshadkurundwade07/shopflow/internal/repo"
	"go.uber.org/zap"
)

// snapshot reads the caller's current products and categories.
func (s *Server) snapshot(r *http.Request) ([]models.Product, []models.Category, error) {
	owner := ownerID(r)
	products, err := s.Products.GetAll(r.Context(), owner)
	if err != nil {
		return nil, nil, err
	}
	categories, err := s.Categories.GetAll(r.Context(), owner)
	if err != nil {
		return nil, nil, err
	}
	return products, categories, nil
}

// GetDashboardStats godoc
// @Summary Summary cards for the dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} analytics.InventoryStats
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/stats [get]
func (s *Server) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	products, categories, err := s.snapshot(r)
	if err != nil {
		s.internalError(w, r, "failed to fetch stats", err)
		return
	}
	writeJSON(w, http.StatusOK, analytics.ComputeStats(products, categories))
}

// GetMovementSummary godoc
// @Summary Stock movement counters for the dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repo.MovementSummary
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/movements [get]
func (s *Server) GetMovementSummary(w http.ResponseWriter, r *http.Request) {
	owner := ownerID(r)
	summary, err := s.Movements.Summary(r.Context(), owner)
	if err != nil {
		s.internalError(w, r, "failed to fetch movement summary", err)
		return
	}

	if id := summary.MostMovedProduct.ProductID; id != "" {
		product, err := s.Products.GetByID(r.Context(), owner, id)
		switch {
		case err == nil:
			summary.MostMovedProduct.Name = product.Name
		case errors.Is(err, repo.ErrProductNotFound):
			// deleted since; the id is still reported
		default:
			s.log().Warn("could not resolve most moved product", zap.String("product_id", id), zap.Error(err))
		}
	}
	writeJSON(w, http.StatusOK, summary)
}
