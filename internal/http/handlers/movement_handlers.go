package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/repo"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdjustStock godoc
// @Summary Adjust the stock of a product
// @Description Adds delta to the current stock and records a movement. The result may not go below zero.
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param adjustment body QuantityAdjustmentRequest true "Stock change"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid adjustment"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Stock cannot be negative"
// @Router /products/{id}/adjust [post]
func (s *Server) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req QuantityAdjustmentRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Delta == 0 {
		http.Error(w, "delta must not be zero", http.StatusBadRequest)
		return
	}

	owner, id := ownerID(r), chi.URLParam(r, "id")
	product, err := s.Products.AdjustStock(r.Context(), owner, id, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrInvalidQuantityChange):
			http.Error(w, "stock cannot be negative", http.StatusConflict)
		default:
			s.internalError(w, r, "could not update stock", err)
		}
		return
	}

	if _, err := s.Movements.Log(r.Context(), owner, id, req.Delta); err != nil {
		s.log().Error("could not record movement", zap.String("product_id", id), zap.Error(err))
	}

	if product.IsLowStock() || product.IsOutOfStock() {
		s.log().Warn("product below minimum stock",
			zap.String("product_id", product.ID),
			zap.String("sku", product.SKU),
			zap.Int("stock", product.Stock),
			zap.Int("min_stock", product.MinStock),
		)
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// movementFilter reads since, until, offset and limit from the query string.
func movementFilter(q url.Values) (repo.MovementFilter, error) {
	var (
		mf  repo.MovementFilter
		err error
	)
	if mf.Since, err = parseTimeParam(q.Get("since")); err != nil {
		return mf, errors.New("invalid since date format")
	}
	if mf.Until, err = parseTimeParam(q.Get("until")); err != nil {
		return mf, errors.New("invalid until date format")
	}
	if mf.Limit, err = parseIntParam(q.Get("limit")); err != nil {
		return mf, errors.New("invalid limit format")
	}
	if mf.Limit != nil && *mf.Limit <= 0 {
		return mf, errors.New("limit must be greater than zero")
	}
	if mf.Offset, err = parseIntParam(q.Get("offset")); err != nil {
		return mf, errors.New("invalid offset format")
	}
	if mf.Offset != nil && *mf.Offset < 0 {
		return mf, errors.New("offset must be zero or positive")
	}
	return mf, nil
}

// GetMovements godoc
// @Summary Get product movement logs
// @Description Newest first. Limit defaults to and is capped at 100.
// @Tags movements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param since query string false "Filter movements from this timestamp (RFC3339)"
// @Param until query string false "Filter movements until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/movements [get]
func (s *Server) GetMovements(w http.ResponseWriter, r *http.Request) {
	owner, id := ownerID(r), chi.URLParam(r, "id")
	if _, err := s.Products.GetByID(r.Context(), owner, id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		s.internalError(w, r, "could not fetch product", err)
		return
	}

	mf, err := movementFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	movements, total, err := s.Movements.GetByProductID(r.Context(), owner, id, mf)
	if err != nil {
		s.internalError(w, r, "could not retrieve movements", err)
		return
	}

	resp := MovementsSearchResult{
		Data: make([]MovementResponse, len(movements)),
		Meta: Meta{TotalCount: total},
	}
	for i, m := range movements {
		resp.Data[i] = MovementResponse{ID: m.ID, ProductID: m.ProductID, Delta: m.Delta, CreatedAt: m.CreatedAt}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ExportMovements godoc
// @Summary Export product movement logs
// @Tags movements
// @Produce text/csv,application/json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param format query string true "Export format (csv or json)"
// @Param since query string false "Filter from timestamp (RFC3339)"
// @Param until query string false "Filter until timestamp (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/movements/export [get]
func (s *Server) ExportMovements(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	mf, err := movementFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	movements, _, err := s.Movements.GetByProductID(r.Context(), ownerID(r), id, mf)
	if err != nil {
		s.internalError(w, r, "could not retrieve movements", err)
		return
	}

	filename := fmt.Sprintf("movements-%s.%s", id, format)
	switch format {
	case "json":
		attachment(w, "application/json", filename)
		if err := json.NewEncoder(w).Encode(movements); err != nil {
			s.log().Warn("failed to write export", zap.Error(err))
		}

	case "csv":
		attachment(w, "text/csv", filename)
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"id", "product_id", "delta", "created_at"})
		for _, m := range movements {
			_ = cw.Write([]string{
				strconv.Itoa(m.ID),
				m.ProductID,
				strconv.Itoa(m.Delta),
				m.CreatedAt.Format(time.RFC3339),
			})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			s.log().Warn("failed to write export", zap.Error(err))
		}
	}
}
