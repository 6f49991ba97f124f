package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

const exportDateLayout = "2006-01-02"

// ExportProducts godoc
// @Summary Export the product catalog
// @Tags import
// @Produce text/csv,application/json
// @Security BearerAuth
// @Param format query string true "Export format (csv or json)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid format"
// @Failure 500 {string} string "Internal error"
// @Router /products/export [get]
func (s *Server) ExportProducts(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	products, err := s.Products.GetAll(r.Context(), ownerID(r))
	if err != nil {
		s.internalError(w, r, "could not fetch products", err)
		return
	}

	filename := fmt.Sprintf("products-%s.%s", s.now().Format(exportDateLayout), format)
	switch format {
	case "json":
		attachment(w, "application/json", filename)
		if err := json.NewEncoder(w).Encode(toProductResponses(products)); err != nil {
			s.log().Warn("failed to write export", zap.Error(err))
		}

	case "csv":
		attachment(w, "text/csv", filename)
		cw := csv.NewWriter(w)
		_ = cw.Write(productCSVHeader)
		for _, p := range products {
			_ = cw.Write([]string{
				p.Name,
				p.Description,
				p.Category,
				strconv.FormatFloat(p.Price, 'f', -1, 64),
				strconv.FormatFloat(p.Cost, 'f', -1, 64),
				strconv.Itoa(p.Stock),
				strconv.Itoa(p.MinStock),
				p.SKU,
			})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			s.log().Warn("failed to write export", zap.Error(err))
		}
	}
}

// ExportAccount godoc
// @Summary Download all account data
// @Description Profile, products and categories as a single JSON document.
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AccountExport
// @Failure 500 {string} string "Internal error"
// @Router /account/export [get]
func (s *Server) ExportAccount(w http.ResponseWriter, r *http.Request) {
	owner := ownerID(r)

	user, err := s.Users.GetByID(r.Context(), owner)
	if err != nil {
		s.internalError(w, r, "could not fetch user", err)
		return
	}
	products, err := s.Products.GetAll(r.Context(), owner)
	if err != nil {
		s.internalError(w, r, "could not fetch products", err)
		return
	}
	categories, err := s.Categories.GetAll(r.Context(), owner)
	if err != nil {
		s.internalError(w, r, "could not fetch categories", err)
		return
	}

	export := AccountExport{
		User:       toUserResponse(user),
		Products:   toProductResponses(products),
		Categories: make([]CategoryResponse, len(categories)),
		ExportedAt: s.now(),
	}
	for i, c := range categories {
		export.Categories[i] = toCategoryResponse(c)
	}

	filename := fmt.Sprintf("inventory-data-%s.json", export.ExportedAt.Format(exportDateLayout))
	writeJSON(w, http.StatusOK, export, http.Header{
		"Content-Disposition": []string{fmt.Sprintf("attachment; filename=%q", filename)},
	})
}
