package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
	"github.com/Akshadkurundwade07/shopflow/internal/repo"
	"github.com/go-chi/chi/v5"
)

const msgDuplicateSKU = "A product with this SKU already exists"

// CreateProduct godoc
// @Summary Create a new product
// @Description Adds a product to the caller's catalog. SKUs are unique per account.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 409 {string} string "Duplicate SKU"
// @Router /products [post]
func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateProduct(req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	created, err := s.Products.Create(r.Context(), models.Product{
		OwnerID:     ownerID(r),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		SKU:         strings.TrimSpace(req.SKU),
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateSKU) {
			http.Error(w, msgDuplicateSKU, http.StatusConflict)
			return
		}
		s.internalError(w, r, "could not create product", err)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// GetProducts godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func (s *Server) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.Products.GetAll(r.Context(), ownerID(r))
	if err != nil {
		s.internalError(w, r, "could not fetch products", err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// GetProductByID godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func (s *Server) GetProductByID(w http.ResponseWriter, r *http.Request) {
	product, err := s.Products.GetByID(r.Context(), ownerID(r), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		s.internalError(w, r, "could not fetch product", err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// UpdateProduct godoc
// @Summary Partially update a product
// @Description Only the fields present in the body change. The update timestamp is refreshed.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body ProductPatchRequest true "Fields to change"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Duplicate SKU"
// @Router /products/{id} [patch]
func (s *Server) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductPatchRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateProductPatch(req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	updated, err := s.Products.Update(r.Context(), ownerID(r), chi.URLParam(r, "id"), req.patch())
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrDuplicateSKU):
			http.Error(w, msgDuplicateSKU, http.StatusConflict)
		default:
			s.internalError(w, r, "could not update product", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [delete]
func (s *Server) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.Products.Delete(r.Context(), ownerID(r), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		s.internalError(w, r, "could not delete product", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FilterProducts godoc
// @Summary Search, sort and paginate products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches name or SKU, case-insensitive"
// @Param category query string false "Exact category name"
// @Param sort query string false "Sort field (name|stock|price|category)"
// @Param order query string false "Sort order (asc|desc)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /products/search [get]
func (s *Server) FilterProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repo.ProductFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		SortBy:   strings.ToLower(q.Get("sort")),
	}
	if !repo.ValidSortField(filter.SortBy) {
		http.Error(w, "sort must be one of name, stock, price, category", http.StatusBadRequest)
		return
	}
	switch strings.ToLower(q.Get("order")) {
	case "", "asc":
	case "desc":
		filter.Desc = true
	default:
		http.Error(w, "order must be asc or desc", http.StatusBadRequest)
		return
	}

	var err error
	if filter.Limit, err = parseIntParam(q.Get("limit")); err != nil {
		http.Error(w, "invalid limit format", http.StatusBadRequest)
		return
	}
	if filter.Offset, err = parseIntParam(q.Get("offset")); err != nil {
		http.Error(w, "invalid offset format", http.StatusBadRequest)
		return
	}
	if filter.Limit != nil && *filter.Limit <= 0 {
		http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
		return
	}
	if filter.Offset != nil && *filter.Offset < 0 {
		http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
		return
	}

	products, total, err := s.Products.Filter(r.Context(), ownerID(r), filter)
	if err != nil {
		s.internalError(w, r, "could not filter products", err)
		return
	}

	writeJSON(w, http.StatusOK, ProductsSearchResult{
		Data: toProductResponses(products),
		Meta: Meta{TotalCount: total},
	})
}
