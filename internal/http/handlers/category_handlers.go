package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
	"github.com/Akshadkurundwade07/shopflow/internal/repo"
	"github.com/go-chi/chi/v5"
)

const msgDuplicateCategory = "A category with this name already exists"

// CreateCategory godoc
// @Summary Create a category
// @Description Category names are unique per account, ignoring case.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body CategoryRequest true "Category to add"
// @Success 201 {object} CategoryResponse
// @Failure 400 {array} ProductValidationError
// @Failure 409 {string} string "Duplicate name"
// @Router /categories [post]
func (s *Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateCategory(req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	if req.Color == "" {
		req.Color = defaultCategoryColor
	}

	created, err := s.Categories.Create(r.Context(), models.Category{
		OwnerID:     ownerID(r),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateCategory) {
			http.Error(w, msgDuplicateCategory, http.StatusConflict)
			return
		}
		s.internalError(w, r, "could not create category", err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(created))
}

// GetCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CategoryResponse
// @Failure 500 {string} string "Internal error"
// @Router /categories [get]
func (s *Server) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.Categories.GetAll(r.Context(), ownerID(r))
	if err != nil {
		s.internalError(w, r, "could not fetch categories", err)
		return
	}
	resp := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = toCategoryResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCategoryByID godoc
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} CategoryResponse
// @Failure 404 {string} string "Not found"
// @Router /categories/{id} [get]
func (s *Server) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	category, err := s.Categories.GetByID(r.Context(), ownerID(r), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		s.internalError(w, r, "could not fetch category", err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

// UpdateCategory godoc
// @Summary Partially update a category
// @Description Renaming a category does not rename it on products that reference it.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param category body CategoryPatchRequest true "Fields to change"
// @Success 200 {object} CategoryResponse
// @Failure 400 {array} ProductValidationError
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Duplicate name"
// @Router /categories/{id} [patch]
func (s *Server) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryPatchRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateCategoryPatch(req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	patch := models.CategoryPatch{Name: trimmed(req.Name), Description: req.Description, Color: req.Color}
	updated, err := s.Categories.Update(r.Context(), ownerID(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrCategoryNotFound):
			http.Error(w, "category not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrDuplicateCategory):
			http.Error(w, msgDuplicateCategory, http.StatusConflict)
		default:
			s.internalError(w, r, "could not update category", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(updated))
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Products keep the deleted category's name.
// @Tags categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /categories/{id} [delete]
func (s *Server) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.Categories.Delete(r.Context(), ownerID(r), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		s.internalError(w, r, "could not delete category", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
