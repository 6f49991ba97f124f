package handlers_test_suite

import (
	"net/http"
	"strings"
	"testing"

	handler "github.com/Akshadkurundwade07/shopflow/internal/http/handlers"
)

func TestGetCategoriesHandler_Defaults(t *testing.T) {
	t.Cleanup(resetCategories)
	r := newRouter()

	w := doRequest(r, http.MethodGet, "/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	resp, err := decode[[]handler.CategoryResponse](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	want := []string{"Electronics", "Clothing", "Food & Beverages", "Books", "Home & Garden"}
	if len(resp) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(resp))
	}
	for i, name := range want {
		if resp[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, resp[i].Name)
		}
		if resp[i].Color == "" {
			t.Errorf("expected %s to carry a color", name)
		}
	}
}

func TestCreateCategoryHandler(t *testing.T) {
	t.Cleanup(resetCategories)
	r := newRouter()

	w := doRequest(r, http.MethodPost, "/categories", handler.CategoryRequest{Name: "Toys", Description: "Games and toys"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	created, _ := decode[handler.CategoryResponse](w)
	if created.ID == "" || created.Name != "Toys" {
		t.Errorf("unexpected category %+v", created)
	}
	if created.Color != "#6B7280" {
		t.Errorf("expected default color, got %s", created.Color)
	}

	tests := []struct {
		name       string
		payload    handler.CategoryRequest
		expectCode int
	}{
		{"Duplicate name differing in case", handler.CategoryRequest{Name: "toys"}, http.StatusConflict},
		{"Duplicate of a default category", handler.CategoryRequest{Name: "ELECTRONICS"}, http.StatusConflict},
		{"Missing name", handler.CategoryRequest{Description: "nameless"}, http.StatusBadRequest},
		{"Bad color", handler.CategoryRequest{Name: "Garden", Color: "green"}, http.StatusBadRequest},
		{"Custom color", handler.CategoryRequest{Name: "Sports", Color: "#EF4444"}, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/categories", tt.payload)
			if w.Code != tt.expectCode {
				t.Errorf("expected %d, got %d: %s", tt.expectCode, w.Code, w.Body.String())
			}
			if tt.expectCode == http.StatusConflict && !strings.Contains(w.Body.String(), "A category with this name already exists") {
				t.Errorf("unexpected message %q", w.Body.String())
			}
		})
	}
}

func TestUpdateCategoryHandler(t *testing.T) {
	t.Cleanup(resetCategories)
	r := newRouter()

	w := doRequest(r, http.MethodPost, "/categories", handler.CategoryRequest{Name: "Toys"})
	toys, _ := decode[handler.CategoryResponse](w)

	w = doRequest(r, http.MethodPatch, "/categories/"+toys.ID, handler.CategoryPatchRequest{Color: ptr("#F97316")})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	updated, _ := decode[handler.CategoryResponse](w)
	if updated.Name != "Toys" || updated.Color != "#F97316" {
		t.Errorf("unexpected category %+v", updated)
	}

	w = doRequest(r, http.MethodPatch, "/categories/"+toys.ID, handler.CategoryPatchRequest{Name: ptr("books")})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 renaming onto an existing name, got %d", w.Code)
	}

	w = doRequest(r, http.MethodPatch, "/categories/"+toys.ID, handler.CategoryPatchRequest{Name: ptr(" electronics ")})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 renaming onto an existing name with padding, got %d", w.Code)
	}

	w = doRequest(r, http.MethodPatch, "/categories/"+toys.ID, handler.CategoryPatchRequest{Name: ptr("  Games ")})
	renamed, _ := decode[handler.CategoryResponse](w)
	if w.Code != http.StatusOK || renamed.Name != "Games" {
		t.Errorf("expected 200 with trimmed name 'Games', got %d %q", w.Code, renamed.Name)
	}

	w = doRequest(r, http.MethodPatch, "/categories/"+toys.ID, handler.CategoryPatchRequest{Name: ptr("TOYS")})
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 changing only the case of its own name, got %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/categories/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteCategoryHandler_LeavesProductsUntouched(t *testing.T) {
	t.Cleanup(resetCategories)
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := doRequest(r, http.MethodPost, "/categories", handler.CategoryRequest{Name: "Seasonal"})
	seasonal, _ := decode[handler.CategoryResponse](w)
	id := mustCreateProduct(r, handler.ProductRequest{Name: "Snow globe", Category: "Seasonal", Price: 12, SKU: "SG001"})

	w = doRequest(r, http.MethodDelete, "/categories/"+seasonal.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/products/"+id, nil)
	product, _ := decode[handler.ProductResponse](w)
	if product.Category != "Seasonal" {
		t.Errorf("expected product to keep category name, got %q", product.Category)
	}

	w = doRequest(r, http.MethodDelete, "/categories/"+seasonal.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}
