package handlers_integrated_test_suite

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	handler "github.com/Akshadkurundwade07/shopflow/internal/http/handlers"
	"github.com/Akshadkurundwade07/shopflow/internal/repo"
)

func TestAdjustStockHandler_Postgres(t *testing.T) {
	requireDatabase(t)
	t.Cleanup(clearAllProducts)
	r := newRouter()

	id := mustCreateProduct(t, r, handler.ProductRequest{Name: "Mouse", Price: 20, Stock: 10, MinStock: 3, SKU: "MS001"})

	tests := []struct {
		name        string
		delta       int
		expectCode  int
		expectStock int
	}{
		{"Restock", 5, http.StatusOK, 15},
		{"Sell", -12, http.StatusOK, 3},
		{"Sell more than on hand", -4, http.StatusConflict, 3},
		{"Sell everything", -3, http.StatusOK, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := adjustProduct(r, id, tt.delta)
			if w.Code != tt.expectCode {
				t.Fatalf("expected %d, got %d: %s", tt.expectCode, w.Code, w.Body.String())
			}

			w = doRequest(r, http.MethodGet, "/products/"+id, nil)
			resp, _ := decode[handler.ProductResponse](w)
			if resp.Stock != tt.expectStock {
				t.Errorf("expected stock %d, got %d", tt.expectStock, resp.Stock)
			}
		})
	}

	w := doRequest(r, http.MethodGet, "/products/"+id+"/movements", nil)
	resp, _ := decode[handler.MovementsSearchResult](w)
	if resp.Meta.TotalCount != 3 {
		t.Fatalf("expected 3 recorded movements, got %d", resp.Meta.TotalCount)
	}
	for i, d := range []int{-3, -12, 5} {
		if resp.Data[i].Delta != d {
			t.Errorf("position %d: expected delta %d, got %d", i, d, resp.Data[i].Delta)
		}
	}

	w = adjustProduct(r, "6f1c1d5e-8f1e-4a59-9a53-3c0f8d1b2a11", 1)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown product, got %d", w.Code)
	}
}

func TestGetMovementsHandler_DateRange_Postgres(t *testing.T) {
	requireDatabase(t)
	t.Cleanup(clearAllProducts)
	r := newRouter()

	id := mustCreateProduct(t, r, handler.ProductRequest{Name: "Cable", Price: 8, Stock: 100, SKU: "CB001"})
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	for i, d := range []int{1, 2, 3, 4} {
		if err := addMovement(id, d, base.AddDate(0, 0, i)); err != nil {
			t.Fatal(err)
		}
	}

	q := url.Values{}
	q.Set("since", base.AddDate(0, 0, 1).Format(time.RFC3339))
	q.Set("until", base.AddDate(0, 0, 2).Format(time.RFC3339))
	w := doRequest(r, http.MethodGet, "/products/"+id+"/movements?"+q.Encode(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	resp, _ := decode[handler.MovementsSearchResult](w)
	if resp.Meta.TotalCount != 2 || len(resp.Data) != 2 {
		t.Fatalf("expected 2 movements in range, got %d (%d returned)", resp.Meta.TotalCount, len(resp.Data))
	}
	if resp.Data[0].Delta != 3 || resp.Data[1].Delta != 2 {
		t.Errorf("expected deltas [3 2], got [%d %d]", resp.Data[0].Delta, resp.Data[1].Delta)
	}

	w = doRequest(r, http.MethodGet, "/products/"+id+"/movements?limit=1&offset=3", nil)
	resp, _ = decode[handler.MovementsSearchResult](w)
	if resp.Meta.TotalCount != 4 || len(resp.Data) != 1 || resp.Data[0].Delta != 1 {
		t.Errorf("expected the oldest movement on the last page, got %+v", resp)
	}
}

func TestMovementSummaryHandler_Postgres(t *testing.T) {
	requireDatabase(t)
	t.Cleanup(clearAllProducts)
	r := newRouter()

	mouse := mustCreateProduct(t, r, handler.ProductRequest{Name: "Mouse", Price: 20, Stock: 10, SKU: "MS001"})
	pad := mustCreateProduct(t, r, handler.ProductRequest{Name: "Pad", Price: 5, Stock: 10, SKU: "PD001"})

	adjustProduct(r, pad, -1)
	adjustProduct(r, mouse, -1)
	adjustProduct(r, mouse, -1)

	w := doRequest(r, http.MethodGet, "/dashboard/movements", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	summary, _ := decode[repo.MovementSummary](w)
	if summary.TotalMovements != 3 {
		t.Errorf("expected 3 movements, got %d", summary.TotalMovements)
	}
	if summary.MostMovedProduct.ProductID != mouse || summary.MostMovedProduct.Name != "Mouse" || summary.MostMovedProduct.MovementCount != 2 {
		t.Errorf("expected Mouse with 2 movements, got %+v", summary.MostMovedProduct)
	}
}
