package handlers_integrated_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	api "github.com/Akshadkurundwade07/shopflow/internal/http"
	handler "github.com/Akshadkurundwade07/shopflow/internal/http/handlers"
	rl "github.com/Akshadkurundwade07/shopflow/internal/http/rate_limiter"
	"go.uber.org/zap"
)

func newRouter() http.Handler {
	return api.NewRouter(api.Deps{
		Server:  server,
		Limiter: rl.New(1000, 1000),
		Logger:  zap.NewNop(),
	})
}

func clearAllProducts() {
	if err := exec("TRUNCATE TABLE products, movements RESTART IDENTITY"); err != nil {
		fmt.Println(err)
	}
}

func generateToken(r http.Handler, email, password string) (string, error) {
	body, _ := json.Marshal(handler.LoginRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", w.Code)
	}

	var resp handler.AuthResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doRequestAs(r http.Handler, bearer, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRequest(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	return doRequestAs(r, token, method, path, payload)
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/products", p)
}

func mustCreateProduct(t *testing.T, r http.Handler, p handler.ProductRequest) string {
	t.Helper()
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		t.Fatalf("product creation failed: %d %s", w.Code, w.Body.String())
	}
	resp, err := decode[handler.ProductResponse](w)
	if err != nil {
		t.Fatal(err)
	}
	return resp.ID
}

func adjustProduct(r http.Handler, productID string, delta int) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, fmt.Sprintf("/products/%s/adjust", productID), handler.QuantityAdjustmentRequest{Delta: delta})
}

func addMovement(productID string, delta int, createdAt time.Time) error {
	return exec(`INSERT INTO movements (owner_id, product_id, delta, created_at) VALUES ($1, $2, $3, $4)`,
		ownerID, productID, delta, createdAt)
}

func importCSV(r http.Handler, csvContent, mode string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("file", "products.csv")
	part.Write([]byte(csvContent))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/products/import?mode="+mode, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](w *httptest.ResponseRecorder) (T, error) {
	var v T
	err := json.NewDecoder(w.Body).Decode(&v)
	return v, err
}

func ptr[T any](v T) *T { return &v }
