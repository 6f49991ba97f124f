package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/analytics"
	"github.com/Akshadkurundwade07/shopflow/internal/auth"
	api "github.com/Akshadkurundwade07/shopflow/internal/http"
	handler "github.com/Akshadkurundwade07/shopflow/internal/http/handlers"
	rl "github.com/Akshadkurundwade07/shopflow/internal/http/rate_limiter"
	"github.com/Akshadkurundwade07/shopflow/internal/repo"
	"go.uber.org/zap"
)

const (
	testEmail    = "owner@shop.com"
	testPassword = "secret1"
)

var (
	token   string
	ownerID string
	server  *handler.Server

	productRepo  *repo.InMemoryProductRepository
	categoryRepo *repo.InMemoryCategoryRepository
	movementRepo *repo.InMemoryMovementRepository
	userRepo     *repo.InMemoryUserRepository
)

func init() {
	setupTestRepos()
	r := newRouter()

	var err error
	token, err = generateToken(r, testEmail, testPassword)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos() {
	productRepo = repo.NewInMemoryProductRepository()
	categoryRepo = repo.NewInMemoryCategoryRepository()
	movementRepo = repo.NewInMemoryMovementRepository()
	userRepo = repo.NewInMemoryUserRepository()

	server = &handler.Server{
		Products:   productRepo,
		Categories: categoryRepo,
		Users:      userRepo,
		Movements:  movementRepo,
		Analytics:  analytics.NewEngine(analytics.WithRandomSource(rand.New(rand.NewPCG(1, 2)))),
		Issuer:     auth.NewIssuer("secret", time.Hour),
		Sessions:   auth.NewMemorySessionStore(),
		Logger:     zap.NewNop(),
	}

	user, err := server.RegisterAccount(context.Background(), handler.SignupRequest{
		Email:    testEmail,
		Password: testPassword,
		Name:     "Test Owner",
		ShopName: "Test Shop",
	})
	if err != nil {
		panic(fmt.Sprintf("error registering test account: %v", err))
	}
	ownerID = user.ID
}

// newRouter builds a router with a fresh, generous rate limiter. Every httptest
// request shares one remote address.
func newRouter() http.Handler {
	return api.NewRouter(api.Deps{
		Server:  server,
		Limiter: rl.New(1000, 1000),
		Logger:  zap.NewNop(),
	})
}

func clearAllProducts() {
	productRepo.Clear()
	movementRepo.Clear()
}

// resetCategories restores the default categories of the test account.
func resetCategories() {
	categoryRepo.Clear()
	for _, c := range repo.DefaultCategories() {
		c.OwnerID = ownerID
		if _, err := categoryRepo.Create(context.Background(), c); err != nil {
			panic(err)
		}
	}
}

func login(r http.Handler, email, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.LoginRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func generateToken(r http.Handler, email, password string) (string, error) {
	w := login(r, email, password)
	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp handler.AuthResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

// doRequest sends an authenticated request with an optional JSON body.
func doRequest(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	return doRequestAs(r, token, method, path, payload)
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

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/products", p)
}

// mustCreateProduct creates p and returns its id, panicking on failure.
func mustCreateProduct(r http.Handler, p handler.ProductRequest) string {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("product creation failed: %d %s", w.Code, w.Body.String()))
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(err)
	}
	return resp.ID
}

func adjustProduct(r http.Handler, productID string, adj handler.QuantityAdjustmentRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, fmt.Sprintf("/products/%s/adjust", productID), adj)
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func importCSV(r http.Handler, csvContent, mode string) *httptest.ResponseRecorder {
	body, contentType := multipartCSV(csvContent, "products.csv")
	path := "/products/import"
	if mode != "" {
		path += "?mode=" + mode
	}
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func addMovement(productID string, delta int, createdAt time.Time) {
	movementRepo.AddMovement(ownerID, productID, delta, createdAt)
}

func decode[T any](w *httptest.ResponseRecorder) (T, error) {
	var v T
	err := json.NewDecoder(w.Body).Decode(&v)
	return v, err
}

// signupOther registers a fresh account and returns its token.
func signupOther(r http.Handler) (string, error) {
	w := doRequestAs(r, "", http.MethodPost, "/auth/signup", handler.SignupRequest{
		Email:    fmt.Sprintf("other-%d@shop.com", time.Now().UnixNano()),
		Password: "secret1",
		Name:     "Other",
		ShopName: "Other Shop",
	})
	if w.Code != http.StatusCreated {
		return "", fmt.Errorf("signup failed with status %d: %s", w.Code, w.Body.String())
	}
	resp, err := decode[handler.AuthResult](w)
	return resp.Token, err
}
