package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/auth"
	"github.com/Akshadkurundwade07/shopflow/internal/http/middleware"
	rl "github.com/Akshadkurundwade07/shopflow/internal/http/rate_limiter"
	"github.com/Akshadkurundwade07/shopflow/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuth(t *testing.T) {
	issuer := auth.NewIssuer("secret", time.Hour)
	sessions := auth.NewMemorySessionStore()
	token, claims, err := issuer.Issue(models.User{ID: "u1", Email: "demo@shop.com", Role: "owner"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	var seen *auth.Claims
	h := middleware.Auth(issuer, sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.ClaimsFromContext(r.Context())
	}))

	tests := []struct {
		name       string
		header     string
		expectCode int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != tt.expectCode {
				t.Errorf("expected %d, got %d", tt.expectCode, w.Code)
			}
		})
	}

	if seen == nil || seen.Subject != "u1" {
		t.Fatalf("expected claims for u1 in context, got %+v", seen)
	}

	if err := sessions.Revoke(context.Background(), claims.ID, claims.ExpiresAt.Time); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for revoked token, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "revoked") {
		t.Errorf("expected revoked message, got %q", w.Body.String())
	}
}

type fakeBanner struct {
	mu      sync.Mutex
	strikes map[string]int
	banned  map[string]bool
	max     int
	failing bool
}

func newFakeBanner(max int) *fakeBanner {
	return &fakeBanner{strikes: map[string]int{}, banned: map[string]bool{}, max: max}
}

func (b *fakeBanner) IsBanned(_ context.Context, target string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failing {
		return false, errors.New("redis down")
	}
	return b.banned[target], nil
}

func (b *fakeBanner) RecordStrike(_ context.Context, target, _ string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.strikes[target]++
	if b.strikes[target] >= b.max {
		b.banned[target] = true
		return true, nil
	}
	return false, nil
}

func TestRateLimit_StrikesLeadToBan(t *testing.T) {
	banner := newFakeBanner(2)
	h := middleware.RateLimit(rl.New(0.001, 1), banner)(http.HandlerFunc(okHandler))

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	want := []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests, http.StatusForbidden}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("expected codes %v, got %v", want, codes)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected other client to pass, got %d", w.Code)
	}
}

func TestRateLimit_FailsOpenWithoutBanStore(t *testing.T) {
	banner := newFakeBanner(1)
	banner.failing = true
	h := middleware.RateLimit(rl.New(100, 100), banner)(http.HandlerFunc(okHandler))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 when ban lookup fails, got %d", w.Code)
	}

	h = middleware.RateLimit(rl.New(100, 100), nil)(http.HandlerFunc(okHandler))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 without banner, got %d", w.Code)
	}
}

func TestLoggerAndMetrics(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	r := chi.NewRouter()
	r.Use(middleware.Logger(zap.New(core)))
	r.Use(middleware.Metrics)
	r.Get("/things/{id}", okHandler)
	r.Handle("/metrics", promhttp.Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/42", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["route"] != "/things/{id}" {
		t.Errorf("expected route /things/{id}, got %v", fields["route"])
	}
	if fields["status"] != int64(http.StatusOK) {
		t.Errorf("expected status 200, got %v", fields["status"])
	}

	mw := httptest.NewRecorder()
	r.ServeHTTP(mw, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	want := `shopflow_http_requests_total{method="GET",route="/things/{id}",status="200"}`
	if !strings.Contains(mw.Body.String(), want) {
		t.Errorf("expected metrics output to contain %s", want)
	}
}
