package http

import (
	"net/http"

	_ "github.com/Akshadkurundwade07/shopflow/docs"
	"github.com/Akshadkurundwade07/shopflow/internal/http/handlers"
	mw "github.com/Akshadkurundwade07/shopflow/internal/http/middleware"
	rl "github.com/Akshadkurundwade07/shopflow/internal/http/rate_limiter"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// Deps wires the router. Banner may be nil, which disables strikes and bans;
// pass an untyped nil rather than a nil *ban.Service.
type Deps struct {
	Server  *handlers.Server
	Limiter *rl.Limiter
	Banner  mw.Banner
	Logger  *zap.Logger
}

func NewRouter(d Deps) http.Handler {
	s := d.Server
	logger := d.Logger
	if logger == nil {
		logger = zap.L()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(mw.Logger(logger))
	r.Use(mw.Metrics)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit(d.Limiter, d.Banner))

		r.Post("/auth/signup", s.Signup)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth(s.Issuer, s.Sessions))

			r.Post("/auth/logout", s.Logout)
			r.Get("/auth/me", s.Me)
			r.Patch("/auth/me", s.UpdateProfile)
			r.Post("/auth/password", s.ChangePassword)
			r.Get("/account/export", s.ExportAccount)

			r.Route("/products", func(r chi.Router) {
				r.Get("/", s.GetProducts)
				r.Post("/", s.CreateProduct)
				r.Get("/search", s.FilterProducts)
				r.Get("/export", s.ExportProducts)
				r.Post("/import", s.ImportProducts)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.GetProductByID)
					r.Patch("/", s.UpdateProduct)
					r.Delete("/", s.DeleteProduct)
					r.Post("/adjust", s.AdjustStock)
					r.Get("/movements", s.GetMovements)
					r.Get("/movements/export", s.ExportMovements)
				})
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", s.GetCategories)
				r.Post("/", s.CreateCategory)
				r.Get("/{id}", s.GetCategoryByID)
				r.Patch("/{id}", s.UpdateCategory)
				r.Delete("/{id}", s.DeleteCategory)
			})

			r.Get("/dashboard/stats", s.GetDashboardStats)
			r.Get("/dashboard/movements", s.GetMovementSummary)

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/", s.GetAnalyticsReport)
				r.Get("/sales", s.GetSalesSeries)
				r.Get("/categories", s.GetCategoryAnalytics)
				r.Get("/products", s.GetProductPerformance)
				r.Get("/trends", s.GetInventoryTrends)
				r.Get("/stock-movement", s.GetStockMovementSeries)
				r.Get("/alerts", s.GetAlerts)
			})
		})
	})

	return r
}
