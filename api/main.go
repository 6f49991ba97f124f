package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/analytics"
	"github.com/Akshadkurundwade07/shopflow/internal/auth"
	"github.com/Akshadkurundwade07/shopflow/internal/config"
	"github.com/Akshadkurundwade07/shopflow/internal/db"
	api "github.com/Akshadkurundwade07/shopflow/internal/http"
	"github.com/Akshadkurundwade07/shopflow/internal/http/ban"
	"github.com/Akshadkurundwade07/shopflow/internal/http/handlers"
	rl "github.com/Akshadkurundwade07/shopflow/internal/http/rate_limiter"
	"github.com/Akshadkurundwade07/shopflow/internal/logger"
	"github.com/Akshadkurundwade07/shopflow/internal/redissvc"
	"github.com/Akshadkurundwade07/shopflow/internal/repo"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@shop.com"
	demoPassword = "demo123"

	visitorCleanupInterval = time.Minute
	visitorMaxIdle         = 3 * time.Minute
	sessionCleanupInterval = 30 * time.Minute
)

// @title ShopFlow Inventory API
// @version 1.0
// @description REST API for managing a shop's products, categories, stock movements and analytics.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	srv := &handlers.Server{
		Analytics:          analytics.NewEngine(),
		Issuer:             auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL),
		SeedSampleProducts: cfg.SeedSampleProducts,
		Logger:             log,
	}

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		defer database.Close()

		if err := db.Migrate(database); err != nil {
			return err
		}
		usePostgres(srv, database)
		log.Info("using postgres storage")
	default:
		useMemory(srv)
		log.Info("using in-memory storage")
	}

	var banner *ban.Service
	if cfg.RedisURL != "" {
		rdb, err := redissvc.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()

		srv.Sessions = auth.NewRedisSessionStore(rdb)
		banner = ban.NewService(rdb, ban.Config{
			MaxStrikes:   cfg.BanMaxStrikes,
			StrikeWindow: cfg.BanStrikeWindow,
			Duration:     cfg.BanDuration,
		})
		go banner.StartDailySummary(ctx)
		log.Info("connected to redis")
	} else {
		sessions := auth.NewMemorySessionStore()
		go sessions.StartCleaner(ctx, sessionCleanupInterval)
		srv.Sessions = sessions
		log.Warn("redis.url not set: sessions are kept in memory and bans are disabled")
	}

	if cfg.SeedDemoUser {
		if err := seedDemoUser(ctx, srv); err != nil {
			return err
		}
	}

	limiter := rl.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.StartCleanupLoop(ctx, visitorCleanupInterval, visitorMaxIdle)

	deps := api.Deps{Server: srv, Limiter: limiter, Logger: log}
	if banner != nil {
		deps.Banner = banner
	}

	httpServer := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.ServerAddr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func useMemory(srv *handlers.Server) {
	srv.Products = repo.NewInMemoryProductRepository()
	srv.Categories = repo.NewInMemoryCategoryRepository()
	srv.Users = repo.NewInMemoryUserRepository()
	srv.Movements = repo.NewInMemoryMovementRepository()
}

func usePostgres(srv *handlers.Server, database *sql.DB) {
	srv.Products = repo.NewPostgresProductRepository(database)
	srv.Categories = repo.NewPostgresCategoryRepository(database)
	srv.Users = repo.NewPostgresUserRepository(database)
	srv.Movements = repo.NewPostgresMovementRepository(database)
}

// seedDemoUser creates the demo account unless it already exists.
func seedDemoUser(ctx context.Context, srv *handlers.Server) error {
	_, err := srv.RegisterAccount(ctx, handlers.SignupRequest{
		Email:    demoEmail,
		Password: demoPassword,
		Name:     "Demo User",
		ShopName: "Demo Shop",
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	srv.Logger.Info("demo account ready", zap.String("email", demoEmail))
	return nil
}
