package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wichananm65/paint-shop-backend/internal/checkout"
	"github.com/wichananm65/paint-shop-backend/internal/config"
	"github.com/wichananm65/paint-shop-backend/internal/health"
	"github.com/wichananm65/paint-shop-backend/internal/infrastructure/database/postgres"
	"github.com/wichananm65/paint-shop-backend/internal/interface/http/router"
	"github.com/wichananm65/paint-shop-backend/internal/order"
	"github.com/wichananm65/paint-shop-backend/internal/product"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	productRepo, orderRepo, db := mustOpenStores(ctx, cfg, logger)
	if db != nil {
		defer db.Close()
	}

	productService := product.NewService(productRepo)
	orderService := order.NewService(orderRepo)

	// every process starts from the seed catalog and an empty order log,
	// whichever backend holds them
	if err := productService.ResetProducts(ctx, product.Seed()); err != nil {
		logger.Error("seed catalog", "error", err)
		os.Exit(1)
	}
	if err := orderService.Reset(ctx); err != nil {
		logger.Error("reset order log", "error", err)
		os.Exit(1)
	}

	checkoutService := checkout.NewService(productService, orderService, logger)

	app := router.New(router.Options{
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		StaticDir:        cfg.StaticDir,
	}, logger,
		health.NewHandler(),
		product.NewHandler(productService),
		checkout.NewHandler(checkoutService),
		order.NewHandler(orderService),
	)

	go func() {
		logger.Info("server starting", "addr", cfg.Addr, "postgres", db != nil, "static_dir", cfg.StaticDir)
		if err := app.Listen(cfg.Addr); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

// mustOpenStores picks the backend: Postgres when DATABASE_URL is set,
// process memory otherwise. The returned *sql.DB is nil for the in-memory
// backend.
func mustOpenStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (product.Repository, order.Repository, *sql.DB) {
	if cfg.DatabaseURL == "" {
		return product.NewInMemoryRepository(nil), order.NewInMemoryRepository(), nil
	}

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	if err := postgres.Migrate(db); err != nil {
		logger.Error("migrate postgres", "error", err)
		os.Exit(1)
	}
	return product.NewPostgresRepository(db), order.NewPostgresRepository(db), db
}
