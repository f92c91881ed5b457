package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bsm/redislock"
	"github.com/hibiken/asynq"

	"github.com/AMUDHAVALLI/Billing/internal/app"
	"github.com/AMUDHAVALLI/Billing/internal/dashboard"
	"github.com/AMUDHAVALLI/Billing/internal/invoices"
	"github.com/AMUDHAVALLI/Billing/internal/masterdata/companies"
	"github.com/AMUDHAVALLI/Billing/internal/masterdata/customers"
	"github.com/AMUDHAVALLI/Billing/internal/masterdata/products"
	"github.com/AMUDHAVALLI/Billing/internal/observability"
	"github.com/AMUDHAVALLI/Billing/internal/platform/cache"
	"github.com/AMUDHAVALLI/Billing/internal/platform/db"
	"github.com/AMUDHAVALLI/Billing/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	// Invoice numbering serializes through Redis, so startup fails
	// without it.
	redisClient, err := cache.New(ctx, cfg.RedisAddr, cfg.RedisDialTimeout)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	metrics := observability.NewMetrics()

	companyRepo := companies.NewRepository(pool)
	companyService := companies.NewService(companyRepo)
	companyHandler := companies.NewHandler(logger, companyService)

	customerRepo := customers.NewRepository(pool)
	customerService := customers.NewService(customerRepo)
	customerHandler := customers.NewHandler(logger, customerService)

	productRepo := products.NewRepository(pool)
	productService := products.NewService(productRepo)
	productHandler := products.NewHandler(logger, productService)

	invoiceRepo := invoices.NewRepository(pool)
	invoiceService := invoices.NewService(
		logger, invoiceRepo, companyRepo, customerRepo, productRepo,
		redislock.New(redisClient), metrics,
	)
	invoiceHandler := invoices.NewHandler(logger, invoiceService)

	dashboardRepo := dashboard.NewRepository(pool)
	dashboardService := dashboard.NewService(logger, dashboardRepo, redisClient, cfg.StatsCacheTTL)
	dashboardHandler := dashboard.NewHandler(logger, dashboardService)

	// Prime the stats cache so the first dashboard request hits warm data.
	jobClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Warn("job client init", slog.Any("error", err))
	} else {
		defer func() {
			if err := jobClient.Close(); err != nil {
				logger.Warn("job client close", slog.Any("error", err))
			}
		}()
		if _, err := jobClient.EnqueueStatsWarmup(ctx); err != nil {
			logger.Warn("enqueue stats warmup", slog.Any("error", err))
		}
	}

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		CompanyHandler:   companyHandler,
		CustomerHandler:  customerHandler,
		ProductHandler:   productHandler,
		InvoiceHandler:   invoiceHandler,
		DashboardHandler: dashboardHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
