package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/user/invoicing-dashboard/internal/adapter/api"
	"github.com/user/invoicing-dashboard/internal/adapter/metrics"
	"github.com/user/invoicing-dashboard/internal/adapter/repository/postgres"
	redisrepo "github.com/user/invoicing-dashboard/internal/adapter/repository/redis"
	"github.com/user/invoicing-dashboard/internal/domain"
	"github.com/user/invoicing-dashboard/internal/pkg/config"
	"github.com/user/invoicing-dashboard/internal/pkg/logger"
	"github.com/user/invoicing-dashboard/internal/usecase"

	_ "github.com/lib/pq" // Keep for postgres driver
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logger.New(cfg.LogLevel)
	slog.SetDefault(logger)

	m := metrics.New()

	// --- Start Admin and Metrics Server ---
	adminMux := http.NewServeMux()
	adminMux.Handle("/metrics", promhttp.Handler())
	adminMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	adminServer := &http.Server{
		Addr:    cfg.AdminAddr,
		Handler: adminMux,
	}

	go func() {
		logger.Info("starting admin & metrics server", "addr", adminServer.Addr)
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("admin & metrics server failed", "error", err)
		}
	}()

	// --- Graceful Shutdown Context ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	db, err := postgres.Open(cfg.PostgresURL, cfg.MaxPoolSize)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to ping postgres", "error", err)
		os.Exit(1)
	}

	// --- Optional Dashboard Cache ---
	var cache domain.DashboardCache
	if cfg.RedisAddr != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisAddr)
		if err != nil {
			logger.Error("failed to parse redis url", "error", err)
			os.Exit(1)
		}
		redisClient := redis.NewClient(redisOpts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("could not connect to redis, dashboard cache disabled", "error", err)
		} else {
			cache = redisrepo.NewDashboardCache(redisClient, logger, cfg.DashboardCacheTTL)
		}
	}

	// --- Initialize Repositories ---
	invoiceRepo := postgres.NewInvoiceRepository(db, logger, m)
	customerRepo := postgres.NewCustomerRepository(db, logger, m)
	dashboardRepo := postgres.NewDashboardRepository(db, logger, m)
	userRepo := postgres.NewUserRepository(db, logger, m)

	// --- Initialize Use Cases ---
	dashboardService := usecase.NewDashboardService(dashboardRepo, invoiceRepo, cache, logger, m)
	invoiceService := usecase.NewInvoiceService(invoiceRepo, cache, logger)
	customerService := usecase.NewCustomerService(customerRepo, logger)
	authService := usecase.NewAuthService(userRepo, logger)

	// --- Initialize Server ---
	router := api.NewRouter(cfg, logger, m, dashboardService, invoiceService, customerService, authService)
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	go func() {
		logger.Info("starting dashboard server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("dashboard server failed", "error", err)
			stop() // Trigger shutdown on server error
		}
	}()

	// --- Wait for shutdown signal ---
	<-ctx.Done()
	logger.Info("shutting down servers...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := adminServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("admin server shutdown failed", "error", err)
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("dashboard server shutdown failed", "error", err)
	}

	logger.Info("servers shut down gracefully")
}
