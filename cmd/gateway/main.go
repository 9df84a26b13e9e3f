package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/moneta-checkout/internal/api"
	"github.com/DanielPopoola/moneta-checkout/internal/application/services"
	"github.com/DanielPopoola/moneta-checkout/internal/config"
	"github.com/DanielPopoola/moneta-checkout/internal/infrastructure/moneta"
	"github.com/DanielPopoola/moneta-checkout/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/moneta-checkout/internal/infrastructure/pricing"
	"github.com/DanielPopoola/moneta-checkout/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/moneta-checkout/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/moneta-checkout/internal/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting checkout service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	bootstrap, err := cfg.Moneta.GatewaySettings()
	if err != nil {
		logger.Error("invalid moneta configuration", "error", err)
		os.Exit(1)
	}

	orderRepo := postgres.NewOrderRepository(db)
	currencyRepo := postgres.NewCurrencyRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)

	redirectService := services.NewRedirectService(
		orderRepo,
		currencyRepo,
		settingsRepo,
		moneta.NewSigner,
		cfg.Store.PrimaryCurrencyID,
		logger,
	)
	feeService := services.NewFeeService(settingsRepo, pricing.NewCartSubtotal(), logger)
	paymentMethodService := services.NewPaymentMethodService(logger)
	settingsService := services.NewSettingsService(settingsRepo, moneta.NewSigner, bootstrap, logger)

	if cfg.Moneta.InstallOnStart {
		if _, err := settingsService.Install(ctx); err != nil {
			logger.Error("failed to install payment method", "error", err)
			os.Exit(1)
		}
	}

	spec, err := api.Load(ctx)
	if err != nil {
		logger.Error("failed to load api description", "error", err)
		os.Exit(1)
	}
	validateRequests, err := middleware.OpenAPIValidator(spec, logger)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	m := metrics.New()

	h := handlers.NewHandlers(
		redirectService,
		feeService,
		paymentMethodService,
		settingsService,
		m,
		logger,
	)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	api.RegisterDocsRoutes(mux, spec)
	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.Chain(mux,
		middleware.Logging(logger),
		middleware.Recovery(logger),
		middleware.Timeout(cfg.Server.ReadTimeout),
		validateRequests,
		middleware.Metrics(m),
	)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
