package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payment-webhook-notifier/config"
	httpHandler "payment-webhook-notifier/internal/adapter/http/handler"
	pgStorage "payment-webhook-notifier/internal/adapter/storage/postgres"
	redisStorage "payment-webhook-notifier/internal/adapter/storage/redis"
	"payment-webhook-notifier/internal/core/ports"
	"payment-webhook-notifier/internal/metrics"
	"payment-webhook-notifier/internal/service"
	"payment-webhook-notifier/pkg/logger"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to config file (default: ./config.yaml or ./config/config.yaml)")
	pflag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Int("max_retries", cfg.Webhook.MaxRetries).
		Dur("retry_delay", cfg.Webhook.RetryDelay).
		Dur("timeout", cfg.Webhook.Timeout).
		Msg("Starting Payment Webhook Notifier")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Initialize repositories and stores
	merchantRepo := pgStorage.NewMerchantRepo(pool)
	webhookRepo := pgStorage.NewWebhookRepo(pool)
	dedupStore := redisStorage.NewEventDedupStore(rdb)

	// Metrics
	reg := metrics.NewRegistry()
	m := metrics.New(reg)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	urlValidator := service.NewWebhookURLValidator(cfg.Webhook.AllowInsecureURLs)
	secretResolver := service.NewMerchantSecretResolver(merchantRepo, encSvc)

	// Delivery pipeline: dispatcher -> retry coordinator -> delivery -> signer
	httpClient := &http.Client{
		Timeout: cfg.Webhook.Timeout,
		// a redirect is reported as a failed attempt
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	deliverySvc := service.NewDeliveryService(
		sigSvc,
		httpClient,
		cfg.Webhook.Timeout,
		m,
		logger.WithComponent(log, "delivery"),
	)
	retryCoordinator := service.NewRetryCoordinator(
		secretResolver,
		deliverySvc,
		urlValidator,
		m,
		service.RetryPolicy{MaxRetries: cfg.Webhook.MaxRetries, Delay: cfg.Webhook.RetryDelay},
		logger.WithComponent(log, "retry"),
	)
	dispatchSvc := service.NewDispatchService(
		merchantRepo,
		webhookRepo,
		urlValidator,
		retryCoordinator,
		dedupStore,
		cfg.Webhook.DedupTTL,
		logger.WithComponent(log, "dispatch"),
	)

	var tokenSvc ports.TokenService
	if cfg.Inbound.JWTSecret != "" {
		tokenSvc = service.NewJWTTokenService(cfg.Inbound.JWTSecret, cfg.Inbound.TokenExpiry, cfg.Inbound.JWTIssuer)
	} else if cfg.Inbound.SigningSecret == "" {
		log.Warn().Msg("No inbound authentication configured, event route is open")
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Dispatcher:     dispatchSvc,
		TokenSvc:       tokenSvc,
		Signer:         sigSvc,
		ProviderSecret: cfg.Inbound.SigningSecret,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		HTTPMetrics:    m,
		MetricsHandler: metrics.Handler(reg),
		MaxBodyBytes:   cfg.Inbound.MaxBodyBytes,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Let accepted notifications finish their retry loops.
	drained := make(chan struct{})
	go func() {
		dispatchSvc.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		log.Info().Msg("In-flight notifications drained")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timeout reached with notifications still in flight")
	}

	log.Info().Msg("Server exited")
}
