package handler

import (
	"net/http"

	"payment-webhook-notifier/internal/adapter/http/middleware"
	"payment-webhook-notifier/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultMaxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Dispatcher     ports.EventDispatcher
	TokenSvc       ports.TokenService  // nil = bearer tokens not required
	Signer         ports.PayloadSigner // verifies inbound body signatures together with ProviderSecret
	ProviderSecret string              // empty = body signatures not required
	HealthCheckers []ports.HealthChecker
	HTTPMetrics    middleware.HTTPRecorder // nil = request metrics disabled
	MetricsHandler http.Handler            // nil = no /metrics route
	MaxBodyBytes   int64
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.HTTPMetrics != nil {
		r.Use(middleware.HTTPMetrics(deps.HTTPMetrics))
	}
	r.Use(middleware.MaxBodySize(maxBody))

	// Deep health check over PostgreSQL and Redis
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Provider event feed ---
	var providerAuth []gin.HandlerFunc
	if deps.TokenSvc != nil {
		providerAuth = append(providerAuth, middleware.ProviderAuth(deps.TokenSvc, deps.Logger))
	}
	if deps.ProviderSecret != "" && deps.Signer != nil {
		providerAuth = append(providerAuth, middleware.ProviderSignature(deps.Signer, deps.ProviderSecret, deps.Logger))
	}

	webhookHandler := NewWebhookHandler(deps.Dispatcher, deps.Logger)
	webhooks := v1.Group("/webhooks", providerAuth...)
	{
		webhooks.POST("/events", webhookHandler.HandleEvent)
	}

	return r
}
