package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"payment-webhook-notifier/internal/core/ports"
	"payment-webhook-notifier/pkg/apperror"
	"payment-webhook-notifier/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderRequestID carries the correlation id of a request.
	HeaderRequestID = "X-Request-ID"
	// HeaderProviderSignature carries the provider's hex HMAC-SHA256 of the body.
	HeaderProviderSignature = "X-Provider-Signature"

	// Context keys
	CtxRequestID = "request_id"
	CtxProvider  = "provider"
)

// RequestID assigns every request a correlation id, reusing a well-formed
// inbound X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// ProviderAuth validates the payment provider's bearer token.
func ProviderAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			response.AbortWithError(c, apperror.ErrUnauthorized())
			return
		}

		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			log.Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("provider token rejected")
			response.AbortWithError(c, apperror.ErrUnauthorized())
			return
		}

		c.Set(CtxProvider, claims.Subject)
		c.Next()
	}
}

// ProviderSignature verifies X-Provider-Signature against the raw body using
// the shared provider secret. The body is restored for the handler.
func ProviderSignature(signer ports.PayloadSigner, secret string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		signature := c.GetHeader(HeaderProviderSignature)
		if signature == "" {
			response.AbortWithError(c, apperror.ErrInvalidSignature())
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				response.AbortWithError(c, apperror.ErrPayloadTooLarge())
				return
			}
			response.AbortWithError(c, apperror.InvalidPayload("cannot read request body"))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if !signer.Verify(body, secret, signature) {
			log.Warn().Str("client_ip", c.ClientIP()).Msg("provider signature mismatch")
			response.AbortWithError(c, apperror.ErrInvalidSignature())
			return
		}

		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(CtxRequestID)).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				response.AbortWithError(c, apperror.InternalError(nil))
			}
		}()
		c.Next()
	}
}
