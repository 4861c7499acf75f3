package ports

import (
	"context"
	"time"

	"payment-webhook-notifier/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// EncryptionService handles AES-256-GCM encryption/decryption of secrets at rest.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// PayloadSigner computes HMAC-SHA256 signatures over webhook payloads.
type PayloadSigner interface {
	Sign(payload domain.WebhookPayload, secret string) (string, error)
	SignBytes(body []byte, secret string) (string, error)
	Verify(body []byte, secret string, signature string) bool
}

// SecretResolver returns the plaintext signing secret of a merchant.
type SecretResolver interface {
	ResolveSecret(ctx context.Context, merchantID string) (string, error)
}

// URLValidator decides whether a webhook URL may receive deliveries.
type URLValidator interface {
	Valid(rawURL string) bool
}

// WebhookDeliverer performs exactly one signed delivery attempt.
// It reports success only; failure detail is logged, not returned.
type WebhookDeliverer interface {
	Deliver(ctx context.Context, url string, payload domain.WebhookPayload, secret string) bool
}

// NotificationCoordinator runs the bounded retry loop for one notification.
// It never reports the outcome to its caller.
type NotificationCoordinator interface {
	NotifyWithRetry(ctx context.Context, webhook domain.MerchantWebhook, payload domain.WebhookPayload)
}

// EventDispatcher validates an inbound event and accepts it for delivery.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event domain.PaymentEvent) (*DispatchResult, error)
}

// DispatchResult describes an accepted dispatch. Accepted is not delivered.
type DispatchResult struct {
	Duplicate bool // an identical event was already accepted; nothing new was spawned
}

// EventDeduplicator remembers inbound events for a bounded time.
type EventDeduplicator interface {
	// Claim records key if unseen. Returns true if this call claimed it,
	// false if it was already claimed within ttl.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// TokenService issues and validates payment provider bearer tokens.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed provider token claims.
type TokenClaims struct {
	Subject string
	Issuer  string
}

// DeliveryObserver receives delivery telemetry.
type DeliveryObserver interface {
	ObserveAttempt(eventType string, success bool, latency time.Duration)
	ObserveNotification(outcome string)
}

// Notification outcomes reported to DeliveryObserver.
const (
	OutcomeDelivered = "delivered"
	OutcomeExhausted = "exhausted"
	OutcomeAborted   = "aborted"
)
