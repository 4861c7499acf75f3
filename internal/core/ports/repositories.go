package ports

import (
	"context"

	"payment-webhook-notifier/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// MerchantRepository reads merchants from the merchant registry.
// GetByID returns (nil, nil) when no merchant has the given id.
type MerchantRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Merchant, error)
}

// WebhookRepository reads merchant webhook configuration.
// GetByMerchantID returns the merchant's current webhook, preferring an
// active one, or (nil, nil) when none is configured.
type WebhookRepository interface {
	GetByMerchantID(ctx context.Context, merchantID string) (*domain.MerchantWebhook, error)
}
