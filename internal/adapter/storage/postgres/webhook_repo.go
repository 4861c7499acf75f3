package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-webhook-notifier/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WebhookRepo implements ports.WebhookRepository over the merchant_webhooks table.
type WebhookRepo struct {
	pool Pool
}

// NewWebhookRepo creates a new WebhookRepo.
func NewWebhookRepo(pool Pool) *WebhookRepo {
	return &WebhookRepo{pool: pool}
}

// GetByMerchantID returns the merchant's webhook, preferring an active row and
// then the most recently updated one. Returns (nil, nil) when none exists.
func (r *WebhookRepo) GetByMerchantID(ctx context.Context, merchantID string) (*domain.MerchantWebhook, error) {
	query := `SELECT id, merchant_id, url, is_active, created_at, updated_at
		FROM merchant_webhooks
		WHERE merchant_id = $1
		ORDER BY is_active DESC, updated_at DESC
		LIMIT 1`

	w := &domain.MerchantWebhook{}
	err := r.pool.QueryRow(ctx, query, merchantID).Scan(
		&w.ID, &w.MerchantID, &w.URL, &w.IsActive,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook by merchant id: %w", err)
	}
	return w, nil
}
