package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-webhook-notifier/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const merchantSelect = `SELECT id, name, secret_key_enc, status, created_at, updated_at FROM merchants`

// MerchantRepo implements ports.MerchantRepository over the merchant registry.
// The notifier never writes merchants.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

// GetByID fetches a merchant by id. Returns (nil, nil) when absent.
func (r *MerchantRepo) GetByID(ctx context.Context, id string) (*domain.Merchant, error) {
	m, err := scanMerchant(r.pool.QueryRow(ctx, merchantSelect+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get merchant %q: %w", id, err)
	}
	return m, nil
}

func scanMerchant(row pgx.Row) (*domain.Merchant, error) {
	var m domain.Merchant
	if err := row.Scan(&m.ID, &m.Name, &m.SecretKeyEnc, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
