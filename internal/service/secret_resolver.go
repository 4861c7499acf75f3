package service

import (
	"context"
	"errors"
	"fmt"

	"payment-webhook-notifier/internal/core/ports"
)

// ErrSecretUnavailable marks a merchant whose signing secret cannot be used.
// It is a defect condition, not a transient failure: callers must not retry or send.
var ErrSecretUnavailable = errors.New("merchant signing secret unavailable")

// MerchantSecretResolver implements ports.SecretResolver on top of the
// merchant registry and the at-rest encryption service.
type MerchantSecretResolver struct {
	merchantRepo ports.MerchantRepository
	encSvc       ports.EncryptionService
}

// NewMerchantSecretResolver creates a new secret resolver.
func NewMerchantSecretResolver(merchantRepo ports.MerchantRepository, encSvc ports.EncryptionService) *MerchantSecretResolver {
	return &MerchantSecretResolver{merchantRepo: merchantRepo, encSvc: encSvc}
}

// ResolveSecret returns the decrypted signing secret of merchantID.
// Lookup failures are returned as-is; a missing merchant, missing secret or
// undecryptable secret wraps ErrSecretUnavailable.
func (r *MerchantSecretResolver) ResolveSecret(ctx context.Context, merchantID string) (string, error) {
	merchant, err := r.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return "", fmt.Errorf("fetching merchant: %w", err)
	}
	if merchant == nil {
		return "", fmt.Errorf("%w: merchant %s not found", ErrSecretUnavailable, merchantID)
	}
	if merchant.SecretKeyEnc == "" {
		return "", fmt.Errorf("%w: merchant %s has no secret", ErrSecretUnavailable, merchantID)
	}

	secret, err := r.encSvc.Decrypt(merchant.SecretKeyEnc)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSecretUnavailable, err)
	}
	if secret == "" {
		return "", fmt.Errorf("%w: merchant %s has an empty secret", ErrSecretUnavailable, merchantID)
	}
	return secret, nil
}
