package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"payment-webhook-notifier/internal/core/domain"
)

// ErrMissingSigningSecret is returned instead of a signature when no key is supplied.
var ErrMissingSigningSecret = errors.New("webhook signing secret is missing")

// HMACSignatureService implements ports.PayloadSigner using HMAC-SHA256.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign encodes payload and returns the lowercase hex HMAC-SHA256 of the
// encoded bytes keyed by secret.
func (s *HMACSignatureService) Sign(payload domain.WebhookPayload, secret string) (string, error) {
	if secret == "" {
		return "", ErrMissingSigningSecret
	}
	body, err := payload.Marshal()
	if err != nil {
		return "", fmt.Errorf("encoding payload: %w", err)
	}
	return s.SignBytes(body, secret)
}

// SignBytes returns the lowercase hex HMAC-SHA256 of body keyed by secret.
func (s *HMACSignatureService) SignBytes(body []byte, secret string) (string, error) {
	if secret == "" {
		return "", ErrMissingSigningSecret
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify checks signature against HMAC-SHA256(secret, body) in constant time.
func (s *HMACSignatureService) Verify(body []byte, secret string, signature string) bool {
	expected, err := s.SignBytes(body, secret)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(signature))
}
