package service

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"payment-webhook-notifier/internal/core/domain"
	"payment-webhook-notifier/internal/core/ports"

	"github.com/rs/zerolog"
)

// SignatureHeader carries the hex HMAC-SHA256 of the request body.
const SignatureHeader = "X-Webhook-Signature"

// maxDrainBytes bounds how much of a merchant response body is read before closing.
const maxDrainBytes = 64 << 10

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DeliveryService implements ports.WebhookDeliverer: one signed POST per call.
type DeliveryService struct {
	signer     ports.PayloadSigner
	httpClient HTTPClient
	timeout    time.Duration
	observer   ports.DeliveryObserver
	log        zerolog.Logger
}

// NewDeliveryService creates a delivery executor. timeout bounds each attempt.
func NewDeliveryService(
	signer ports.PayloadSigner,
	httpClient HTTPClient,
	timeout time.Duration,
	observer ports.DeliveryObserver,
	log zerolog.Logger,
) *DeliveryService {
	return &DeliveryService{
		signer:     signer,
		httpClient: httpClient,
		timeout:    timeout,
		observer:   observer,
		log:        log,
	}
}

// Deliver POSTs payload to url signed with secret. It returns true only for a
// 2xx response; every other outcome is logged and reported as false.
func (s *DeliveryService) Deliver(ctx context.Context, url string, payload domain.WebhookPayload, secret string) bool {
	log := s.log.With().
		Str("merchant_id", payload.MerchantID).
		Str("transaction_id", payload.TransactionID).
		Str("event_type", payload.EventType).
		Logger()

	body, err := payload.Marshal()
	if err != nil {
		log.Error().Err(err).Msg("webhook: failed to marshal payload")
		return false
	}

	signature, err := s.signer.Sign(payload, secret)
	if err != nil {
		log.Error().Err(err).Msg("webhook: failed to sign payload")
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Msg("webhook: failed to create request")
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, signature)

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		log.Warn().Err(err).Dur("latency", latency).Msg("webhook: delivery failed")
		s.observer.ObserveAttempt(payload.EventType, false, latency)
		return false
	}
	if resp.Body != nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
		resp.Body.Close()
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Info().Int("status", resp.StatusCode).Dur("latency", latency).Msg("webhook: delivered successfully")
		s.observer.ObserveAttempt(payload.EventType, true, latency)
		return true
	}

	log.Warn().Int("status", resp.StatusCode).Dur("latency", latency).Msg("webhook: non-2xx response")
	s.observer.ObserveAttempt(payload.EventType, false, latency)
	return false
}
