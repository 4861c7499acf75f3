package service

import (
	"context"
	"errors"
	"time"

	"payment-webhook-notifier/config"
	"payment-webhook-notifier/internal/core/domain"
	"payment-webhook-notifier/internal/core/ports"

	"github.com/rs/zerolog"
)

// RetryPolicy bounds the delivery loop of one notification.
type RetryPolicy struct {
	MaxRetries int           // total attempts, not retries after the first
	Delay      time.Duration // fixed pause between failed attempts
}

// DefaultRetryPolicy returns the policy used when nothing is configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: config.DefaultMaxRetries, Delay: config.DefaultRetryDelay}
}

// RetryCoordinator implements ports.NotificationCoordinator.
type RetryCoordinator struct {
	secrets   ports.SecretResolver
	deliverer ports.WebhookDeliverer
	urls      ports.URLValidator
	observer  ports.DeliveryObserver
	policy    RetryPolicy
	log       zerolog.Logger

	now   func() time.Time
	sleep func(time.Duration)
}

// NewRetryCoordinator creates a new retry coordinator.
func NewRetryCoordinator(
	secrets ports.SecretResolver,
	deliverer ports.WebhookDeliverer,
	urls ports.URLValidator,
	observer ports.DeliveryObserver,
	policy RetryPolicy,
	log zerolog.Logger,
) *RetryCoordinator {
	if policy.MaxRetries < 1 {
		policy.MaxRetries = 1
	}
	if policy.Delay < 0 {
		policy.Delay = 0
	}
	return &RetryCoordinator{
		secrets:   secrets,
		deliverer: deliverer,
		urls:      urls,
		observer:  observer,
		policy:    policy,
		log:       log,
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// NotifyWithRetry delivers payload to webhook, attempting at most
// policy.MaxRetries times. The outcome is logged and observed, never returned.
func (c *RetryCoordinator) NotifyWithRetry(ctx context.Context, webhook domain.MerchantWebhook, payload domain.WebhookPayload) {
	log := c.log.With().
		Str("merchant_id", webhook.MerchantID).
		Str("webhook_id", webhook.ID).
		Str("transaction_id", payload.TransactionID).
		Str("event_type", payload.EventType).
		Logger()

	var last domain.DeliveryAttempt
	for attempt := 1; attempt <= c.policy.MaxRetries; attempt++ {
		last = c.attempt(ctx, attempt, webhook, payload)
		if last.Success {
			c.observer.ObserveNotification(ports.OutcomeDelivered)
			return
		}
		if errors.Is(last.Err, ErrSecretUnavailable) || errors.Is(last.Err, errWebhookUndeliverable) {
			log.Error().Err(last.Err).Int("attempt", attempt).Msg("webhook: notification aborted")
			c.observer.ObserveNotification(ports.OutcomeAborted)
			return
		}

		log.Warn().Err(last.Err).Int("attempt", attempt).Int("max_retries", c.policy.MaxRetries).Msg("webhook: attempt failed")
		if attempt < c.policy.MaxRetries {
			c.sleep(c.policy.Delay)
		}
	}

	log.Error().Err(last.Err).Int("attempts", last.Ordinal).Msg("webhook: delivery failed after all retries")
	c.observer.ObserveNotification(ports.OutcomeExhausted)
}

var (
	errWebhookUndeliverable = errors.New("webhook is inactive or has an invalid url")
	errDeliveryFailed       = errors.New("delivery attempt failed")
)

func (c *RetryCoordinator) attempt(ctx context.Context, ordinal int, webhook domain.MerchantWebhook, payload domain.WebhookPayload) domain.DeliveryAttempt {
	secret, err := c.secrets.ResolveSecret(ctx, webhook.MerchantID)
	if err != nil {
		return domain.DeliveryAttempt{Ordinal: ordinal, Err: err}
	}
	if secret == "" {
		return domain.DeliveryAttempt{Ordinal: ordinal, Err: ErrSecretUnavailable}
	}

	if !webhook.IsActive || !c.urls.Valid(webhook.URL) {
		return domain.DeliveryAttempt{Ordinal: ordinal, Err: errWebhookUndeliverable}
	}

	if !c.deliverer.Deliver(ctx, webhook.URL, payload.WithTimestamp(c.now()), secret) {
		return domain.DeliveryAttempt{Ordinal: ordinal, Err: errDeliveryFailed}
	}
	return domain.DeliveryAttempt{Ordinal: ordinal, Success: true}
}
