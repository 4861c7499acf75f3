package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"payment-webhook-notifier/internal/core/domain"
	"payment-webhook-notifier/internal/core/ports"
	"payment-webhook-notifier/pkg/apperror"

	"github.com/rs/zerolog"
)

const dedupKeyPrefix = "event:"

// DispatchServiceImpl implements ports.EventDispatcher.
type DispatchServiceImpl struct {
	merchantRepo ports.MerchantRepository
	webhookRepo  ports.WebhookRepository
	urls         ports.URLValidator
	coordinator  ports.NotificationCoordinator
	dedup        ports.EventDeduplicator // nil disables de-duplication
	dedupTTL     time.Duration
	log          zerolog.Logger

	now      func() time.Time
	inflight sync.WaitGroup
}

// NewDispatchService creates a new DispatchServiceImpl.
func NewDispatchService(
	merchantRepo ports.MerchantRepository,
	webhookRepo ports.WebhookRepository,
	urls ports.URLValidator,
	coordinator ports.NotificationCoordinator,
	dedup ports.EventDeduplicator,
	dedupTTL time.Duration,
	log zerolog.Logger,
) *DispatchServiceImpl {
	return &DispatchServiceImpl{
		merchantRepo: merchantRepo,
		webhookRepo:  webhookRepo,
		urls:         urls,
		coordinator:  coordinator,
		dedup:        dedup,
		dedupTTL:     dedupTTL,
		log:          log,
		now:          time.Now,
	}
}

// Dispatch checks the delivery preconditions of event and, when they hold,
// hands the notification to the retry coordinator in the background.
// A nil error means accepted, not delivered.
func (s *DispatchServiceImpl) Dispatch(ctx context.Context, event domain.PaymentEvent) (*ports.DispatchResult, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, event.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetching merchant: %w", err))
	}
	if merchant == nil {
		return nil, apperror.ErrMerchantNotFound()
	}
	if !merchant.IsActive() {
		return nil, apperror.ErrMerchantInactive()
	}

	webhook, err := s.webhookRepo.GetByMerchantID(ctx, merchant.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetching webhook: %w", err))
	}
	if webhook == nil {
		return nil, apperror.ErrWebhookNotFound()
	}
	if !webhook.IsActive {
		return nil, apperror.ErrWebhookInactive()
	}
	if !s.urls.Valid(webhook.URL) {
		return nil, apperror.ErrInvalidWebhookURL()
	}

	if s.dedup != nil {
		key := dedupKeyPrefix + event.DedupKey()
		claimed, err := s.dedup.Claim(ctx, key, s.dedupTTL)
		if err != nil {
			// Fail open: a Redis outage must not block notifications.
			s.log.Warn().Err(err).Str("key", key).Msg("event dedup check failed, dispatching anyway")
		} else if !claimed {
			s.log.Info().
				Str("merchant_id", event.MerchantID).
				Str("transaction_id", event.Transaction.ID).
				Msg("duplicate event ignored")
			return &ports.DispatchResult{Duplicate: true}, nil
		}
	}

	payload := domain.NewWebhookPayload(event, s.now())
	s.spawn(ctx, *webhook, payload)

	return &ports.DispatchResult{}, nil
}

// Wait blocks until every spawned notification has finished.
func (s *DispatchServiceImpl) Wait() {
	s.inflight.Wait()
}

func (s *DispatchServiceImpl) spawn(ctx context.Context, webhook domain.MerchantWebhook, payload domain.WebhookPayload) {
	taskCtx := context.WithoutCancel(ctx)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				s.log.Error().
					Interface("panic", r).
					Str("merchant_id", webhook.MerchantID).
					Str("transaction_id", payload.TransactionID).
					Msg("webhook notification panicked")
			}
		}()
		s.coordinator.NotifyWithRetry(taskCtx, webhook, payload)
	}()
}
