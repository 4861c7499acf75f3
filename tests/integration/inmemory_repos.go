package integration

import (
	"context"
	"sync"

	"payment-webhook-notifier/internal/core/domain"
)

// --- In-Memory Merchant Repo ---

type inMemoryMerchantRepo struct {
	mu        sync.RWMutex
	merchants map[string]*domain.Merchant
}

func newInMemoryMerchantRepo() *inMemoryMerchantRepo {
	return &inMemoryMerchantRepo{merchants: make(map[string]*domain.Merchant)}
}

func (r *inMemoryMerchantRepo) put(m *domain.Merchant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.merchants[m.ID] = m
}

func (r *inMemoryMerchantRepo) GetByID(ctx context.Context, id string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.merchants[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

// --- In-Memory Webhook Repo ---

type inMemoryWebhookRepo struct {
	mu       sync.RWMutex
	webhooks map[string]*domain.MerchantWebhook // keyed by merchant id
}

func newInMemoryWebhookRepo() *inMemoryWebhookRepo {
	return &inMemoryWebhookRepo{webhooks: make(map[string]*domain.MerchantWebhook)}
}

func (r *inMemoryWebhookRepo) put(w *domain.MerchantWebhook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.webhooks[w.MerchantID] = w
}

func (r *inMemoryWebhookRepo) GetByMerchantID(ctx context.Context, merchantID string) (*domain.MerchantWebhook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.webhooks[merchantID]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}
