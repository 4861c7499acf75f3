package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"payment-webhook-notifier/internal/core/domain"
	"payment-webhook-notifier/internal/core/ports"
	"payment-webhook-notifier/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type retryFixture struct {
	secrets   *mocks.MockSecretResolver
	deliverer *mocks.MockWebhookDeliverer
	urls      *mocks.MockURLValidator
	observer  *mocks.MockDeliveryObserver
	sleeps    []time.Duration
	coord     *RetryCoordinator
}

func newRetryFixture(t *testing.T, policy RetryPolicy) *retryFixture {
	ctrl := gomock.NewController(t)
	f := &retryFixture{
		secrets:   mocks.NewMockSecretResolver(ctrl),
		deliverer: mocks.NewMockWebhookDeliverer(ctrl),
		urls:      mocks.NewMockURLValidator(ctrl),
		observer:  mocks.NewMockDeliveryObserver(ctrl),
	}
	f.coord = NewRetryCoordinator(f.secrets, f.deliverer, f.urls, f.observer, policy, newTestLogger())
	f.coord.sleep = func(d time.Duration) { f.sleeps = append(f.sleeps, d) }
	return f
}

func testWebhook() domain.MerchantWebhook {
	return domain.MerchantWebhook{
		ID:         "wh-1",
		MerchantID: "M1",
		URL:        "https://merchant.example.com/webhook",
		IsActive:   true,
	}
}

func TestRetryCoordinator_FirstAttemptSucceeds(t *testing.T) {
	f := newRetryFixture(t, RetryPolicy{MaxRetries: 3, Delay: 3 * time.Second})
	wh := testWebhook()

	f.secrets.EXPECT().ResolveSecret(gomock.Any(), "M1").Return("secret", nil).Times(1)
	f.urls.EXPECT().Valid(wh.URL).Return(true).Times(1)
	f.deliverer.EXPECT().Deliver(gomock.Any(), wh.URL, gomock.Any(), "secret").Return(true).Times(1)
	f.observer.EXPECT().ObserveNotification(ports.OutcomeDelivered).Times(1)

	f.coord.NotifyWithRetry(context.Background(), wh, testPayload())

	assert.Empty(t, f.sleeps)
}

func TestRetryCoordinator_ExhaustsRetries(t *testing.T) {
	for _, maxRetries := range []int{1, 3, 5} {
		t.Run(fmt.Sprintf("max_retries=%d", maxRetries), func(t *testing.T) {
			f := newRetryFixture(t, RetryPolicy{MaxRetries: maxRetries, Delay: 3 * time.Second})
			wh := testWebhook()

			f.secrets.EXPECT().ResolveSecret(gomock.Any(), "M1").Return("secret", nil).Times(maxRetries)
			f.urls.EXPECT().Valid(wh.URL).Return(true).Times(maxRetries)
			f.deliverer.EXPECT().Deliver(gomock.Any(), wh.URL, gomock.Any(), "secret").Return(false).Times(maxRetries)
			f.observer.EXPECT().ObserveNotification(ports.OutcomeExhausted).Times(1)

			f.coord.NotifyWithRetry(context.Background(), wh, testPayload())

			require.Len(t, f.sleeps, maxRetries-1)
			for _, d := range f.sleeps {
				assert.Equal(t, 3*time.Second, d)
			}
		})
	}
}

func TestRetryCoordinator_SucceedsAfterFailures(t *testing.T) {
	f := newRetryFixture(t, RetryPolicy{MaxRetries: 3, Delay: time.Second})
	wh := testWebhook()

	f.secrets.EXPECT().ResolveSecret(gomock.Any(), "M1").Return("secret", nil).Times(2)
	f.urls.EXPECT().Valid(wh.URL).Return(true).Times(2)
	gomock.InOrder(
		f.deliverer.EXPECT().Deliver(gomock.Any(), wh.URL, gomock.Any(), "secret").Return(false),
		f.deliverer.EXPECT().Deliver(gomock.Any(), wh.URL, gomock.Any(), "secret").Return(true),
	)
	f.observer.EXPECT().ObserveNotification(ports.OutcomeDelivered).Times(1)

	f.coord.NotifyWithRetry(context.Background(), wh, testPayload())

	assert.Equal(t, []time.Duration{time.Second}, f.sleeps)
}

func TestRetryCoordinator_InactiveWebhookNeverDelivers(t *testing.T) {
	f := newRetryFixture(t, DefaultRetryPolicy())
	wh := testWebhook()
	wh.IsActive = false

	f.secrets.EXPECT().ResolveSecret(gomock.Any(), "M1").Return("secret", nil).Times(1)
	f.urls.EXPECT().Valid(gomock.Any()).Return(true).AnyTimes()
	f.deliverer.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.observer.EXPECT().ObserveNotification(ports.OutcomeAborted).Times(1)

	f.coord.NotifyWithRetry(context.Background(), wh, testPayload())

	assert.Empty(t, f.sleeps)
}

func TestRetryCoordinator_InvalidURLNeverDelivers(t *testing.T) {
	f := newRetryFixture(t, DefaultRetryPolicy())
	wh := testWebhook()
	wh.URL = "ftp://merchant.example.com"

	f.secrets.EXPECT().ResolveSecret(gomock.Any(), "M1").Return("secret", nil).Times(1)
	f.urls.EXPECT().Valid(wh.URL).Return(false).Times(1)
	f.deliverer.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.observer.EXPECT().ObserveNotification(ports.OutcomeAborted).Times(1)

	f.coord.NotifyWithRetry(context.Background(), wh, testPayload())

	assert.Empty(t, f.sleeps)
}

func TestRetryCoordinator_SecretUnavailableAborts(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		err    error
	}{
		{"resolver defect", "", fmt.Errorf("%w: merchant M1 not found", ErrSecretUnavailable)},
		{"empty secret without error", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRetryFixture(t, DefaultRetryPolicy())

			f.secrets.EXPECT().ResolveSecret(gomock.Any(), "M1").Return(tt.secret, tt.err).Times(1)
			f.deliverer.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			f.observer.EXPECT().ObserveNotification(ports.OutcomeAborted).Times(1)

			f.coord.NotifyWithRetry(context.Background(), testWebhook(), testPayload())

			assert.Empty(t, f.sleeps)
		})
	}
}

func TestRetryCoordinator_SecretLookupErrorIsRetried(t *testing.T) {
	f := newRetryFixture(t, RetryPolicy{MaxRetries: 3, Delay: 10 * time.Millisecond})
	wh := testWebhook()

	gomock.InOrder(
		f.secrets.EXPECT().ResolveSecret(gomock.Any(), "M1").Return("", errors.New("fetching merchant: db timeout")),
		f.secrets.EXPECT().ResolveSecret(gomock.Any(), "M1").Return("secret", nil),
	)
	f.urls.EXPECT().Valid(wh.URL).Return(true).Times(1)
	f.deliverer.EXPECT().Deliver(gomock.Any(), wh.URL, gomock.Any(), "secret").Return(true).Times(1)
	f.observer.EXPECT().ObserveNotification(ports.OutcomeDelivered).Times(1)

	f.coord.NotifyWithRetry(context.Background(), wh, testPayload())

	assert.Equal(t, []time.Duration{10 * time.Millisecond}, f.sleeps)
}

func TestRetryCoordinator_RefreshesTimestampPerAttempt(t *testing.T) {
	f := newRetryFixture(t, RetryPolicy{MaxRetries: 2, Delay: 0})
	wh := testWebhook()

	clock := []time.Time{
		mustParseTime(t, "2024-03-01T12:00:00Z"),
		mustParseTime(t, "2024-03-01T12:00:03Z"),
	}
	calls := 0
	f.coord.now = func() time.Time {
		ts := clock[calls]
		calls++
		return ts
	}

	var sent []domain.WebhookPayload
	f.secrets.EXPECT().ResolveSecret(gomock.Any(), "M1").Return("secret", nil).Times(2)
	f.urls.EXPECT().Valid(wh.URL).Return(true).Times(2)
	f.deliverer.EXPECT().Deliver(gomock.Any(), wh.URL, gomock.Any(), "secret").
		DoAndReturn(func(_ context.Context, _ string, p domain.WebhookPayload, _ string) bool {
			sent = append(sent, p)
			return false
		}).Times(2)
	f.observer.EXPECT().ObserveNotification(ports.OutcomeExhausted).Times(1)

	original := testPayload()
	f.coord.NotifyWithRetry(context.Background(), wh, original)

	require.Len(t, sent, 2)
	assert.Equal(t, "2024-03-01T12:00:00.000Z", sent[0].Timestamp)
	assert.Equal(t, "2024-03-01T12:00:03.000Z", sent[1].Timestamp)
	assert.Equal(t, "2024-03-01T12:30:45.123Z", original.Timestamp, "caller payload must not be mutated")

	sent[0].Timestamp = original.Timestamp
	assert.Equal(t, original, sent[0])
}

func TestNewRetryCoordinator_ClampsPolicy(t *testing.T) {
	c := NewRetryCoordinator(nil, nil, nil, nil, RetryPolicy{MaxRetries: 0, Delay: -time.Second}, newTestLogger())
	assert.Equal(t, 1, c.policy.MaxRetries)
	assert.Equal(t, time.Duration(0), c.policy.Delay)
}

func TestDefaultRetryPolicy(t *testing.T) {
	p := DefaultRetryPolicy()
	assert.Equal(t, 3, p.MaxRetries)
	assert.Equal(t, 3*time.Second, p.Delay)
}
