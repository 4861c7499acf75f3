package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerchant_IsActive(t *testing.T) {
	tests := []struct {
		name   string
		status MerchantStatus
		want   bool
	}{
		{"active", MerchantStatusActive, true},
		{"suspended", MerchantStatusSuspended, false},
		{"deactivated", MerchantStatusDeactivated, false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Merchant{Status: tt.status}
			assert.Equal(t, tt.want, m.IsActive())
		})
	}
}

func TestNewWebhookPayload_Mapping(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 45, 123_000_000, time.UTC)
	event := PaymentEvent{
		MerchantID: "M1",
		Transaction: EventTransaction{
			ID:       "T1",
			Type:     "payment",
			Status:   "completed",
			AmountIn: NewEventAmount("10", "USDC"),
		},
	}

	p := NewWebhookPayload(event, now)

	assert.Equal(t, "T1", p.TransactionID)
	assert.Equal(t, "payment", p.TransactionType)
	assert.Equal(t, "completed", p.Status)
	assert.Equal(t, "payment.completed", p.EventType)
	require.NotNil(t, p.Amount)
	require.NotNil(t, p.Asset)
	assert.Equal(t, "10", *p.Amount)
	assert.Equal(t, "USDC", *p.Asset)
	assert.Equal(t, "M1", p.MerchantID)
	assert.Equal(t, "POST", p.ReqMethod)
	assert.Equal(t, "2024-03-01T12:30:45.123Z", p.Timestamp)
}

func TestNewWebhookPayload_PartialAmount(t *testing.T) {
	amount := "10"
	event := PaymentEvent{
		MerchantID: "M1",
		Transaction: EventTransaction{
			ID: "T3", Type: "payment", Status: "completed",
			AmountIn: &EventAmount{Amount: &amount},
		},
	}

	p := NewWebhookPayload(event, time.Now())

	require.NotNil(t, p.Amount)
	assert.Equal(t, "10", *p.Amount)
	assert.Nil(t, p.Asset)

	amount = "99"
	assert.Equal(t, "10", *p.Amount, "payload must not alias the event")

	body, err := p.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(body), "asset")
}

func TestNewWebhookPayload_WithoutAmount(t *testing.T) {
	event := PaymentEvent{
		MerchantID:  "M1",
		Transaction: EventTransaction{ID: "T2", Type: "withdrawal", Status: "pending"},
	}

	p := NewWebhookPayload(event, time.Now())

	assert.Nil(t, p.Amount)
	assert.Nil(t, p.Asset)
	assert.Equal(t, "withdrawal.pending", p.EventType)

	body, err := p.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(body), "amount")
	assert.NotContains(t, string(body), "asset")
}

func TestWebhookPayload_MarshalFieldOrder(t *testing.T) {
	amount, asset := "10", "USDC"
	p := WebhookPayload{
		TransactionID:   "T1",
		TransactionType: "payment",
		Status:          "completed",
		Amount:          &amount,
		Asset:           &asset,
		MerchantID:      "M1",
		Timestamp:       "2024-03-01T12:30:45.123Z",
		EventType:       "payment.completed",
		ReqMethod:       "POST",
	}

	body, err := p.Marshal()
	require.NoError(t, err)

	expected := `{"transactionId":"T1","transactionType":"payment","status":"completed","amount":"10","asset":"USDC","merchantId":"M1","timestamp":"2024-03-01T12:30:45.123Z","eventType":"payment.completed","reqMethod":"POST"}`
	assert.Equal(t, expected, string(body))
}

func TestWebhookPayload_WithTimestampCopies(t *testing.T) {
	original := WebhookPayload{TransactionID: "T1", Timestamp: "old"}
	later := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("UTC+2", 2*3600))

	stamped := original.WithTimestamp(later)

	assert.Equal(t, "old", original.Timestamp, "original must not be mutated")
	assert.Equal(t, "2025-01-02T01:04:05.000Z", stamped.Timestamp)
	assert.Equal(t, "T1", stamped.TransactionID)
}

func TestPaymentEvent_DedupKey(t *testing.T) {
	e := PaymentEvent{MerchantID: "M1", Transaction: EventTransaction{ID: "T1", Status: "completed"}}
	assert.Equal(t, "2:M1|2:T1|9:completed", e.DedupKey())

	e.Transaction.Status = "refunded"
	assert.Equal(t, "2:M1|2:T1|8:refunded", e.DedupKey())
}

func TestPaymentEvent_DedupKeySeparatorsInIDs(t *testing.T) {
	tests := []struct {
		name string
		a, b PaymentEvent
	}{
		{
			"merchant absorbs transaction",
			PaymentEvent{MerchantID: "M1:T1", Transaction: EventTransaction{ID: "completed", Status: "x"}},
			PaymentEvent{MerchantID: "M1", Transaction: EventTransaction{ID: "T1:completed", Status: "x"}},
		},
		{
			"transaction absorbs status",
			PaymentEvent{MerchantID: "M1", Transaction: EventTransaction{ID: "T1", Status: "a:b"}},
			PaymentEvent{MerchantID: "M1", Transaction: EventTransaction{ID: "T1:a", Status: "b"}},
		},
		{
			"length digits inside ids",
			PaymentEvent{MerchantID: "M1", Transaction: EventTransaction{ID: "T1|2:ab", Status: "c"}},
			PaymentEvent{MerchantID: "M1", Transaction: EventTransaction{ID: "T1", Status: "ab|1:c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, tt.a.DedupKey(), tt.b.DedupKey())
		})
	}
}
