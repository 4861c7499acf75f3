package domain

import (
	"strconv"
	"strings"
	"time"
)

// PaymentEvent is an inbound payment-provider notification after parsing.
type PaymentEvent struct {
	MerchantID  string
	Transaction EventTransaction
}

// EventTransaction carries the transaction fields of a PaymentEvent.
type EventTransaction struct {
	ID       string
	Type     string
	Status   string
	AmountIn *EventAmount // nil when the provider sent no amount_in
}

// EventAmount is the inbound amount sub-object. Either field may be absent.
type EventAmount struct {
	Amount *string
	Asset  *string
}

// NewEventAmount returns an EventAmount with both fields set.
func NewEventAmount(amount, asset string) *EventAmount {
	return &EventAmount{Amount: &amount, Asset: &asset}
}

// NewWebhookPayload maps an event into the outbound payload stamped at now.
func NewWebhookPayload(event PaymentEvent, now time.Time) WebhookPayload {
	p := WebhookPayload{
		TransactionID:   event.Transaction.ID,
		TransactionType: event.Transaction.Type,
		Status:          event.Transaction.Status,
		MerchantID:      event.MerchantID,
		EventType:       EventType(event.Transaction.Type, event.Transaction.Status),
		ReqMethod:       WebhookMethod,
	}
	if a := event.Transaction.AmountIn; a != nil {
		p.Amount = copyString(a.Amount)
		p.Asset = copyString(a.Asset)
	}
	return p.WithTimestamp(now)
}

// DedupKey identifies an event for inbound de-duplication. Each part is
// length-prefixed so separators inside ids cannot make two events collide.
func (e PaymentEvent) DedupKey() string {
	var b strings.Builder
	for i, part := range []string{e.MerchantID, e.Transaction.ID, e.Transaction.Status} {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.Itoa(len(part)))
		b.WriteByte(':')
		b.WriteString(part)
	}
	return b.String()
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
