package dto

import "payment-webhook-notifier/internal/core/domain"

// InboundEventRequest is the payment provider's event envelope.
type InboundEventRequest struct {
	Payload EventPayload `json:"payload"`
}

// EventPayload wraps the customer and transaction of an event.
type EventPayload struct {
	Customer    EventCustomer    `json:"customer"`
	Transaction EventTransaction `json:"transaction"`
}

// EventCustomer identifies the merchant the event belongs to.
type EventCustomer struct {
	ID string `json:"id" binding:"required,max=64,safe_id"`
}

// EventTransaction is the transaction part of an inbound event.
type EventTransaction struct {
	ID       string          `json:"id" binding:"required,max=128,safe_id"`
	Type     string          `json:"type" binding:"required,max=64,safe_id"`
	Status   string          `json:"status" binding:"required,max=64,safe_id"`
	AmountIn *EventAmountDTO `json:"amount_in,omitempty"`
}

// EventAmountDTO is the optional amount_in sub-object.
type EventAmountDTO struct {
	Amount *string `json:"amount,omitempty" binding:"omitempty,max=64"`
	Asset  *string `json:"asset,omitempty" binding:"omitempty,max=128"`
}

// ToDomain converts the request into a domain.PaymentEvent.
func (r InboundEventRequest) ToDomain() domain.PaymentEvent {
	tx := r.Payload.Transaction
	event := domain.PaymentEvent{
		MerchantID: r.Payload.Customer.ID,
		Transaction: domain.EventTransaction{
			ID:     tx.ID,
			Type:   tx.Type,
			Status: tx.Status,
		},
	}
	if tx.AmountIn != nil {
		event.Transaction.AmountIn = &domain.EventAmount{
			Amount: tx.AmountIn.Amount,
			Asset:  tx.AmountIn.Asset,
		}
	}
	return event
}
