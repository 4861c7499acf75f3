package domain

import (
	"encoding/json"
	"time"
)

// WebhookMethod is the HTTP method used for every outbound delivery.
const WebhookMethod = "POST"

// TimestampLayout renders payload timestamps as UTC ISO-8601 with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// MerchantWebhook is the delivery target configured by a merchant.
type MerchantWebhook struct {
	ID         string    `json:"id"`
	MerchantID string    `json:"merchant_id"`
	URL        string    `json:"url"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WebhookPayload is the JSON body POSTed to merchant endpoints.
// Field order is part of the wire contract: the signature covers these bytes.
type WebhookPayload struct {
	TransactionID   string  `json:"transactionId"`
	TransactionType string  `json:"transactionType"`
	Status          string  `json:"status"`
	Amount          *string `json:"amount,omitempty"`
	Asset           *string `json:"asset,omitempty"`
	MerchantID      string  `json:"merchantId"`
	Timestamp       string  `json:"timestamp"`
	EventType       string  `json:"eventType"`
	ReqMethod       string  `json:"reqMethod"`
}

// WithTimestamp returns a copy of the payload stamped with t.
func (p WebhookPayload) WithTimestamp(t time.Time) WebhookPayload {
	p.Timestamp = FormatTimestamp(t)
	return p
}

// Marshal encodes the payload. Output is stable for equal payloads.
func (p WebhookPayload) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// EventType derives the "{transactionType}.{status}" event name.
func EventType(transactionType, status string) string {
	return transactionType + "." + status
}

// DeliveryAttempt describes one try inside a retry loop. It is never persisted.
type DeliveryAttempt struct {
	Ordinal int
	Success bool
	Err     error
}
