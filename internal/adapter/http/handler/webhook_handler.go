package handler

import (
	"errors"
	"net/http"

	"payment-webhook-notifier/internal/adapter/http/dto"
	"payment-webhook-notifier/internal/core/ports"
	"payment-webhook-notifier/pkg/apperror"
	"payment-webhook-notifier/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	msgProcessed = "Webhook processed successfully"
	msgDuplicate = "Webhook already accepted"
)

// WebhookHandler handles the payment provider event feed.
type WebhookHandler struct {
	dispatcher ports.EventDispatcher
	log        zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(dispatcher ports.EventDispatcher, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher, log: log}
}

// HandleEvent handles POST /api/v1/webhooks/events.
// A 200 means the notification was accepted; delivery happens in the background.
func (h *WebhookHandler) HandleEvent(c *gin.Context) {
	var req dto.InboundEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrPayloadTooLarge())
			return
		}
		response.Error(c, apperror.InvalidPayload("Invalid event payload"))
		return
	}

	event := req.ToDomain()
	result, err := h.dispatcher.Dispatch(c.Request.Context(), event)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Error().Err(err).
				Str("merchant_id", event.MerchantID).
				Str("transaction_id", event.Transaction.ID).
				Msg("event dispatch failed")
		}
		response.Error(c, err)
		return
	}

	if result != nil && result.Duplicate {
		response.OK(c, msgDuplicate)
		return
	}
	response.OK(c, msgProcessed)
}
