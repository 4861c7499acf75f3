package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Error codes exposed on the inbound API.
const (
	CodeMerchantNotFound  = "MERCHANT_NOT_FOUND"
	CodeWebhookNotFound   = "WEBHOOK_NOT_FOUND"
	CodeInvalidWebhookURL = "INVALID_WEBHOOK_URL"
	CodeInvalidPayload    = "INVALID_PAYLOAD"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInvalidSignature  = "INVALID_SIGNATURE"
	CodePayloadTooLarge   = "PAYLOAD_TOO_LARGE"
	CodeInternal          = "INTERNAL_ERROR"
)

// ---- Merchant preconditions ----

func ErrMerchantNotFound() *AppError {
	return New(CodeMerchantNotFound, "Merchant not found", http.StatusNotFound)
}

// ErrMerchantInactive shares the not-found code; only the message differs.
func ErrMerchantInactive() *AppError {
	return New(CodeMerchantNotFound, "Merchant not active", http.StatusNotFound)
}

// ---- Webhook preconditions ----

func ErrWebhookNotFound() *AppError {
	return New(CodeWebhookNotFound, "Webhook not found", http.StatusNotFound)
}

func ErrWebhookInactive() *AppError {
	return New(CodeWebhookNotFound, "Webhook not active", http.StatusNotFound)
}

func ErrInvalidWebhookURL() *AppError {
	return New(CodeInvalidWebhookURL, "Webhook URL is not valid", http.StatusUnprocessableEntity)
}

// ---- Request ----

// InvalidPayload reports an inbound body that could not be bound.
func InvalidPayload(message string) *AppError {
	return New(CodeInvalidPayload, message, http.StatusBadRequest)
}

func ErrUnauthorized() *AppError {
	return New(CodeUnauthorized, "Invalid or missing provider token", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New(CodeInvalidSignature, "Invalid provider signature", http.StatusUnauthorized)
}

func ErrPayloadTooLarge() *AppError {
	return New(CodePayloadTooLarge, "Request body too large", http.StatusRequestEntityTooLarge)
}

// ---- System ----

// InternalError wraps an internal error. The wrapped detail never reaches the client.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
