package response

import (
	"errors"
	"net/http"

	"payment-webhook-notifier/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SuccessResponse is the envelope for accepted requests.
type SuccessResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// ErrorResponse is the envelope for rejected requests.
type ErrorResponse struct {
	Status    string `json:"status"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// OK sends a 200 success envelope with the given message.
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{
		Status:    StatusSuccess,
		Message:   message,
		RequestID: getRequestID(c),
	})
}

// Error sends an error envelope. An *apperror.AppError anywhere in the chain
// sets the status and code; anything else becomes a generic 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.InternalError(err)
	}

	c.JSON(appErr.HTTPStatus, ErrorResponse{
		Status:    StatusError,
		Code:      appErr.Code,
		Message:   appErr.Message,
		RequestID: getRequestID(c),
	})
}

// AbortWithError writes the error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
