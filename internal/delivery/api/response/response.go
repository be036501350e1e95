package response

import (
	"net/http"

	deliverycontext "inventory/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every JSON response. Status is false exactly when the request failed.
type Envelope struct {
	Status  bool       `json:"status"`
	Message string     `json:"message,omitempty"`
	Data    any        `json:"data,omitempty"`
	Total   *int64     `json:"total,omitempty"`
	Records any        `json:"records,omitempty"`
	User    any        `json:"user,omitempty"`
	Token   string     `json:"token,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// JSON writes a successful envelope; Status and Meta are filled in.
func JSON(c echo.Context, statusCode int, body Envelope) error {
	body.Status = true
	body.Meta = meta(c)

	return c.JSON(statusCode, body)
}

// Success returns a successful response carrying data
func Success(c echo.Context, statusCode int, data any) error {
	return JSON(c, statusCode, Envelope{Data: data})
}

// Message returns a successful response carrying only a message
func Message(c echo.Context, statusCode int, message string) error {
	return JSON(c, statusCode, Envelope{Message: message})
}

// Total returns the result of a count endpoint
func Total(c echo.Context, total int64) error {
	return JSON(c, http.StatusOK, Envelope{Total: &total})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, Envelope{
		Status:  false,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
