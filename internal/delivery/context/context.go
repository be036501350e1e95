// Package context carries per-request values from the echo middleware chain down to the use cases,
// which only ever see a plain context.Context.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type key int

const (
	requestIDKey key = iota
	loggerKey
	actorKey
)

// HeaderXRequestID is read from the request and echoed back on the response.
const HeaderXRequestID = echo.HeaderXRequestID

// echoRequestIDKey stores the request ID on echo.Context for the response envelope.
const echoRequestIDKey = "request_id"

// SetRequestID stores the request ID on echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the request ID of c, falling back to the one on the request context.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID of ctx, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetActor records the email of the authenticated caller on the request context and
// adds it to the request-scoped logger.
func SetActor(c echo.Context, email string) {
	req := c.Request()
	ctx := context.WithValue(req.Context(), actorKey, email)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("actor", email)))
	}

	c.SetRequest(req.WithContext(ctx))
}

// GetActor returns the email of the authenticated caller, or "" for anonymous requests.
func GetActor(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey).(string)

	return actor
}
