package middleware

import (
	"log/slog"

	"inventory/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// healthPath is kept out of the access log.
const healthPath = "/health"

// LoggerMiddleware writes one access log line per request.
type LoggerMiddleware struct {
	handler echo.MiddlewareFunc
}

// NewLoggerMiddleware creates a new logger middleware.
// Debug mode adds the user agent and the request headers to each line.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	debug := config.Env.Debug

	return &LoggerMiddleware{
		handler: slogecho.NewWithConfig(logger, slogecho.Config{
			DefaultLevel:      slog.LevelInfo,
			ClientErrorLevel:  slog.LevelWarn,
			ServerErrorLevel:  slog.LevelError,
			WithRequestID:     true,
			WithUserAgent:     debug,
			WithRequestHeader: debug,
			Filters: []slogecho.Filter{
				slogecho.IgnorePath(healthPath),
			},
		}),
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handler(next)
}
