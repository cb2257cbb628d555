package http

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CorrelationHeader carries the request correlation identifier. Incoming
// values are kept so callers can trace requests across services; a fresh
// one is generated when absent.
const CorrelationHeader = "X-Correlation-Id"

// CorrelationMiddleware tags every request and response with a correlation
// identifier.
func CorrelationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			correlationID := ctx.Request().Header.Get(CorrelationHeader)
			if correlationID == "" {
				correlationID = uuid.NewString()
			}

			ctx.Set(CorrelationHeader, correlationID)
			ctx.Response().Header().Set(CorrelationHeader, correlationID)
			return next(ctx)
		}
	}
}

// LoggingMiddleware logs every request with its correlation identifier,
// method, path, status and duration.
func LoggingMiddleware(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			correlationID, _ := ctx.Get(CorrelationHeader).(string)
			logger.InfoContext(ctx.Request().Context(), "request handled",
				"correlationId", correlationID,
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"status", ctx.Response().Status,
				"duration", time.Since(start),
			)

			return err
		}
	}
}
