// Package context carries request correlation data between delivery and the
// layers below it.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a caller may use to propagate its correlation id.
const HeaderXRequestID = "X-Request-Id"

// echoKeyRequestID stores the id on echo.Context for response envelopes.
const echoKeyRequestID = "request_id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// GetRequestID returns the id stored on c, or a fresh one when the request
// bypassed the request id middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the id on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestIDFromContext returns the id carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithLogAttrs returns ctx whose request logger also carries attrs.
func WithLogAttrs(ctx context.Context, fallback *slog.Logger, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}

	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}

	return WithLogger(ctx, GetLoggerOrDefault(ctx, fallback).With(args...))
}

// PromotionAttrs describes the promotion request on c: the matched route, the
// promotion id path parameter and the placement query when present.
func PromotionAttrs(c echo.Context) []slog.Attr {
	var attrs []slog.Attr
	if route := c.Path(); route != "" {
		attrs = append(attrs, slog.String("route", route))
	}
	if id := c.Param("id"); id != "" {
		attrs = append(attrs, slog.String("promotion_id", id))
	}
	if placement := c.QueryParam("placement"); placement != "" {
		attrs = append(attrs, slog.String("placement", placement))
	}

	return attrs
}
