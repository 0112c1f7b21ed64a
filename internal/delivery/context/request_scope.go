// Package context carries request-scoped values between the HTTP layer and the services:
// the request id, the authenticated owner and a logger already tagged with both.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type scopeKey int

const (
	requestIDKey scopeKey = iota
	ownerIDKey
	loggerKey
)

// Echo store keys. They mirror the context.Context values so handlers and middleware can
// read them without unwrapping the request.
const (
	echoRequestIDKey = "request_id"
	echoOwnerIDKey   = "owner_id"
)

// HeaderXRequestID is echoed back on every response.
const HeaderXRequestID = "X-Request-Id"

// SetRequestID records requestID on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the id recorded on c, or a fresh one when none was set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// WithRequestID returns ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request id carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// SetOwnerID records the authenticated owner on c and on its request context. The
// request logger, if any, gains an owner_id attribute so service logs carry it.
func SetOwnerID(c echo.Context, ownerID uuid.UUID) {
	c.Set(echoOwnerIDKey, ownerID)

	ctx := WithOwnerID(c.Request().Context(), ownerID)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("owner_id", ownerID.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetOwnerID returns the owner recorded on c. It reports false for unauthenticated routes.
func GetOwnerID(c echo.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get(echoOwnerIDKey).(uuid.UUID)
	if !ok || ownerID == uuid.Nil {
		return uuid.Nil, false
	}

	return ownerID, true
}

// WithOwnerID returns ctx carrying ownerID.
func WithOwnerID(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerIDKey, ownerID)
}

// GetOwnerIDFromContext returns the owner carried by ctx.
func GetOwnerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	ownerID, ok := ctx.Value(ownerIDKey).(uuid.UUID)

	return ownerID, ok && ownerID != uuid.Nil
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
