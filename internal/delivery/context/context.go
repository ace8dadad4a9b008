// Package context carries request-scoped values between the HTTP layer and
// the services: request id, child logger and the authenticated caller.
package context

import (
	"context"
	"log/slog"

	"usersvc/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	keyRequestID ctxKey = iota
	keyLogger
	keyPrincipal
)

// echoRequestIDKey is the echo.Context store key for the request id.
const echoRequestIDKey = "request_id"

// HeaderXRequestID is read from the client and echoed on every response.
const HeaderXRequestID = "X-Request-Id"

// GetRequestID returns the id stored by the request-id middleware, or a fresh
// one when the middleware did not run (tests, error paths before routing).
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetLogger returns nil when no request logger is attached.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(keyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault prefers the request logger, which carries request_id.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// WithPrincipal attaches the caller resolved from the bearer token.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, keyPrincipal, principal)
}

// GetPrincipal returns nil for anonymous requests.
func GetPrincipal(ctx context.Context) *entity.Principal {
	principal, _ := ctx.Value(keyPrincipal).(*entity.Principal)

	return principal
}

// CurrentUserID returns the caller's subject, or false when unauthenticated.
func CurrentUserID(ctx context.Context) (string, bool) {
	principal := GetPrincipal(ctx)
	if principal == nil || principal.Subject == "" {
		return "", false
	}

	return principal.Subject, true
}
