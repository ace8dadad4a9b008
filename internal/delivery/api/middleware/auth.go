package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.TokenVerifier
	Logger   *slog.Logger
}

// AuthMiddleware authenticates bearer tokens and enforces roles.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: params.Verifier,
		logger:   params.Logger,
	}
}

// Authenticate verifies the bearer token and stores the caller on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthorized
		}

		ctx := c.Request().Context()
		principal, err := m.verifier.Verify(ctx, strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil || principal == nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Bearer token rejected", slog.Any("error", err))

			return domainerrors.ErrUnauthorized
		}

		c.SetRequest(c.Request().WithContext(deliverycontext.WithPrincipal(ctx, principal)))

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c.Request().Context())
			if principal == nil {
				return domainerrors.ErrUnauthorized
			}
			if !principal.HasRole(role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetPrincipal returns the caller stored by Authenticate.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal := deliverycontext.GetPrincipal(c.Request().Context())

	return principal, principal != nil
}
