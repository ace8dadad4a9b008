package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	mockSvc "usersvc/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newAuthEcho(t *testing.T, verifier *mockSvc.MockTokenVerifier, mws ...echo.MiddlewareFunc) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.GET("/me", func(c echo.Context) error {
		id, _ := deliverycontext.CurrentUserID(c.Request().Context())

		return c.String(http.StatusOK, id)
	}, mws...)

	return e
}

func TestAuthenticate(t *testing.T) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{Verifier: verifier, Logger: newDiscardLogger()})
	e := newAuthEcho(t, verifier, m.Authenticate)

	verifier.EXPECT().Verify(mock.Anything, "good").Return(&entity.Principal{Subject: "sub-1"}, nil)
	verifier.EXPECT().Verify(mock.Anything, "bad").Return(nil, errors.New("signature"))

	tests := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{name: "missing", header: "", code: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic Zm9vOmJhcg==", code: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", code: http.StatusUnauthorized},
		{name: "rejected", header: "Bearer bad", code: http.StatusUnauthorized},
		{name: "valid", header: "Bearer good", code: http.StatusOK, body: "sub-1"},
		{name: "lowercase scheme", header: "bearer good", code: http.StatusOK, body: "sub-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{Verifier: verifier, Logger: newDiscardLogger()})
	e := newAuthEcho(t, verifier, m.Authenticate, m.RequireRole(entity.RoleAdmin))

	verifier.EXPECT().Verify(mock.Anything, "admin").
		Return(&entity.Principal{Subject: "a", Roles: entity.Roles{entity.RoleAdmin}}, nil)
	verifier.EXPECT().Verify(mock.Anything, "user").
		Return(&entity.Principal{Subject: "u", Roles: entity.Roles{entity.RoleUser}}, nil)

	for token, code := range map[string]int{"admin": http.StatusOK, "user": http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, code, rec.Code, token)
	}
}

func TestRequireRole_WithoutAuthenticate(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{Logger: newDiscardLogger()})
	e := newAuthEcho(t, nil, m.RequireRole(entity.RoleAdmin))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
