package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"usersvc/config"
	"usersvc/internal/delivery/api/middleware"
	"usersvc/internal/delivery/api/router"
	"usersvc/internal/delivery/api/router/handler"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	mockSvc "usersvc/internal/mocks/service"
	mockUC "usersvc/internal/mocks/usecase"
	"usersvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type serverFixtures struct {
	echo     *echo.Echo
	userUC   *mockUC.MockUserUsecase
	verifier *mockSvc.MockTokenVerifier
}

func createTestServer(t *testing.T) serverFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()

	userUC := mockUC.NewMockUserUsecase(t)
	verifier := mockSvc.NewMockTokenVerifier(t)
	logger := newDiscardLogger()

	e := NewEcho(cfg, logger, router.RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			Verifier: verifier,
			Logger:   logger,
		}),
		RateLimiter: middleware.NewRateLimiter(cfg),
	})

	return serverFixtures{echo: e, userUC: userUC, verifier: verifier}
}

func (f serverFixtures) do(t *testing.T, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func bearer(token string) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}

func TestHealth(t *testing.T) {
	f := createTestServer(t)

	rec, env := f.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRegister_Created(t *testing.T) {
	f := createTestServer(t)
	id := uuid.New()

	f.userUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Email: "jane@example.com", FullName: "Jane", Password: "Password123"}).
		Return(&usecase.RegisterOutput{ID: id}, nil)

	rec, env := f.do(t, http.MethodPost, "/users/register",
		`{"email":"jane@example.com","fullName":"Jane","password":"Password123"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"`+id.String()+`"}`, string(env.Data))
}

func TestRegister_ValidationAndConflict(t *testing.T) {
	f := createTestServer(t)

	rec, env := f.do(t, http.MethodPost, "/users/register", `{"fullName":"Jane"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "email is required")

	rec, env = f.do(t, http.MethodPost, "/users/register", `{"email":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)

	f.userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)
	rec, env = f.do(t, http.MethodPost, "/users/register", `{"email":"a@b.co","password":"Password123"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
}

func TestRegister_ProviderFailureHidesDetails(t *testing.T) {
	f := createTestServer(t)

	f.userUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrIdentityProviderFailed.WrapMessage("register: dial tcp 10.0.0.1:443"))

	rec, env := f.do(t, http.MethodPost, "/users/register", `{"email":"a@b.co","password":"Password123"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "IDENTITY_PROVIDER_FAILED", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.1")
}

func TestLogin(t *testing.T) {
	f := createTestServer(t)
	profile := &entity.User{ID: uuid.New(), Email: entity.RestoreEmail("jane@example.com"), FullName: "Jane", Role: entity.RoleUser, IsActive: true}

	f.userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "jane@example.com", Password: "Password123"}).
		Return(&usecase.LoginOutput{Tokens: &entity.AuthResult{AccessToken: "at", ExpiresIn: 3600}, Profile: profile}, nil)

	rec, env := f.do(t, http.MethodPost, "/users/login", `{"email":"jane@example.com","password":"Password123"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "at", body.Tokens.AccessToken)
	assert.Equal(t, profile.ID, body.Profile.ID)
	assert.True(t, body.Profile.IsActive)
}

func TestLogin_NullProfileAndRejected(t *testing.T) {
	f := createTestServer(t)

	f.userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@b.co", Password: "x"}).
		Return(&usecase.LoginOutput{Tokens: &entity.AuthResult{}}, nil)
	f.userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@b.co", Password: "bad"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec, env := f.do(t, http.MethodPost, "/users/login", `{"email":"a@b.co","password":"x"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"profile":null`)

	rec, env = f.do(t, http.MethodPost, "/users/login", `{"email":"a@b.co","password":"bad"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestForgotPassword(t *testing.T) {
	f := createTestServer(t)

	f.userUC.EXPECT().ForgotPassword(mock.Anything, "ghost@example.com").Return(nil)
	f.userUC.EXPECT().ForgotPassword(mock.Anything, "").Return(domainerrors.ErrEmailRequired)

	rec, _ := f.do(t, http.MethodPost, "/users/forgot-password", `{"email":"ghost@example.com"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := f.do(t, http.MethodPost, "/users/forgot-password", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMAIL_REQUIRED", env.Error.Code)
}

func TestResetPassword_EmailSources(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		body    string
		headers map[string]string
		want    string
	}{
		{name: "query", target: "/users/reset-password?email=q@example.com", body: `{"token":"t","newPassword":"NewPassword1","email":"b@example.com"}`, want: "q@example.com"},
		{name: "header", target: "/users/reset-password", body: `{"token":"t","newPassword":"NewPassword1"}`, headers: map[string]string{handler.HeaderResetEmail: "h@example.com"}, want: "h@example.com"},
		{name: "body", target: "/users/reset-password", body: `{"token":"t","newPassword":"NewPassword1","email":"b@example.com"}`, want: "b@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestServer(t)

			f.userUC.EXPECT().
				ResetPassword(mock.Anything, &usecase.ResetPasswordInput{Email: tt.want, Token: "t", NewPassword: "NewPassword1"}).
				Return(nil)

			rec, _ := f.do(t, http.MethodPost, tt.target, tt.body, tt.headers)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestActivate_QueryAndBody(t *testing.T) {
	f := createTestServer(t)

	f.userUC.EXPECT().Activate(mock.Anything, "from-query").Return(nil)
	f.userUC.EXPECT().Activate(mock.Anything, "from-body").Return(nil)
	f.userUC.EXPECT().Activate(mock.Anything, "").Return(domainerrors.ErrTokenRequired)

	rec, _ := f.do(t, http.MethodPost, "/users/activate?token=from-query", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = f.do(t, http.MethodPost, "/users/activate", `{"token":"from-body"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := f.do(t, http.MethodPost, "/users/activate", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "TOKEN_REQUIRED", env.Error.Code)
}

func TestGetUser_Auth(t *testing.T) {
	f := createTestServer(t)
	id := uuid.New()
	principal := &entity.Principal{Subject: id.String(), Roles: entity.Roles{entity.RoleUser}}

	f.verifier.EXPECT().Verify(mock.Anything, "good").Return(principal, nil)
	f.verifier.EXPECT().Verify(mock.Anything, "bad").Return(nil, errors.New("expired"))
	f.userUC.EXPECT().GetUser(mock.Anything, principal, id).
		Return(&entity.User{ID: id, Email: entity.RestoreEmail("jane@example.com"), Role: entity.RoleUser, CreatedAt: time.Now()}, nil)

	rec, _ := f.do(t, http.MethodGet, "/users/"+id.String(), "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/users/"+id.String(), "", bearer("bad"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env := f.do(t, http.MethodGet, "/users/"+id.String(), "", bearer("good"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"email":"jane@example.com"`)

	rec, env = f.do(t, http.MethodGet, "/users/not-a-uuid", "", bearer("good"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestListUsers_RequiresAdmin(t *testing.T) {
	f := createTestServer(t)
	admin := &entity.Principal{Subject: uuid.NewString(), Roles: entity.Roles{entity.RoleAdmin}}
	user := &entity.Principal{Subject: uuid.NewString(), Roles: entity.Roles{entity.RoleUser}}

	f.verifier.EXPECT().Verify(mock.Anything, "admin").Return(admin, nil)
	f.verifier.EXPECT().Verify(mock.Anything, "user").Return(user, nil)
	f.userUC.EXPECT().
		ListUsers(mock.Anything, admin, entity.PageQuery{Page: 2, PageSize: 0, NameFilter: "Jo", EmailFilter: "@ex"}).
		Return(&entity.Page[entity.User]{
			Items:      []entity.User{{ID: uuid.New(), FullName: "Jo"}},
			TotalCount: 21,
			Page:       2,
			PageSize:   20,
		}, nil)

	rec, env := f.do(t, http.MethodGet, "/users?page=2&pageSize=abc&name=Jo&email=@ex", "", bearer("admin"))
	require.Equal(t, http.StatusOK, rec.Code)

	var page handler.UserPageResponse
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 1)
	assert.EqualValues(t, 21, page.TotalCount)

	rec, env = f.do(t, http.MethodGet, "/users", "", bearer("user"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestDeactivate(t *testing.T) {
	f := createTestServer(t)
	admin := &entity.Principal{Subject: uuid.NewString(), Roles: entity.Roles{entity.RoleAdmin}}
	id := uuid.New()

	f.verifier.EXPECT().Verify(mock.Anything, "admin").Return(admin, nil)
	f.userUC.EXPECT().Deactivate(mock.Anything, admin, id).Return(nil)

	rec, _ := f.do(t, http.MethodPost, "/users/"+id.String()+"/deactivate", "", bearer("admin"))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	f := createTestServer(t)

	rec, env := f.do(t, http.MethodGet, "/nowhere", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
