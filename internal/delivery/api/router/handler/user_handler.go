// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"usersvc/internal/delivery/api/middleware"
	"usersvc/internal/delivery/api/response"
	"usersvc/internal/domain/entity"
	"usersvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HeaderResetEmail carries the account email for reset confirmation when it is not in the query.
const HeaderResetEmail = "X-Reset-Email"

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	FullName string `json:"fullName" validate:"max=200"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest represents the request body for starting a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest represents the request body for confirming a password reset.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
	Email       string `json:"email"`
}

// ActivateRequest is the optional JSON form of the activation token.
type ActivateRequest struct {
	Token string `json:"token"`
}

// UserResponse is the public view of a profile.
type UserResponse struct {
	ID        uuid.UUID    `json:"id"`
	Email     entity.Email `json:"email"`
	FullName  string       `json:"fullName"`
	Role      entity.Role  `json:"role"`
	IsActive  bool         `json:"isActive"`
	CreatedAt time.Time    `json:"createdAt"`
}

// RegisterResponse is returned with 201 after registration.
type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}

// LoginResponse carries the provider tokens and the profile, which may be null.
type LoginResponse struct {
	Tokens  *entity.AuthResult `json:"tokens"`
	Profile *UserResponse      `json:"profile"`
}

// UserPageResponse is one page of profiles.
type UserPageResponse struct {
	Items      []UserResponse `json:"items"`
	TotalCount int64          `json:"totalCount"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// Register handles account registration.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{ID: output.ID})
}

// Login handles credential authentication.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Tokens:  output.Tokens,
		Profile: toUserResponse(output.Profile),
	})
}

// ForgotPassword always answers 200 for a well-formed email.
func (h *UserHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid forgot password input")
	}

	if err := h.userUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "If the account exists, a reset code has been sent")
}

// ResetPassword reads the email from the query string, then the X-Reset-Email header, then the body.
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid reset password input")
	}

	email := firstNonBlank(c.QueryParam("email"), c.Request().Header.Get(HeaderResetEmail), req.Email)

	err := h.userUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Email:       strings.TrimSpace(email),
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Password has been reset")
}

// Activate consumes the token from ?token= or a JSON body.
func (h *UserHandler) Activate(c echo.Context) error {
	token := c.QueryParam("token")
	if strings.TrimSpace(token) == "" && c.Request().ContentLength != 0 {
		var req ActivateRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "Invalid activation input")
		}
		token = req.Token
	}

	if err := h.userUC.Activate(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Account activated")
}

// GetUser returns the caller's own profile.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	principal, _ := middleware.GetPrincipal(c)
	user, err := h.userUC.GetUser(c.Request().Context(), principal, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// ListUsers returns one page of profiles for admins.
func (h *UserHandler) ListUsers(c echo.Context) error {
	query := entity.PageQuery{
		Page:        queryInt(c, "page"),
		PageSize:    queryInt(c, "pageSize"),
		NameFilter:  c.QueryParam("name"),
		EmailFilter: c.QueryParam("email"),
	}

	principal, _ := middleware.GetPrincipal(c)
	page, err := h.userUC.ListUsers(c.Request().Context(), principal, query)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]UserResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *toUserResponse(&page.Items[i]))
	}

	return response.Success(c, http.StatusOK, UserPageResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	})
}

// Deactivate disables an account for good.
func (h *UserHandler) Deactivate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	principal, _ := middleware.GetPrincipal(c)
	if err := h.userUC.Deactivate(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// queryInt treats a missing or non-numeric value as 0, which paging clamps.
func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return n
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
