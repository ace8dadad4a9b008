// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"usersvc/internal/delivery/api/middleware"
	"usersvc/internal/delivery/api/router/handler"
	"usersvc/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	users := e.Group("/users")

	// Anonymous account flows, throttled per client IP
	limited := r.rateLimiter.Limit
	{
		users.POST("/register", r.userHandler.Register, limited)
		users.POST("/login", r.userHandler.Login, limited)
		users.POST("/forgot-password", r.userHandler.ForgotPassword, limited)
		users.POST("/reset-password", r.userHandler.ResetPassword, limited)
		users.POST("/activate", r.userHandler.Activate, limited)
	}

	// Per-route middleware: echo group middleware would also claim the
	// /users not-found routes.
	authenticated := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)
	{
		users.GET("/:id", r.userHandler.GetUser, authenticated)
		users.GET("", r.userHandler.ListUsers, authenticated, adminOnly)
		users.POST("/:id/deactivate", r.userHandler.Deactivate, authenticated, adminOnly)
	}
}
