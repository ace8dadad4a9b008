// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"usersvc/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	FullName string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput carries a reset code. The email travels out of band
// because the code alone does not identify the account.
type ResetPasswordInput struct {
	Email       string
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the identifier of the new profile.
type RegisterOutput struct {
	ID uuid.UUID
}

// LoginOutput returns the provider's tokens with the local profile. Profile
// is nil when the two stores disagree.
type LoginOutput struct {
	Tokens  *entity.AuthResult
	Profile *entity.User
}

// UserUsecase defines the user management operations exposed over HTTP.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ForgotPassword fails only for a blank or malformed email; every other
	// outcome is reported as success.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	Activate(ctx context.Context, token string) error

	// GetUser is self-only: the caller's subject must equal id.
	GetUser(ctx context.Context, caller *entity.Principal, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context, caller *entity.Principal, query entity.PageQuery) (*entity.Page[entity.User], error)
	Deactivate(ctx context.Context, caller *entity.Principal, id uuid.UUID) error
}
