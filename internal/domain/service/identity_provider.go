package service

import (
	"context"

	"usersvc/internal/domain/entity"
)

// IdentityProvider is the system of record for credentials. One variant is
// selected at startup and never switched at runtime.
type IdentityProvider interface {
	// Register creates the provider-side account, disabled until activation.
	// The returned subject is the provider's identifier for the account, or
	// empty when the provider does not assign one.
	Register(ctx context.Context, email entity.Email, password, fullName string, role entity.Role) (string, error)

	// Authenticate returns (nil, nil) for unknown email, wrong password,
	// inactive account or any other provider rejection.
	Authenticate(ctx context.Context, email entity.Email, password string) (*entity.AuthResult, error)

	// InitiateForgotPassword sends a reset code out of band. An unknown email is not an error.
	InitiateForgotPassword(ctx context.Context, email entity.Email) error

	// ConfirmForgotPassword reports false for a wrong, expired or consumed code.
	ConfirmForgotPassword(ctx context.Context, email entity.Email, code, newPassword string) (bool, error)

	EnableUser(ctx context.Context, email entity.Email) error
	DisableUser(ctx context.Context, email entity.Email) error
}
