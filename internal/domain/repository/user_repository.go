// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"usersvc/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no profile matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrCredentialNotFound is returned when no local credential exists for an email.
	ErrCredentialNotFound = errors.New("credential not found")
)

// UserRepository is the persistence gateway for profiles and, for the local
// identity provider, the credential record keyed by the same email.
//
// Token-consuming operations evaluate the expiry predicate in the same
// statement that clears the token, so each token authorizes at most one
// state change.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email entity.Email) (*entity.User, error)

	// GetPaged expects an already normalized query.
	GetPaged(ctx context.Context, query entity.PageQuery) (*entity.Page[entity.User], error)

	// Add inserts the profile, generating an ID when user.ID is nil.
	Add(ctx context.Context, user *entity.User) (uuid.UUID, error)

	// SetActivationToken stores a pending activation and marks the profile inactive.
	SetActivationToken(ctx context.Context, email entity.Email, token string, expiresAt time.Time) error

	// GetByActivationToken finds the profile owning an unexpired activation token.
	GetByActivationToken(ctx context.Context, token string) (*entity.User, error)

	// ActivateByToken activates and clears the token in one conditional update.
	// It reports false when the token is unknown, expired or already consumed.
	ActivateByToken(ctx context.Context, token string) (bool, error)

	// Deactivate marks the profile inactive and drops any pending activation.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Local credential record.
	SetPasswordHash(ctx context.Context, email entity.Email, hash string) error
	GetPasswordHash(ctx context.Context, email entity.Email) (string, error)

	// SetPasswordResetToken reports false when no credential exists for email.
	SetPasswordResetToken(ctx context.Context, email entity.Email, token string, expiresAt time.Time) (bool, error)

	// ResetPasswordByToken replaces the hash and clears the token in one
	// conditional update matching email, token and expiry.
	ResetPasswordByToken(ctx context.Context, email entity.Email, token, newHash string) (bool, error)
}
