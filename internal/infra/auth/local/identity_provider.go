// Package local implements the identity provider on the service's own
// database. It verifies credentials but issues no tokens.
package local

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"usersvc/config"
	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/service"
	"usersvc/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// resetCodeBytes is the entropy of an emailed reset code.
const resetCodeBytes = 6

type identityProvider struct {
	repo      repository.UserRepository
	hasher    service.PasswordHasher
	sender    service.EmailSender
	minLength int
	codeTTL   time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// Params holds dependencies for the local identity provider, injected by Fx.
type Params struct {
	fx.In

	Repo   repository.UserRepository
	Hasher service.PasswordHasher
	Sender service.EmailSender
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityProvider creates the database-backed identity provider.
func NewIdentityProvider(params Params) service.IdentityProvider {
	return &identityProvider{
		repo:      params.Repo,
		hasher:    params.Hasher,
		sender:    params.Sender,
		minLength: params.Config.PasswordStrength.MinLength,
		codeTTL:   params.Config.PasswordReset.CodeTTL,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (p *identityProvider) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// Register stores the credential for email. The profile itself is written by
// the caller, so the subject is empty and a retried registration overwrites
// the credential left by an earlier partial attempt.
func (p *identityProvider) Register(ctx context.Context, email entity.Email, password, _ string, _ entity.Role) (string, error) {
	existing, err := p.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return "", errors.Wrap(err, "failed to look up profile")
	}
	if existing != nil {
		return "", domainerrors.ErrUserAlreadyExists
	}

	if len(password) < p.minLength {
		return "", domainerrors.ErrWeakPassword
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	if err := p.repo.SetPasswordHash(ctx, email, hash); err != nil {
		return "", errors.Wrap(err, "failed to store credential")
	}

	return "", nil
}

// Authenticate checks the stored hash of an active profile. It never mints
// tokens, so a success carries an empty token bundle.
func (p *identityProvider) Authenticate(ctx context.Context, email entity.Email, password string) (*entity.AuthResult, error) {
	user, err := p.repo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up profile")
	}
	if !user.IsActive {
		return nil, nil
	}

	hash, err := p.repo.GetPasswordHash(ctx, email)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load credential")
	}

	if !p.hasher.Verify(password, hash) {
		return nil, nil
	}

	return &entity.AuthResult{}, nil
}

// InitiateForgotPassword stores a short-lived reset code and emails it. An
// unknown email is silently ignored.
func (p *identityProvider) InitiateForgotPassword(ctx context.Context, email entity.Email) error {
	code, err := util.RandomURLToken(resetCodeBytes)
	if err != nil {
		return err
	}

	stored, err := p.repo.SetPasswordResetToken(ctx, email, code, p.now().Add(p.codeTTL))
	if err != nil {
		return errors.Wrap(err, "failed to store reset code")
	}
	if !stored {
		p.log(ctx).Debug("Password reset requested for unknown email")

		return nil
	}

	body := fmt.Sprintf("<p>Your code: <strong>%s</strong></p><p>It expires in %s.</p>",
		html.EscapeString(code), util.FormatDuration(p.codeTTL))

	if err := p.sender.Send(ctx, email.String(), "Password reset code", body); err != nil {
		return errors.Wrap(err, "failed to send reset code")
	}

	return nil
}

func (p *identityProvider) ConfirmForgotPassword(ctx context.Context, email entity.Email, code, newPassword string) (bool, error) {
	if code == "" || len(newPassword) < p.minLength {
		return false, nil
	}

	hash, err := p.hasher.Hash(newPassword)
	if err != nil {
		return false, errors.Wrap(err, "failed to hash password")
	}

	ok, err := p.repo.ResetPasswordByToken(ctx, email, code, hash)
	if err != nil {
		return false, errors.Wrap(err, "failed to reset password")
	}

	return ok, nil
}

// EnableUser is a no-op: the profile's active flag is the only gate.
func (p *identityProvider) EnableUser(context.Context, entity.Email) error {
	return nil
}

// DisableUser is a no-op: the profile's active flag is the only gate.
func (p *identityProvider) DisableUser(context.Context, entity.Email) error {
	return nil
}
