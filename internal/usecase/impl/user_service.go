// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"usersvc/config"
	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/service"
	"usersvc/internal/usecase"
	"usersvc/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	activationTokenBytes = 32
	activationSubject    = "Activate your account"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	identity  service.IdentityProvider
	sender    service.EmailSender
	events    service.EventPublisher

	minPasswordLength  int
	activationRequired bool
	activationTTL      time.Duration
	activationURL      string

	logger *slog.Logger
	now    func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Identity  service.IdentityProvider
	Sender    service.EmailSender
	Events    service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	cfg := params.Config

	return &userService{
		txManager:          params.TxManager,
		userRepo:           params.UserRepo,
		identity:           params.Identity,
		sender:             params.Sender,
		events:             params.Events,
		minPasswordLength:  cfg.PasswordStrength.MinLength,
		activationRequired: cfg.Activation.Required,
		activationTTL:      cfg.Activation.TokenTTL,
		activationURL:      cfg.Activation.ActivationBaseURL(),
		logger:             params.Logger,
		now:                time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the provider account first and the local profile second.
// A failure between the two is not compensated; it is logged for reconciliation.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email, err := entity.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if err := srv.checkPassword(input.Password); err != nil {
		return nil, err
	}
	fullName := strings.TrimSpace(input.FullName)

	existing, err := srv.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}
	if existing != nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	subject, err := srv.identity.Register(ctx, email, input.Password, fullName, entity.RoleUser)
	if err != nil {
		return nil, srv.providerError(ctx, "register", err)
	}

	user := entity.NewUser(email, fullName, entity.RoleUser, !srv.activationRequired)
	if id, parseErr := uuid.Parse(subject); parseErr == nil {
		user.ID = id
	}

	var token string
	var expiresAt time.Time
	if srv.activationRequired {
		token, err = util.RandomURLToken(activationTokenBytes)
		if err != nil {
			return nil, err
		}
		expiresAt = srv.now().Add(srv.activationTTL)
	}

	var userID uuid.UUID
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		id, err := userRepo.Add(ctx, user)
		if err != nil {
			return err
		}
		userID = id

		if token == "" {
			return nil
		}

		return userRepo.SetActivationToken(ctx, email, token, expiresAt)
	})
	if err != nil {
		srv.logReconciliation(ctx, "Profile creation failed after identity provider registration", email, subject, err)
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, err
		}

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage(err.Error())
	}

	if srv.activationRequired {
		srv.sendActivationEmail(ctx, email, fullName, token)
	} else if err := srv.identity.EnableUser(ctx, email); err != nil {
		srv.logReconciliation(ctx, "Identity provider enable failed after profile was stored active", email, subject, err)

		return nil, srv.providerError(ctx, "enable", err)
	}

	srv.publish(ctx, service.EventUserRegistered, userID, email)
	srv.log(ctx).Info("User registered", slog.String("user_id", userID.String()))

	return &usecase.RegisterOutput{ID: userID}, nil
}

// logReconciliation records a half-finished registration: the provider and the
// profile store disagree and an operator has to settle it.
func (srv *userService) logReconciliation(ctx context.Context, msg string, email entity.Email, subject string, err error) {
	srv.log(ctx).Error(msg+", reconciliation required",
		slog.String("email", email.String()),
		slog.String("subject", subject),
		slog.Any("error", err),
	)
}

func (srv *userService) sendActivationEmail(ctx context.Context, email entity.Email, fullName, token string) {
	link := buildActivationURL(srv.activationURL, token, email)
	body := fmt.Sprintf(
		`<p>Welcome %s,</p><p>Please activate your account by clicking the link below:</p>`+
			`<p><a href="%s">Activate account</a></p><p>This link expires in %s.</p>`,
		html.EscapeString(fullName), html.EscapeString(link), util.FormatDuration(srv.activationTTL),
	)

	if err := srv.sender.Send(ctx, email.String(), activationSubject, body); err != nil {
		srv.log(ctx).Warn("Failed to send activation email",
			slog.String("email", email.String()),
			slog.Any("error", err),
		)
	}
}

// buildActivationURL uses the first configured template. A {token}
// placeholder is substituted; otherwise token and email are appended as
// query parameters. Without a template the link is relative.
func buildActivationURL(template, token string, email entity.Email) string {
	escapedToken := url.QueryEscape(token)
	query := "token=" + escapedToken + "&email=" + url.QueryEscape(email.String())

	switch {
	case template == "":
		return "/activate?" + query
	case strings.Contains(template, "{token}"):
		return strings.ReplaceAll(template, "{token}", escapedToken)
	case strings.Contains(template, "?"):
		return template + "&" + query
	default:
		return template + "?" + query
	}
}

// Login never reveals whether the email exists.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email, err := entity.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password is required")
	}

	tokens, err := srv.identity.Authenticate(ctx, email, input.Password)
	if err != nil {
		return nil, srv.providerError(ctx, "authenticate", err)
	}
	if tokens == nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	profile, err := srv.userRepo.GetByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Authenticated user has no readable profile",
			slog.String("email", email.String()),
			slog.Any("error", err),
		)
		profile = nil
	}

	return &usecase.LoginOutput{Tokens: tokens, Profile: profile}, nil
}

// ForgotPassword swallows every provider outcome.
func (srv *userService) ForgotPassword(ctx context.Context, rawEmail string) error {
	email, err := entity.NewEmail(rawEmail)
	if err != nil {
		return err
	}

	if err := srv.identity.InitiateForgotPassword(ctx, email); err != nil {
		srv.log(ctx).Warn("Forgot password request failed", slog.Any("error", err))
	}

	return nil
}

func (srv *userService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if strings.TrimSpace(input.Token) == "" {
		return domainerrors.ErrTokenRequired
	}
	if err := srv.checkPassword(input.NewPassword); err != nil {
		return err
	}
	if strings.TrimSpace(input.Email) == "" {
		return domainerrors.ErrEmailRequired.WithDetails("email is required for password reset confirmation")
	}

	email, err := entity.NewEmail(input.Email)
	if err != nil {
		return err
	}

	ok, err := srv.identity.ConfirmForgotPassword(ctx, email, strings.TrimSpace(input.Token), input.NewPassword)
	if err != nil {
		return srv.providerError(ctx, "confirm forgot password", err)
	}
	if !ok {
		return domainerrors.ErrPasswordResetFailed
	}

	srv.publish(ctx, service.EventUserPasswordReset, uuid.Nil, email)

	return nil
}

// Activate enables the provider account before consuming the token, so a
// provider failure leaves the token usable for a retry.
func (srv *userService) Activate(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrTokenRequired
	}

	user, err := srv.userRepo.GetByActivationToken(ctx, token)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrInvalidOrExpiredToken
	}
	if err != nil {
		return errors.Wrap(err, "failed to find activation token")
	}

	if err := srv.identity.EnableUser(ctx, user.Email); err != nil {
		return srv.providerError(ctx, "enable", err)
	}

	ok, err := srv.userRepo.ActivateByToken(ctx, token)
	if err != nil {
		srv.log(ctx).Error("Failed to activate profile", slog.String("user_id", user.ID.String()), slog.Any("error", err))

		return domainerrors.ErrActivationFailed.WrapMessage(err.Error())
	}
	if !ok {
		return domainerrors.ErrActivationFailed.WithDetails("activation token was consumed concurrently or expired")
	}

	srv.publish(ctx, service.EventUserActivated, user.ID, user.Email)

	return nil
}

func (srv *userService) GetUser(ctx context.Context, caller *entity.Principal, id uuid.UUID) (*entity.User, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	callerID, err := uuid.Parse(caller.Subject)
	if err != nil || callerID != id {
		return nil, domainerrors.ErrForbidden
	}

	user, err := srv.userRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// ListUsers clamps paging instead of rejecting it.
func (srv *userService) ListUsers(ctx context.Context, caller *entity.Principal, query entity.PageQuery) (*entity.Page[entity.User], error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	page, err := srv.userRepo.GetPaged(ctx, query.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return page, nil
}

// Deactivate moves an account to Disabled. There is no way back.
func (srv *userService) Deactivate(ctx context.Context, caller *entity.Principal, id uuid.UUID) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	user, err := srv.userRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to get user")
	}

	if err := srv.identity.DisableUser(ctx, user.Email); err != nil {
		return srv.providerError(ctx, "disable", err)
	}

	if err := srv.userRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to deactivate user")
	}

	srv.publish(ctx, service.EventUserDeactivated, user.ID, user.Email)
	srv.log(ctx).Info("User deactivated", slog.String("user_id", id.String()))

	return nil
}

func (srv *userService) checkPassword(password string) error {
	if strings.TrimSpace(password) == "" || len(password) < srv.minPasswordLength {
		return domainerrors.ErrWeakPassword.WithDetails(
			fmt.Sprintf("password must be at least %d characters", srv.minPasswordLength))
	}

	return nil
}

// providerError passes client-class errors through and masks everything
// else as an identity provider failure.
func (srv *userService) providerError(ctx context.Context, op string, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		return err
	}

	srv.log(ctx).Error("Identity provider call failed", slog.String("op", op), slog.Any("error", err))

	return domainerrors.ErrIdentityProviderFailed.WrapMessage(op + ": " + err.Error())
}

// publish is best-effort; a failed publish never fails the request.
func (srv *userService) publish(ctx context.Context, eventType string, userID uuid.UUID, email entity.Email) {
	event := &service.UserEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		Email:      email.String(),
		OccurredAt: srv.now().UTC(),
	}
	if userID != uuid.Nil {
		event.UserID = userID.String()
	}

	if err := srv.events.PublishUserEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish user event",
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}

func requireAdmin(caller *entity.Principal) error {
	if caller == nil {
		return domainerrors.ErrUnauthorized
	}
	if !caller.HasRole(entity.RoleAdmin) {
		return domainerrors.ErrForbidden
	}

	return nil
}
