package local

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"usersvc/config"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	mockRepo "usersvc/internal/mocks/repository"
	mockSvc "usersvc/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type providerFixtures struct {
	provider *identityProvider
	repo     *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	sender   *mockSvc.MockEmailSender
}

func createTestProvider(t *testing.T) providerFixtures {
	repo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	sender := mockSvc.NewMockEmailSender(t)

	cfg := &config.Config{}
	cfg.PasswordStrength.MinLength = 8
	cfg.PasswordReset.CodeTTL = time.Hour

	provider := NewIdentityProvider(Params{
		Repo:   repo,
		Hasher: hasher,
		Sender: sender,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*identityProvider)
	provider.now = func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) }

	return providerFixtures{provider: provider, repo: repo, hasher: hasher, sender: sender}
}

func testEmail(t *testing.T) entity.Email {
	t.Helper()

	email, err := entity.NewEmail("ann@example.com")
	require.NoError(t, err)

	return email
}

func TestRegister_StoresHashAndReturnsEmptySubject(t *testing.T) {
	fx := createTestProvider(t)
	ctx := context.Background()
	email := testEmail(t)

	fx.repo.EXPECT().GetByEmail(ctx, email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Passw0rd!").Return("hashed", nil)
	fx.repo.EXPECT().SetPasswordHash(ctx, email, "hashed").Return(nil)

	subject, err := fx.provider.Register(ctx, email, "Passw0rd!", "Ann", entity.RoleUser)

	require.NoError(t, err)
	assert.Empty(t, subject)
}

func TestRegister_ExistingProfile(t *testing.T) {
	fx := createTestProvider(t)
	ctx := context.Background()
	email := testEmail(t)

	fx.repo.EXPECT().GetByEmail(ctx, email).Return(&entity.User{Email: email}, nil)

	_, err := fx.provider.Register(ctx, email, "Passw0rd!", "Ann", entity.RoleUser)

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestRegister_WeakPassword(t *testing.T) {
	fx := createTestProvider(t)
	ctx := context.Background()
	email := testEmail(t)

	fx.repo.EXPECT().GetByEmail(ctx, email).Return(nil, repository.ErrUserNotFound)

	_, err := fx.provider.Register(ctx, email, "short", "Ann", entity.RoleUser)

	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
}

func TestRegister_LookupFailure(t *testing.T) {
	fx := createTestProvider(t)
	ctx := context.Background()
	email := testEmail(t)

	fx.repo.EXPECT().GetByEmail(ctx, email).Return(nil, errors.New("db down"))

	_, err := fx.provider.Register(ctx, email, "Passw0rd!", "Ann", entity.RoleUser)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestAuthenticate(t *testing.T) {
	activeUser := &entity.User{IsActive: true}

	tests := []struct {
		name   string
		setup  func(fx providerFixtures, email entity.Email)
		wantOK bool
	}{
		{
			name: "success returns empty token bundle",
			setup: func(fx providerFixtures, email entity.Email) {
				fx.repo.EXPECT().GetByEmail(mock.Anything, email).Return(activeUser, nil)
				fx.repo.EXPECT().GetPasswordHash(mock.Anything, email).Return("stored", nil)
				fx.hasher.EXPECT().Verify("Passw0rd!", "stored").Return(true)
			},
			wantOK: true,
		},
		{
			name: "unknown email",
			setup: func(fx providerFixtures, email entity.Email) {
				fx.repo.EXPECT().GetByEmail(mock.Anything, email).Return(nil, repository.ErrUserNotFound)
			},
		},
		{
			name: "inactive account",
			setup: func(fx providerFixtures, email entity.Email) {
				fx.repo.EXPECT().GetByEmail(mock.Anything, email).Return(&entity.User{IsActive: false}, nil)
			},
		},
		{
			name: "missing credential",
			setup: func(fx providerFixtures, email entity.Email) {
				fx.repo.EXPECT().GetByEmail(mock.Anything, email).Return(activeUser, nil)
				fx.repo.EXPECT().GetPasswordHash(mock.Anything, email).Return("", repository.ErrCredentialNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(fx providerFixtures, email entity.Email) {
				fx.repo.EXPECT().GetByEmail(mock.Anything, email).Return(activeUser, nil)
				fx.repo.EXPECT().GetPasswordHash(mock.Anything, email).Return("stored", nil)
				fx.hasher.EXPECT().Verify("Passw0rd!", "stored").Return(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProvider(t)
			email := testEmail(t)
			tt.setup(fx, email)

			result, err := fx.provider.Authenticate(context.Background(), email, "Passw0rd!")

			require.NoError(t, err)
			if tt.wantOK {
				require.NotNil(t, result)
				assert.Equal(t, entity.AuthResult{}, *result)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestInitiateForgotPassword_SendsCode(t *testing.T) {
	fx := createTestProvider(t)
	ctx := context.Background()
	email := testEmail(t)
	wantExpiry := fx.provider.now().Add(time.Hour)

	var storedCode string
	fx.repo.EXPECT().SetPasswordResetToken(ctx, email, mock.AnythingOfType("string"), wantExpiry).
		Run(func(_ context.Context, _ entity.Email, token string, _ time.Time) { storedCode = token }).
		Return(true, nil)
	fx.sender.EXPECT().Send(ctx, "ann@example.com", "Password reset code", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _, _, body string) {
			assert.Contains(t, body, "Your code: <strong>"+storedCode+"</strong>")
			assert.Contains(t, body, "1h")
		}).
		Return(nil)

	require.NoError(t, fx.provider.InitiateForgotPassword(ctx, email))
	assert.Len(t, storedCode, 8)
}

func TestInitiateForgotPassword_UnknownEmailSendsNothing(t *testing.T) {
	fx := createTestProvider(t)
	ctx := context.Background()
	email := testEmail(t)

	fx.repo.EXPECT().SetPasswordResetToken(ctx, email, mock.Anything, mock.Anything).Return(false, nil)

	require.NoError(t, fx.provider.InitiateForgotPassword(ctx, email))
	fx.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmForgotPassword(t *testing.T) {
	t.Run("consumes code", func(t *testing.T) {
		fx := createTestProvider(t)
		ctx := context.Background()
		email := testEmail(t)

		fx.hasher.EXPECT().Hash("N3wPassword").Return("new-hash", nil)
		fx.repo.EXPECT().ResetPasswordByToken(ctx, email, "code", "new-hash").Return(true, nil)

		ok, err := fx.provider.ConfirmForgotPassword(ctx, email, "code", "N3wPassword")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong or expired code", func(t *testing.T) {
		fx := createTestProvider(t)
		ctx := context.Background()
		email := testEmail(t)

		fx.hasher.EXPECT().Hash("N3wPassword").Return("new-hash", nil)
		fx.repo.EXPECT().ResetPasswordByToken(ctx, email, "stale", "new-hash").Return(false, nil)

		ok, err := fx.provider.ConfirmForgotPassword(ctx, email, "stale", "N3wPassword")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("short password never touches the store", func(t *testing.T) {
		fx := createTestProvider(t)

		ok, err := fx.provider.ConfirmForgotPassword(context.Background(), testEmail(t), "code", "short")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestEnableDisableAreNoOps(t *testing.T) {
	fx := createTestProvider(t)

	require.NoError(t, fx.provider.EnableUser(context.Background(), testEmail(t)))
	require.NoError(t, fx.provider.DisableUser(context.Background(), testEmail(t)))
}
