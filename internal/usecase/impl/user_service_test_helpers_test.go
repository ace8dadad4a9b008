package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"usersvc/config"
	"usersvc/internal/domain/repository"
	mockRepo "usersvc/internal/mocks/repository"
	mockSvc "usersvc/internal/mocks/service"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(activationRequired bool, activationURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Activation.Required = activationRequired
	cfg.Activation.BaseURL = activationURL
	cfg.ApplyDefaults()

	return cfg
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   *userService
	txManager *mockRepo.MockTransactionManager
	txFactory *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	txRepo    *mockRepo.MockUserRepository
	identity  *mockSvc.MockIdentityProvider
	sender    *mockSvc.MockEmailSender
	events    *mockSvc.MockEventPublisher
}

func createTestUserService(t *testing.T, cfg *config.Config) userServiceFixtures {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txRepo := mockRepo.NewMockUserRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)
	sender := mockSvc.NewMockEmailSender(t)
	events := mockSvc.NewMockEventPublisher(t)

	svc := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Identity:  identity,
		Sender:    sender,
		Events:    events,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*userService)
	svc.now = func() time.Time { return fixedNow }

	return userServiceFixtures{
		service:   svc,
		txManager: txManager,
		txFactory: txFactory,
		userRepo:  userRepo,
		txRepo:    txRepo,
		identity:  identity,
		sender:    sender,
		events:    events,
	}
}

// runTransaction makes the transaction manager hand the tx-scoped repository to fn.
func (f userServiceFixtures) runTransaction() {
	f.txFactory.EXPECT().UserRepo().Return(f.txRepo)
	f.txManager.EXPECT().
		Execute(mockAnyCtx, mockAnyFn).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.txFactory)
		})
}
