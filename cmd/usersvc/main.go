package main

import (
	"context"
	"log/slog"
	"os"

	"usersvc/config"
	"usersvc/internal/delivery"
	"usersvc/internal/delivery/api"
	"usersvc/internal/delivery/api/middleware"
	"usersvc/internal/delivery/api/router/handler"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/service"
	"usersvc/internal/infra/auth"
	"usersvc/internal/infra/auth/cognito"
	"usersvc/internal/infra/auth/local"
	logs "usersvc/internal/infra/log"
	"usersvc/internal/infra/notification"
	"usersvc/internal/infra/persistence/postgres"
	"usersvc/internal/infra/pubsub"
	"usersvc/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPasswordHasher,
			notification.NewEmailSender,
			pubsub.NewEventPublisher,
			newIdentityProvider,
			newTokenVerifier,
		),
	)
}

type identityParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Repo   repository.UserRepository
	Hasher service.PasswordHasher
	Sender service.EmailSender
}

// newIdentityProvider selects the adapter named by identity.provider.
func newIdentityProvider(params identityParams) (service.IdentityProvider, error) {
	switch params.Config.Identity.Provider {
	case config.IdentityProviderCognito:
		return cognito.NewIdentityProvider(cognito.Params{
			Ctx:    params.Ctx,
			Config: params.Config,
			Logger: params.Logger,
		})
	case config.IdentityProviderLocal:
		return local.NewIdentityProvider(local.Params{
			Repo:   params.Repo,
			Hasher: params.Hasher,
			Sender: params.Sender,
			Config: params.Config,
			Logger: params.Logger,
		}), nil
	default:
		return nil, errors.Errorf("unsupported identity provider %q", params.Config.Identity.Provider)
	}
}

type verifierParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// newTokenVerifier pairs the bearer token check with the identity provider that issued the tokens.
func newTokenVerifier(params verifierParams) (service.TokenVerifier, error) {
	switch params.Config.Identity.Provider {
	case config.IdentityProviderCognito:
		return cognito.NewTokenVerifier(cognito.VerifierParams{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
	case config.IdentityProviderLocal:
		return auth.NewHMACTokenVerifier(params.Config.Local)
	default:
		return nil, errors.Errorf("unsupported identity provider %q", params.Config.Identity.Provider)
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
