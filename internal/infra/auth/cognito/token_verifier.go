package cognito

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"usersvc/config"
	"usersvc/internal/domain/entity"
	"usersvc/internal/domain/service"
	"usersvc/internal/infra/auth"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	tokenUseAccess = "access"
	tokenUseID     = "id"
)

// tokenVerifier validates RS256 tokens minted by the user pool against its published JWKS.
type tokenVerifier struct {
	keyFunc  jwt.Keyfunc
	issuer   string
	clientID string
}

// VerifierParams holds dependencies for the Cognito token verifier, injected by Fx.
type VerifierParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// IssuerURL is the token issuer of a user pool.
func IssuerURL(region, userPoolID string) string {
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", region, userPoolID)
}

// NewTokenVerifier fetches the pool's JWKS and keeps it refreshed in the background
// until the application stops.
func NewTokenVerifier(params VerifierParams) (service.TokenVerifier, error) {
	cfg := params.Config.Cognito
	if cfg.Region == "" || cfg.UserPoolID == "" || cfg.ClientID == "" {
		return nil, errors.New("cognito.region, cognito.userPoolId and cognito.clientId are required")
	}

	issuer := IssuerURL(cfg.Region, cfg.UserPoolID)
	logger := params.Logger

	jwks, err := keyfunc.Get(issuer+"/.well-known/jwks.json", keyfunc.Options{
		RefreshInterval:   cfg.JWKSRefreshInterval,
		RefreshRateLimit:  5 * time.Minute,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			logger.Error("Failed to refresh Cognito JWKS", slog.Any("error", err))
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch Cognito JWKS")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			jwks.EndBackground()

			return nil
		},
	})

	return newTokenVerifier(jwks.Keyfunc, issuer, cfg.ClientID), nil
}

func newTokenVerifier(keyFunc jwt.Keyfunc, issuer, clientID string) *tokenVerifier {
	return &tokenVerifier{keyFunc: keyFunc, issuer: issuer, clientID: clientID}
}

// Verify accepts access tokens issued to our app client and ID tokens whose
// audience is our app client.
func (v *tokenVerifier) Verify(_ context.Context, rawToken string) (*entity.Principal, error) {
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(rawToken, claims, v.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	); err != nil {
		return nil, errors.Wrap(err, "failed to validate token")
	}

	use, _ := claims["token_use"].(string)
	switch use {
	case tokenUseAccess:
		if clientID, _ := claims["client_id"].(string); clientID != v.clientID {
			return nil, errors.New("token was issued to another client")
		}
	case tokenUseID:
		aud, err := claims.GetAudience()
		if err != nil || !slices.Contains(aud, v.clientID) {
			return nil, errors.New("token audience does not match client")
		}
	default:
		return nil, errors.Errorf("unsupported token_use %q", use)
	}

	principal, ok := auth.PrincipalFromClaims(claims)
	if !ok {
		return nil, errors.New("token carries no subject")
	}

	return principal, nil
}
