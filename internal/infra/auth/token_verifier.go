package auth

import (
	"context"

	"usersvc/config"
	"usersvc/internal/domain/entity"
	"usersvc/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// hmacTokenVerifier validates HS256 bearer tokens from a development issuer
// that shares local.tokenSecret with this service.
type hmacTokenVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

// NewHMACTokenVerifier builds the shared-secret verifier used with the local identity provider.
func NewHMACTokenVerifier(cfg config.LocalAuthConfig) (service.TokenVerifier, error) {
	if cfg.TokenSecret == "" {
		return nil, errors.New("local token secret must be provided")
	}

	return &hmacTokenVerifier{
		secret:   []byte(cfg.TokenSecret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
	}, nil
}

func (v *hmacTokenVerifier) Verify(_ context.Context, rawToken string) (*entity.Principal, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg(),
		}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(rawToken, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...); err != nil {
		return nil, errors.Wrap(err, "failed to validate token")
	}

	principal, ok := PrincipalFromClaims(claims)
	if !ok {
		return nil, errors.New("token carries no subject")
	}

	return principal, nil
}
