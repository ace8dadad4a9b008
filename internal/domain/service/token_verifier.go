package service

import (
	"context"

	"usersvc/internal/domain/entity"
)

// TokenVerifier validates a bearer token issued by the identity provider and
// resolves the calling principal from its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*entity.Principal, error)
}
