package services

import (
	"context"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
)

// AuthSvcFacade verifies configured credentials and issues role-bearing tokens.
type AuthSvcFacade interface {
	// Login checks the credentials and returns a signed token, the granted
	// role and the token expiry. Returns apperrors.ErrUnauthorized on bad
	// credentials.
	Login(ctx context.Context, username, password string) (string, domain.Role, time.Time, error)
}
