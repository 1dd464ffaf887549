package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/apperrors"
	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/middleware"
	"github.com/clubfundhq/clubfund_backend/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// authService implements the AuthSvcFacade interface. There is no user table:
// the two accounts (admin and guest) come from configuration, passwords stored
// as bcrypt hashes.
type authService struct {
	BaseService
	cfg *config.Config
}

// AuthServiceOption is a functional option for configuring the service.
type AuthServiceOption func(*authService)

// WithAuthClock sets the clock used for token issue and expiry times.
func WithAuthClock(clock func() time.Time) AuthServiceOption {
	return func(s *authService) {
		s.clock = clock
	}
}

// NewAuthService creates a new auth service with the provided options.
func NewAuthService(cfg *config.Config, options ...AuthServiceOption) portssvc.AuthSvcFacade {
	svc := &authService{cfg: cfg}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure authService implements the AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (string, domain.Role, time.Time, error) {
	role, hash, ok := s.lookupAccount(username)
	if !ok {
		s.LogWarn(ctx, "Login attempt for unknown account", slog.String("username", username))
		return "", "", time.Time{}, apperrors.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		s.LogWarn(ctx, "Login attempt with wrong password", slog.String("username", username))
		return "", "", time.Time{}, apperrors.ErrUnauthorized
	}

	now := s.Now()
	expiresAt := now.Add(s.cfg.JWTExpiryDuration)
	claims := middleware.AuthClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.cfg.JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", slog.String("username", username))
		return "", "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	s.LogInfo(ctx, "Login succeeded",
		slog.String("username", username), slog.String("role", string(role)))
	return token, role, expiresAt, nil
}

// lookupAccount resolves a username to its role and bcrypt hash. An account
// with an empty hash is treated as disabled.
func (s *authService) lookupAccount(username string) (domain.Role, string, bool) {
	switch username {
	case s.cfg.AdminUsername:
		if s.cfg.AdminPasswordHash == "" {
			return "", "", false
		}
		return domain.RoleAdmin, s.cfg.AdminPasswordHash, true
	case s.cfg.GuestUsername:
		if s.cfg.GuestPasswordHash == "" {
			return "", "", false
		}
		return domain.RoleGuest, s.cfg.GuestPasswordHash, true
	default:
		return "", "", false
	}
}
