package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/apperrors"
	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/core/services"
	"github.com/clubfundhq/clubfund_backend/internal/middleware"
	"github.com/clubfundhq/clubfund_backend/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceTestSuite struct {
	suite.Suite
	cfg     *config.Config
	service portssvc.AuthSvcFacade
	now     time.Time
}

func (suite *AuthServiceTestSuite) SetupSuite() {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.MinCost)
	suite.Require().NoError(err)
	guestHash, err := bcrypt.GenerateFromPassword([]byte("guest-pass"), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "clubfund-test",
		AdminUsername:     "admin",
		AdminPasswordHash: string(adminHash),
		GuestUsername:     "guest",
		GuestPasswordHash: string(guestHash),
	}
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.now = time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewAuthService(
		suite.cfg,
		services.WithAuthClock(func() time.Time { return suite.now }),
	)
}

func (suite *AuthServiceTestSuite) TestLogin_AdminSuccess() {
	ctx := context.Background()

	token, role, expiresAt, err := suite.service.Login(ctx, "admin", "admin-pass")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, role)
	suite.Equal(suite.now.Add(time.Hour), expiresAt)

	// The token must round-trip with the configured secret and carry the role.
	claims := &middleware.AuthClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(suite.cfg.JWTSecret), nil
	}, jwt.WithTimeFunc(func() time.Time { return suite.now }))
	suite.Require().NoError(err)
	suite.True(parsed.Valid)
	suite.Equal("ADMIN", claims.Role)
	suite.Equal("admin", claims.Subject)
	suite.Equal("clubfund-test", claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLogin_GuestSuccess() {
	ctx := context.Background()

	_, role, _, err := suite.service.Login(ctx, "guest", "guest-pass")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleGuest, role)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()

	token, _, _, err := suite.service.Login(ctx, "admin", "wrong")

	suite.Require().Error(err)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	ctx := context.Background()

	token, _, _, err := suite.service.Login(ctx, "nobody", "whatever")

	suite.Require().Error(err)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_DisabledAccount() {
	ctx := context.Background()
	cfg := *suite.cfg
	cfg.GuestPasswordHash = ""
	service := services.NewAuthService(&cfg)

	_, _, _, err := service.Login(ctx, "guest", "guest-pass")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
