package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/clubledger/backend/internal/apperrors"
	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/core/services"
	"github.com/clubledger/backend/internal/platform/config"
	"github.com/clubledger/backend/internal/utils"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	cfg     *config.Config
	service portssvc.AuthSvc
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		AdminUsername:     "treasurer",
		AdminPassword:     "open sesame",
		JWTSecret:         "test-secret",
		JWTIssuer:         "clubledger",
		JWTExpiryDuration: time.Hour,
	}
	svc, err := services.NewAuthService(suite.cfg)
	suite.Require().NoError(err)
	suite.service = svc
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	token, expiresAt, err := suite.service.Login(context.Background(), "treasurer", "open sesame")

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	suite.Require().NoError(err)
	suite.Equal("treasurer", claims.Subject)
	suite.Equal("clubledger", claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	_, _, err := suite.service.Login(context.Background(), "treasurer", "guess")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongUsername() {
	_, _, err := suite.service.Login(context.Background(), "intruder", "open sesame")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_DisabledWithoutPassword() {
	suite.cfg.AdminPassword = ""
	svc, err := services.NewAuthService(suite.cfg)
	suite.Require().NoError(err)

	_, _, err = svc.Login(context.Background(), "treasurer", "anything")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
