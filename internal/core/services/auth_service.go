package services

import (
	"context"
	"fmt"
	"time"

	"github.com/clubledger/backend/internal/apperrors"
	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/middleware"
	"github.com/clubledger/backend/internal/platform/config"
	"github.com/clubledger/backend/internal/utils"
)

// authService authenticates the bootstrap treasurer credential from config.
// The full signup/approval workflow lives outside this service.
type authService struct {
	cfg          *config.Config
	passwordHash string
}

// NewAuthService creates the auth service, hashing the configured password
// once up front. An empty password leaves login disabled.
func NewAuthService(cfg *config.Config) (portssvc.AuthSvc, error) {
	svc := &authService{cfg: cfg}
	if cfg.AdminPassword != "" {
		hash, err := utils.HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash bootstrap credential: %w", err)
		}
		svc.passwordHash = hash
	}
	return svc, nil
}

var _ portssvc.AuthSvc = (*authService)(nil)

// Login verifies the credentials and mints a bearer token.
func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.passwordHash == "" {
		logger.Warn("Login attempted but no bootstrap credential is configured")
		return "", time.Time{}, apperrors.ErrUnauthorized
	}
	if username != s.cfg.AdminUsername || !utils.CheckPasswordHash(password, s.passwordHash) {
		logger.Warn("Login failed", "username", username)
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.Info("Login succeeded", "username", username)
	return token, expiresAt, nil
}
