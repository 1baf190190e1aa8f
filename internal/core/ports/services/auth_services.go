package services

import (
	"context"
	"time"
)

// AuthSvc authenticates the bootstrap treasurer and mints bearer tokens.
type AuthSvc interface {
	// Login verifies the credentials and returns a signed token with its
	// expiry, or apperrors.ErrUnauthorized.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}
