package services

import (
	"context"

	"github.com/clubledger/backend/internal/core/domain"
)

// ChartOfAccountsSvc is the registry of postable accounts.
type ChartOfAccountsSvc interface {
	// SeedAccounts idempotently installs the fixed 8-account chart.
	// Called on every startup.
	SeedAccounts(ctx context.Context) error

	// ResolveAccount maps a code to its account ID. A code that was never
	// seeded yields apperrors.ErrUnknownAccount; the enclosing posting
	// transaction aborts and nothing is written.
	ResolveAccount(ctx context.Context, code string) (string, error)

	// ListAccounts returns the seeded chart ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
