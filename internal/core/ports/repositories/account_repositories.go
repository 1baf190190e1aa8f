package repositories

import (
	"context"

	"github.com/clubledger/backend/internal/core/domain"
)

// AccountReader defines read operations over the chart of accounts.
type AccountReader interface {
	// FindAccountByCode retrieves the account seeded under the given code.
	// Returns apperrors.ErrUnknownAccount if the code was never seeded.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts returns every seeded account ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountSeeder defines the idempotent bootstrap of the fixed chart.
type AccountSeeder interface {
	// EnsureSeedAccounts inserts any missing seed rows, ignoring rows whose
	// code already exists. Safe to call on every startup.
	EnsureSeedAccounts(ctx context.Context, seed []domain.SeedAccount) error
}

// AccountRepository combines chart-of-accounts reads with seeding.
type AccountRepository interface {
	AccountReader
	AccountSeeder
}
