package services

import (
	"context"
	"fmt"

	"github.com/clubledger/backend/internal/core/domain"
	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/middleware"
)

// chartOfAccountsService owns the fixed chart of accounts.
type chartOfAccountsService struct {
	accountRepo portsrepo.AccountRepository
}

// NewChartOfAccountsService creates the chart-of-accounts registry.
func NewChartOfAccountsService(accountRepo portsrepo.AccountRepository) portssvc.ChartOfAccountsSvc {
	return &chartOfAccountsService{accountRepo: accountRepo}
}

var _ portssvc.ChartOfAccountsSvc = (*chartOfAccountsService)(nil)

// SeedAccounts installs the fixed 8-account chart. Existing codes are left
// untouched, so repeated startup calls are harmless.
func (s *chartOfAccountsService) SeedAccounts(ctx context.Context) error {
	if err := s.accountRepo.EnsureSeedAccounts(ctx, domain.AccountSeed); err != nil {
		return fmt.Errorf("failed to seed chart of accounts: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Chart of accounts seeded", "accounts", len(domain.AccountSeed))
	return nil
}

// ResolveAccount maps an account code to its internal identifier.
func (s *chartOfAccountsService) ResolveAccount(ctx context.Context, code string) (string, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return "", err
	}
	return account.AccountID, nil
}

// ListAccounts returns the seeded chart ordered by code.
func (s *chartOfAccountsService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}
