package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/dto"
	"github.com/clubledger/backend/internal/middleware"
)

// ledgerService builds the signed cash projection of one project.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepository
}

// NewLedgerService creates the ledger projection service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository) portssvc.LedgerSvc {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// GetLedger returns the project's signed, time-ordered rows together with
// their running total, which reconciles against the net of the project's
// journal postings.
func (s *ledgerService) GetLedger(ctx context.Context, projectID string) (*dto.LedgerResponse, error) {
	rows, err := s.ledgerRepo.FetchLedger(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger for project %s: %w", projectID, err)
	}

	runningTotal := decimal.Zero
	for _, row := range rows {
		runningTotal = runningTotal.Add(row.SignedAmount)
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Ledger fetched",
		"project_id", projectID, "rows", len(rows), "running_total", runningTotal.String())
	return &dto.LedgerResponse{Rows: rows, RunningTotal: runningTotal}, nil
}
