package repositories

import (
	"context"

	"github.com/clubledger/backend/internal/core/domain"
)

// LedgerRepository builds the signed income/expense projection of a project.
type LedgerRepository interface {
	// FetchLedger returns the union of income rows (positive) and expense
	// rows (negative), ordered by transaction date ascending with recording
	// time as tie-breaker. Pure read, no side effects.
	FetchLedger(ctx context.Context, projectID string) ([]domain.LedgerRow, error)
}
