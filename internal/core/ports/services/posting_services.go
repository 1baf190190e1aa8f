package services

import (
	"context"

	"github.com/clubledger/backend/internal/dto"
)

// PostingSvc turns income and expense events into balanced journal entries.
type PostingSvc interface {
	// PostIncome posts at most one balanced entry for an income event.
	// A non-positive amount is a silent no-op returning a nil entry ID;
	// an unrecognized source kind is a validation error.
	PostIncome(ctx context.Context, p dto.PostIncomeParams) (*string, error)

	// PostExpense posts at most one balanced entry for an expense event,
	// with the same no-op rule for non-positive amounts.
	PostExpense(ctx context.Context, p dto.PostExpenseParams) (*string, error)

	// GetProjectJournal returns every posted entry of a project with its
	// two lines, ordered by transaction date.
	GetProjectJournal(ctx context.Context, projectID string) ([]dto.JournalEntryWithLines, error)
}
