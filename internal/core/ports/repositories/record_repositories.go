package repositories

import (
	"context"

	"github.com/clubledger/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetEntryRepository persists raw income rows.
type BudgetEntryRepository interface {
	SaveBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error
	ListBudgetEntriesByProject(ctx context.Context, projectID string) ([]domain.BudgetEntry, error)
}

// ExpenseRepository persists raw expense rows.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.ExpenseRecord) error
	ListExpensesByProject(ctx context.Context, projectID string) ([]domain.ExpenseRecord, error)
	SumExpensesByProject(ctx context.Context, projectID string) (decimal.Decimal, error)
}

// MemberRepository persists the student dues roster.
type MemberRepository interface {
	// SaveMember inserts a payer. Returns apperrors.ErrDuplicate when the
	// name already exists for the project.
	SaveMember(ctx context.Context, member domain.Member) error
	ListMembersByProject(ctx context.Context, projectID string) ([]domain.Member, error)
	SumDepositsByProject(ctx context.Context, projectID string) (decimal.Decimal, error)
}
