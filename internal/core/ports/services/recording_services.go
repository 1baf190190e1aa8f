package services

import (
	"context"

	"github.com/clubledger/backend/internal/core/domain"
	"github.com/clubledger/backend/internal/dto"
)

// RecordingSvc stores raw income/expense rows and drives the posting engine
// for each, keeping the simplified ledger and the formal journal aligned.
type RecordingSvc interface {
	RecordIncome(ctx context.Context, projectID string, req dto.RecordIncomeRequest, actorName string) (*dto.RecordResult, error)
	RecordExpense(ctx context.Context, projectID string, req dto.RecordExpenseRequest, actorName string) (*dto.RecordResult, error)
	ListIncomes(ctx context.Context, projectID string) ([]domain.BudgetEntry, error)
	ListExpenses(ctx context.Context, projectID string) ([]domain.ExpenseRecord, error)
}

// MemberSvc manages the student dues roster of a project.
type MemberSvc interface {
	AddMember(ctx context.Context, projectID string, req dto.AddMemberRequest) (*domain.Member, error)
	ListMembers(ctx context.Context, projectID string) ([]domain.Member, error)
}
