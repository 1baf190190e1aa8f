package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clubledger/backend/internal/apperrors"
	"github.com/clubledger/backend/internal/core/domain"
	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/dto"
	"github.com/clubledger/backend/internal/middleware"
)

// recordingService stores raw income and expense rows and drives the
// posting engine for each, so the simplified ledger projection and the
// formal journal stay reconcilable.
type recordingService struct {
	budgetRepo  portsrepo.BudgetEntryRepository
	expenseRepo portsrepo.ExpenseRepository
	projectRepo portsrepo.ProjectRepository
	postingSvc  portssvc.PostingSvc
}

// NewRecordingService creates the income/expense recording service.
func NewRecordingService(
	budgetRepo portsrepo.BudgetEntryRepository,
	expenseRepo portsrepo.ExpenseRepository,
	projectRepo portsrepo.ProjectRepository,
	postingSvc portssvc.PostingSvc,
) portssvc.RecordingSvc {
	return &recordingService{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		projectRepo: projectRepo,
		postingSvc:  postingSvc,
	}
}

var _ portssvc.RecordingSvc = (*recordingService)(nil)

// RecordIncome inserts the raw income row and posts the matching journal
// entry. Non-positive amounts keep the raw row but skip the posting.
func (s *recordingService) RecordIncome(ctx context.Context, projectID string, req dto.RecordIncomeRequest, actorName string) (*dto.RecordResult, error) {
	if !req.SourceType.IsIncomeSource() {
		return nil, fmt.Errorf("%w: %q is not an income source kind", apperrors.ErrValidation, req.SourceType)
	}
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	entry := domain.BudgetEntry{
		BudgetEntryID:   uuid.NewString(),
		ProjectID:       projectID,
		EntryDate:       req.EntryDate,
		SourceType:      req.SourceType,
		ContributorName: req.ContributorName,
		Amount:          req.Amount,
		Note:            req.Note,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.budgetRepo.SaveBudgetEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save budget entry: %w", err)
	}

	entryID, err := s.postingSvc.PostIncome(ctx, dto.PostIncomeParams{
		ProjectID:  projectID,
		TxDate:     req.EntryDate,
		SourceKind: req.SourceType,
		ActorName:  actorName,
		Amount:     req.Amount,
		Note:       req.Note,
		Label:      req.Label,
	})
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Income recorded",
		"project_id", projectID, "budget_entry_id", entry.BudgetEntryID,
		"source_type", string(req.SourceType))
	return &dto.RecordResult{RecordID: entry.BudgetEntryID, JournalEntryID: entryID}, nil
}

// RecordExpense inserts the raw expense row and posts the matching journal
// entry.
func (s *recordingService) RecordExpense(ctx context.Context, projectID string, req dto.RecordExpenseRequest, actorName string) (*dto.RecordResult, error) {
	if !req.Category.Valid() {
		return nil, fmt.Errorf("%w: unrecognized expense category %q", apperrors.ErrValidation, req.Category)
	}
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	expense := domain.ExpenseRecord{
		ExpenseID: uuid.NewString(),
		ProjectID: projectID,
		Date:      req.Date,
		Item:      req.Item,
		Amount:    req.Amount,
		Category:  req.Category,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	entryID, err := s.postingSvc.PostExpense(ctx, dto.PostExpenseParams{
		ProjectID: projectID,
		TxDate:    req.Date,
		Category:  req.Category,
		Item:      req.Item,
		Amount:    req.Amount,
		ActorName: actorName,
	})
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Expense recorded",
		"project_id", projectID, "expense_id", expense.ExpenseID,
		"category", string(req.Category))
	return &dto.RecordResult{RecordID: expense.ExpenseID, JournalEntryID: entryID}, nil
}

// ListIncomes returns the raw income rows of a project.
func (s *recordingService) ListIncomes(ctx context.Context, projectID string) ([]domain.BudgetEntry, error) {
	return s.budgetRepo.ListBudgetEntriesByProject(ctx, projectID)
}

// ListExpenses returns the raw expense rows of a project.
func (s *recordingService) ListExpenses(ctx context.Context, projectID string) ([]domain.ExpenseRecord, error) {
	return s.expenseRepo.ListExpensesByProject(ctx, projectID)
}

// memberService manages the student dues roster.
type memberService struct {
	memberRepo  portsrepo.MemberRepository
	projectRepo portsrepo.ProjectRepository
}

// NewMemberService creates the dues roster service.
func NewMemberService(memberRepo portsrepo.MemberRepository, projectRepo portsrepo.ProjectRepository) portssvc.MemberSvc {
	return &memberService{memberRepo: memberRepo, projectRepo: projectRepo}
}

var _ portssvc.MemberSvc = (*memberService)(nil)

// AddMember adds one payer to a project's roster.
func (s *memberService) AddMember(ctx context.Context, projectID string, req dto.AddMemberRequest) (*domain.Member, error) {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	member := domain.Member{
		MemberID:      uuid.NewString(),
		ProjectID:     projectID,
		Name:          req.Name,
		DepositAmount: req.DepositAmount,
		Note:          req.Note,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to save member: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Member added",
		"project_id", projectID, "member_id", member.MemberID)
	return &member, nil
}

// ListMembers returns the roster of a project.
func (s *memberService) ListMembers(ctx context.Context, projectID string) ([]domain.Member, error) {
	return s.memberRepo.ListMembersByProject(ctx, projectID)
}
