package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clubledger/backend/internal/apperrors"
	"github.com/clubledger/backend/internal/core/domain"
	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/dto"
	"github.com/clubledger/backend/internal/middleware"
)

// accountPair names the debit and credit side of one posting rule.
type accountPair struct {
	DebitCode  string
	CreditCode string
}

// incomeRule binds a source kind to its account pair and base description.
type incomeRule struct {
	Pair     accountPair
	DescBase string
}

// incomeRules is the fixed, exhaustive source-kind mapping of the income
// side. Kinds outside this table are rejected, not silently skipped.
var incomeRules = map[domain.SourceKind]incomeRule{
	domain.SourceSchoolBudget: {
		Pair:     accountPair{domain.CodeCashOperating, domain.CodeIncomeSchoolBudget},
		DescBase: "School/Dept subsidy deposit",
	},
	domain.SourceReserveFund: {
		Pair:     accountPair{domain.CodeCashReserve, domain.CodeIncomeReserveIn},
		DescBase: "Reserve/carry-over inflow",
	},
	domain.SourceReserveRecovery: {
		Pair:     accountPair{domain.CodeCashReserve, domain.CodeARJacketBuyers},
		DescBase: "Recovery/settlement deposit",
	},
	domain.SourceStudentDues: {
		Pair:     accountPair{domain.CodeCashOperating, domain.CodeIncomeStudentDues},
		DescBase: "Student dues deposit",
	},
}

// expenseAccountByCategory maps each ordinary expense category to the
// account it debits. CategoryAdvancePurchase is not listed here because an
// advance is not an expense: it debits AR against reserve cash instead.
var expenseAccountByCategory = map[domain.ExpenseCategory]string{
	domain.CategoryMeals:        domain.CodeExpenseGeneral,
	domain.CategoryDining:       domain.CodeExpenseGeneral,
	domain.CategoryVenueRental:  domain.CodeExpenseGeneral,
	domain.CategorySupplies:     domain.CodeExpenseGeneral,
	domain.CategoryPromotion:    domain.CodeExpenseGeneral,
	domain.CategoryTransport:    domain.CodeExpenseGeneral,
	domain.CategoryJacketMaking: domain.CodeExpenseJacket,
	domain.CategoryOther:        domain.CodeExpenseGeneral,
}

// postingService is the double-entry posting engine.
type postingService struct {
	coaSvc      portssvc.ChartOfAccountsSvc
	journalRepo portsrepo.JournalRepository
}

// NewPostingService creates the posting engine.
func NewPostingService(journalRepo portsrepo.JournalRepository, coaSvc portssvc.ChartOfAccountsSvc) portssvc.PostingSvc {
	return &postingService{
		coaSvc:      coaSvc,
		journalRepo: journalRepo,
	}
}

var _ portssvc.PostingSvc = (*postingService)(nil)

// composeDescription suffixes the base template with an optional label.
func composeDescription(base, label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return base
	}
	return base + " - " + label
}

// PostIncome posts one balanced entry for an income event.
func (s *postingService) PostIncome(ctx context.Context, p dto.PostIncomeParams) (*string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if p.Amount.LessThanOrEqual(decimal.Zero) {
		logger.Debug("Skipping income posting for non-positive amount",
			"project_id", p.ProjectID, "amount", p.Amount.String())
		return nil, nil
	}

	rule, ok := incomeRules[p.SourceKind]
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized income source kind %q", apperrors.ErrValidation, p.SourceKind)
	}

	entryID, err := s.post(ctx, postArgs{
		ProjectID:   p.ProjectID,
		TxDate:      p.TxDate,
		Description: composeDescription(rule.DescBase, p.Label),
		SourceKind:  p.SourceKind,
		CreatedBy:   p.ActorName,
		Pair:        rule.Pair,
		Amount:      p.Amount,
		Memo:        p.Note,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Income posted",
		"entry_id", entryID, "project_id", p.ProjectID,
		"source_kind", string(p.SourceKind), "amount", p.Amount.String())
	return &entryID, nil
}

// PostExpense posts one balanced entry for an expense event.
func (s *postingService) PostExpense(ctx context.Context, p dto.PostExpenseParams) (*string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if p.Amount.LessThanOrEqual(decimal.Zero) {
		logger.Debug("Skipping expense posting for non-positive amount",
			"project_id", p.ProjectID, "amount", p.Amount.String())
		return nil, nil
	}

	var args postArgs
	switch {
	case p.Category == domain.CategoryAdvancePurchase:
		// Advance expected to be recovered: receivable against reserve cash.
		args = postArgs{
			ProjectID:   p.ProjectID,
			TxDate:      p.TxDate,
			Description: p.Item + " advance disbursement",
			SourceKind:  domain.SourceJacketAdvance,
			CreatedBy:   p.ActorName,
			Pair:        accountPair{domain.CodeARJacketBuyers, domain.CodeCashReserve},
			Amount:      p.Amount,
			Memo:        p.Item,
		}
	default:
		debitCode, ok := expenseAccountByCategory[p.Category]
		if !ok {
			return nil, fmt.Errorf("%w: unrecognized expense category %q", apperrors.ErrValidation, p.Category)
		}
		args = postArgs{
			ProjectID:   p.ProjectID,
			TxDate:      p.TxDate,
			Description: p.Item + " expenditure",
			SourceKind:  domain.SourceExpense,
			CreatedBy:   p.ActorName,
			Pair:        accountPair{debitCode, domain.CodeCashOperating},
			Amount:      p.Amount,
			Memo:        string(p.Category),
		}
	}

	entryID, err := s.post(ctx, args)
	if err != nil {
		return nil, err
	}

	logger.Info("Expense posted",
		"entry_id", entryID, "project_id", p.ProjectID,
		"category", string(p.Category), "amount", p.Amount.String())
	return &entryID, nil
}

// postArgs carries one resolved posting through to persistence.
type postArgs struct {
	ProjectID   string
	TxDate      time.Time
	Description string
	SourceKind  domain.SourceKind
	CreatedBy   string
	Pair        accountPair
	Amount      decimal.Decimal
	Memo        string
}

// post resolves the account pair and persists the header plus its two lines
// as one atomic unit. Resolution failures abort before anything is written.
func (s *postingService) post(ctx context.Context, args postArgs) (string, error) {
	debitAccountID, err := s.coaSvc.ResolveAccount(ctx, args.Pair.DebitCode)
	if err != nil {
		return "", fmt.Errorf("failed to resolve debit account %s: %w", args.Pair.DebitCode, err)
	}
	creditAccountID, err := s.coaSvc.ResolveAccount(ctx, args.Pair.CreditCode)
	if err != nil {
		return "", fmt.Errorf("failed to resolve credit account %s: %w", args.Pair.CreditCode, err)
	}

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		ProjectID:   args.ProjectID,
		TxDate:      args.TxDate,
		Description: args.Description,
		SourceKind:  args.SourceKind,
		CreatedBy:   args.CreatedBy,
		CreatedAt:   now,
	}
	lines := []domain.JournalLine{
		{
			LineID:    uuid.NewString(),
			EntryID:   entry.EntryID,
			AccountID: debitAccountID,
			Debit:     args.Amount,
			Credit:    decimal.Zero,
			Memo:      args.Memo,
		},
		{
			LineID:    uuid.NewString(),
			EntryID:   entry.EntryID,
			AccountID: creditAccountID,
			Debit:     decimal.Zero,
			Credit:    args.Amount,
			Memo:      args.Memo,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		return "", fmt.Errorf("failed to save journal entry: %w", err)
	}
	return entry.EntryID, nil
}

// GetProjectJournal returns every posted entry of a project with its lines.
func (s *postingService) GetProjectJournal(ctx context.Context, projectID string) ([]dto.JournalEntryWithLines, error) {
	entries, err := s.journalRepo.FindEntriesByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if len(entries) == 0 {
		return []dto.JournalEntryWithLines{}, nil
	}

	entryIDs := make([]string, len(entries))
	for i, entry := range entries {
		entryIDs[i] = entry.EntryID
	}
	lines, err := s.journalRepo.FindLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal lines: %w", err)
	}

	linesByEntry := make(map[string][]domain.JournalLine, len(entries))
	for _, line := range lines {
		linesByEntry[line.EntryID] = append(linesByEntry[line.EntryID], line)
	}

	result := make([]dto.JournalEntryWithLines, len(entries))
	for i, entry := range entries {
		result[i] = dto.JournalEntryWithLines{
			Entry: entry,
			Lines: linesByEntry[entry.EntryID],
		}
	}
	return result, nil
}
