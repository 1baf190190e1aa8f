package services_test

import (
	"context"
	"time"

	"github.com/clubledger/backend/internal/core/domain"
	"github.com/clubledger/backend/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) EnsureSeedAccounts(ctx context.Context, seed []domain.SeedAccount) error {
	args := m.Called(ctx, seed)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockJournalRepository is a mock type for the JournalRepository interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntriesByProject(ctx context.Context, projectID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

// MockChartOfAccountsSvc is a mock type for the ChartOfAccountsSvc interface
type MockChartOfAccountsSvc struct {
	mock.Mock
}

func (m *MockChartOfAccountsSvc) SeedAccounts(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockChartOfAccountsSvc) ResolveAccount(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *MockChartOfAccountsSvc) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockPostingSvc is a mock type for the PostingSvc interface
type MockPostingSvc struct {
	mock.Mock
}

func (m *MockPostingSvc) PostIncome(ctx context.Context, p dto.PostIncomeParams) (*string, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockPostingSvc) PostExpense(ctx context.Context, p dto.PostExpenseParams) (*string, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockPostingSvc) GetProjectJournal(ctx context.Context, projectID string) ([]dto.JournalEntryWithLines, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.JournalEntryWithLines), args.Error(1)
}

// MockProjectRepository is a mock type for the ProjectRepository interface
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateProjectBudget(ctx context.Context, projectID string, schoolBudget, carryOverFunds decimal.Decimal) error {
	args := m.Called(ctx, projectID, schoolBudget, carryOverFunds)
	return args.Error(0)
}

// MockBudgetEntryRepository is a mock type for the BudgetEntryRepository interface
type MockBudgetEntryRepository struct {
	mock.Mock
}

func (m *MockBudgetEntryRepository) SaveBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockBudgetEntryRepository) ListBudgetEntriesByProject(ctx context.Context, projectID string) ([]domain.BudgetEntry, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetEntry), args.Error(1)
}

// MockExpenseRepository is a mock type for the ExpenseRepository interface
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.ExpenseRecord) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) ListExpensesByProject(ctx context.Context, projectID string) ([]domain.ExpenseRecord, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseRecord), args.Error(1)
}

func (m *MockExpenseRepository) SumExpensesByProject(ctx context.Context, projectID string) (decimal.Decimal, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockMemberRepository is a mock type for the MemberRepository interface
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) ListMembersByProject(ctx context.Context, projectID string) ([]domain.Member, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) SumDepositsByProject(ctx context.Context, projectID string) (decimal.Decimal, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockLedgerRepository is a mock type for the LedgerRepository interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FetchLedger(ctx context.Context, projectID string) ([]domain.LedgerRow, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerRow), args.Error(1)
}

// MockArchiveRepository is a mock type for the ArchiveRepository interface.
// It records the order of purge calls so tests can assert the trail row is
// written before any deletion.
type MockArchiveRepository struct {
	mock.Mock
	Calls []string
}

func (m *MockArchiveRepository) SnapshotProjectData(ctx context.Context, projectID string) (domain.ArchiveData, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(domain.ArchiveData), args.Error(1)
}

func (m *MockArchiveRepository) ListArchiveHistory(ctx context.Context) ([]domain.ArchiveHistoryRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArchiveHistoryRecord), args.Error(1)
}

func (m *MockArchiveRepository) InsertArchiveHistoryTx(ctx context.Context, tx pgx.Tx, record domain.ArchiveHistoryRecord) error {
	m.Calls = append(m.Calls, "InsertArchiveHistoryTx")
	args := m.Called(ctx, tx, record)
	return args.Error(0)
}

func (m *MockArchiveRepository) DeleteJournalDataTx(ctx context.Context, tx pgx.Tx, projectID string) error {
	m.Calls = append(m.Calls, "DeleteJournalDataTx")
	args := m.Called(ctx, tx, projectID)
	return args.Error(0)
}

func (m *MockArchiveRepository) DeleteProjectScopedRowsTx(ctx context.Context, tx pgx.Tx, projectID string) error {
	m.Calls = append(m.Calls, "DeleteProjectScopedRowsTx")
	args := m.Called(ctx, tx, projectID)
	return args.Error(0)
}

func (m *MockArchiveRepository) DeleteProjectRowTx(ctx context.Context, tx pgx.Tx, projectID string) error {
	m.Calls = append(m.Calls, "DeleteProjectRowTx")
	args := m.Called(ctx, tx, projectID)
	return args.Error(0)
}

func (m *MockArchiveRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	m.Calls = append(m.Calls, "Begin")
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockArchiveRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	m.Calls = append(m.Calls, "Commit")
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockArchiveRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	m.Calls = append(m.Calls, "Rollback")
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// withinDuration is a small helper for asserting recent timestamps.
func withinDuration(t time.Time) bool {
	return time.Since(t) < time.Second
}
