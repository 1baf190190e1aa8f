package pgsql

import (
	"context"
	"strings"
	"testing"

	"github.com/clubledger/backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTx records executed statements; the purge statements only need Exec.
type stubTx struct {
	execs []string
}

func (t *stubTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *stubTx) Commit(ctx context.Context) error          { return nil }
func (t *stubTx) Rollback(ctx context.Context) error        { return nil }
func (t *stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *stubTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *stubTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	t.execs = append(t.execs, sql)
	return pgconn.CommandTag{}, nil
}
func (t *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *stubTx) Conn() *pgx.Conn                                              { return nil }

type stubJournalReader struct {
	entries     []domain.JournalEntry
	lines       []domain.JournalLine
	linesCalled bool
}

func (s *stubJournalReader) FindEntriesByProject(ctx context.Context, projectID string) ([]domain.JournalEntry, error) {
	return s.entries, nil
}
func (s *stubJournalReader) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) ([]domain.JournalLine, error) {
	s.linesCalled = true
	return s.lines, nil
}

type stubBudgetEntryRepo struct{ entries []domain.BudgetEntry }

func (s *stubBudgetEntryRepo) SaveBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error {
	return nil
}
func (s *stubBudgetEntryRepo) ListBudgetEntriesByProject(ctx context.Context, projectID string) ([]domain.BudgetEntry, error) {
	return s.entries, nil
}

type stubExpenseRepo struct{ expenses []domain.ExpenseRecord }

func (s *stubExpenseRepo) SaveExpense(ctx context.Context, expense domain.ExpenseRecord) error {
	return nil
}
func (s *stubExpenseRepo) ListExpensesByProject(ctx context.Context, projectID string) ([]domain.ExpenseRecord, error) {
	return s.expenses, nil
}
func (s *stubExpenseRepo) SumExpensesByProject(ctx context.Context, projectID string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type stubMemberRepo struct{ members []domain.Member }

func (s *stubMemberRepo) SaveMember(ctx context.Context, member domain.Member) error { return nil }
func (s *stubMemberRepo) ListMembersByProject(ctx context.Context, projectID string) ([]domain.Member, error) {
	return s.members, nil
}
func (s *stubMemberRepo) SumDepositsByProject(ctx context.Context, projectID string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

// archiveRepoWithTables builds a repository whose schema check reports only
// the given tables as present.
func archiveRepoWithTables(journal *stubJournalReader, present ...string) *PgxArchiveRepository {
	r := &PgxArchiveRepository{
		journalRepo:     journal,
		budgetEntryRepo: &stubBudgetEntryRepo{},
		expenseRepo:     &stubExpenseRepo{},
		memberRepo:      &stubMemberRepo{},
	}
	r.tableExists = func(ctx context.Context, table string) (bool, error) {
		for _, p := range present {
			if p == table {
				return true, nil
			}
		}
		return false, nil
	}
	return r
}

func TestSnapshotProjectData_MissingLinesTable(t *testing.T) {
	journal := &stubJournalReader{
		entries: []domain.JournalEntry{{EntryID: "e1", ProjectID: "p1"}},
	}
	r := archiveRepoWithTables(journal, "journal_entries", "budget_entries", "expenses", "members")

	data, err := r.SnapshotProjectData(context.Background(), "p1")

	require.NoError(t, err)
	assert.Len(t, data.JournalEntries, 1)
	assert.Empty(t, data.JournalLines, "Absent lines table should contribute zero rows")
	assert.False(t, journal.linesCalled, "Lines must not be read when the table is absent")
}

func TestSnapshotProjectData_AllTablesAbsent(t *testing.T) {
	journal := &stubJournalReader{}
	r := archiveRepoWithTables(journal)

	data, err := r.SnapshotProjectData(context.Background(), "p1")

	require.NoError(t, err)
	assert.Empty(t, data.JournalEntries)
	assert.Empty(t, data.JournalLines)
	assert.Empty(t, data.BudgetEntries)
	assert.Empty(t, data.Expenses)
	assert.Empty(t, data.Members)
	assert.NotNil(t, data.JournalEntries, "Slices stay non-nil so the JSON export keeps its shape")
}

func TestSnapshotProjectData_FullSchema(t *testing.T) {
	journal := &stubJournalReader{
		entries: []domain.JournalEntry{{EntryID: "e1"}},
		lines:   []domain.JournalLine{{LineID: "l1", EntryID: "e1"}, {LineID: "l2", EntryID: "e1"}},
	}
	r := archiveRepoWithTables(journal,
		"journal_entries", "journal_lines", "budget_entries", "expenses", "members")

	data, err := r.SnapshotProjectData(context.Background(), "p1")

	require.NoError(t, err)
	assert.Len(t, data.JournalEntries, 1)
	assert.Len(t, data.JournalLines, 2)
}

func TestDeleteJournalDataTx_MissingTablesSkipped(t *testing.T) {
	r := archiveRepoWithTables(&stubJournalReader{})
	tx := &stubTx{}

	err := r.DeleteJournalDataTx(context.Background(), tx, "p1")

	require.NoError(t, err)
	assert.Empty(t, tx.execs, "No delete should run against absent journal tables")
}

func TestDeleteJournalDataTx_EntriesOnlySchema(t *testing.T) {
	r := archiveRepoWithTables(&stubJournalReader{}, "journal_entries")
	tx := &stubTx{}

	err := r.DeleteJournalDataTx(context.Background(), tx, "p1")

	require.NoError(t, err)
	require.Len(t, tx.execs, 1)
	assert.Contains(t, tx.execs[0], "journal_entries")
	assert.NotContains(t, tx.execs[0], "journal_lines")
}

func TestDeleteJournalDataTx_LinesDeletedFirst(t *testing.T) {
	r := archiveRepoWithTables(&stubJournalReader{}, "journal_entries", "journal_lines")
	tx := &stubTx{}

	err := r.DeleteJournalDataTx(context.Background(), tx, "p1")

	require.NoError(t, err)
	require.Len(t, tx.execs, 2)
	assert.Contains(t, tx.execs[0], "DELETE FROM journal_lines")
	assert.Contains(t, tx.execs[1], "DELETE FROM journal_entries")
}

func TestDeleteProjectScopedRowsTx_MissingTablesSkipped(t *testing.T) {
	r := archiveRepoWithTables(&stubJournalReader{}, "budget_entries", "members")
	tx := &stubTx{}

	err := r.DeleteProjectScopedRowsTx(context.Background(), tx, "p1")

	require.NoError(t, err)
	require.Len(t, tx.execs, 2)
	joined := strings.Join(tx.execs, "\n")
	assert.Contains(t, joined, "budget_entries")
	assert.Contains(t, joined, "members")
	assert.NotContains(t, joined, "expenses")
}
