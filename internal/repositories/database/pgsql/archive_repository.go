package pgsql

import (
	"context"

	"github.com/clubledger/backend/internal/apperrors"
	"github.com/clubledger/backend/internal/core/domain"
	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxArchiveRepository struct {
	BaseRepository
	journalRepo     portsrepo.JournalReader
	budgetEntryRepo portsrepo.BudgetEntryRepository
	expenseRepo     portsrepo.ExpenseRepository
	memberRepo      portsrepo.MemberRepository

	// tableExists reports whether a table is present in the current schema.
	// Snapshot and purge tolerate tables that a partial schema rollout has
	// not created yet, on both the read and the delete side.
	tableExists func(ctx context.Context, table string) (bool, error)
}

// newPgxArchiveRepository creates a new repository for archive snapshots and
// the purge statements.
func newPgxArchiveRepository(
	pool *pgxpool.Pool,
	journalRepo portsrepo.JournalReader,
	budgetEntryRepo portsrepo.BudgetEntryRepository,
	expenseRepo portsrepo.ExpenseRepository,
	memberRepo portsrepo.MemberRepository,
) portsrepo.ArchiveRepository {
	r := &PgxArchiveRepository{
		BaseRepository:  BaseRepository{Pool: pool},
		journalRepo:     journalRepo,
		budgetEntryRepo: budgetEntryRepo,
		expenseRepo:     expenseRepo,
		memberRepo:      memberRepo,
	}
	r.tableExists = r.queryTableExists
	return r
}

// Ensure PgxArchiveRepository implements portsrepo.ArchiveRepository
var _ portsrepo.ArchiveRepository = (*PgxArchiveRepository)(nil)

// queryTableExists checks information_schema for the table in the current
// schema.
func (r *PgxArchiveRepository) queryTableExists(ctx context.Context, table string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_name = $1
		);
	`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, table).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check existence of table "+table, err)
	}
	return exists, nil
}

// SnapshotProjectData reads every project-scoped row of one project. Tables
// absent from the schema contribute zero rows.
func (r *PgxArchiveRepository) SnapshotProjectData(ctx context.Context, projectID string) (domain.ArchiveData, error) {
	data := domain.ArchiveData{
		JournalEntries: []domain.JournalEntry{},
		JournalLines:   []domain.JournalLine{},
		BudgetEntries:  []domain.BudgetEntry{},
		Expenses:       []domain.ExpenseRecord{},
		Members:        []domain.Member{},
	}

	if ok, err := r.tableExists(ctx, "journal_entries"); err != nil {
		return data, err
	} else if ok {
		entries, err := r.journalRepo.FindEntriesByProject(ctx, projectID)
		if err != nil {
			return data, err
		}
		data.JournalEntries = entries
	}

	// Lines get their own guard: a schema can carry entries without the
	// lines table, and that case still archives with zero lines.
	if ok, err := r.tableExists(ctx, "journal_lines"); err != nil {
		return data, err
	} else if ok && len(data.JournalEntries) > 0 {
		entryIDs := make([]string, len(data.JournalEntries))
		for i, e := range data.JournalEntries {
			entryIDs[i] = e.EntryID
		}
		lines, err := r.journalRepo.FindLinesByEntryIDs(ctx, entryIDs)
		if err != nil {
			return data, err
		}
		data.JournalLines = lines
	}

	if ok, err := r.tableExists(ctx, "budget_entries"); err != nil {
		return data, err
	} else if ok {
		entries, err := r.budgetEntryRepo.ListBudgetEntriesByProject(ctx, projectID)
		if err != nil {
			return data, err
		}
		data.BudgetEntries = entries
	}

	if ok, err := r.tableExists(ctx, "expenses"); err != nil {
		return data, err
	} else if ok {
		expenses, err := r.expenseRepo.ListExpensesByProject(ctx, projectID)
		if err != nil {
			return data, err
		}
		data.Expenses = expenses
	}

	if ok, err := r.tableExists(ctx, "members"); err != nil {
		return data, err
	} else if ok {
		members, err := r.memberRepo.ListMembersByProject(ctx, projectID)
		if err != nil {
			return data, err
		}
		data.Members = members
	}

	return data, nil
}

// ListArchiveHistory returns the purge trail, newest first.
func (r *PgxArchiveRepository) ListArchiveHistory(ctx context.Context) ([]domain.ArchiveHistoryRecord, error) {
	query := `
		SELECT record_id, project_id, project_name, archived_by, archive_reason, archived_at, filename
		FROM archive_history
		ORDER BY archived_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query archive history", err)
	}
	defer rows.Close()

	records := []domain.ArchiveHistoryRecord{}
	for rows.Next() {
		var m models.ArchiveHistory
		if err := rows.Scan(
			&m.RecordID,
			&m.ProjectID,
			&m.ProjectName,
			&m.ArchivedBy,
			&m.ArchiveReason,
			&m.ArchivedAt,
			&m.Filename,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan archive history row", err)
		}
		records = append(records, mapping.ToDomainArchiveHistory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating archive history rows", err)
	}

	return records, nil
}

// InsertArchiveHistoryTx records the purge attempt on the caller's
// transaction, before any deletion runs.
func (r *PgxArchiveRepository) InsertArchiveHistoryTx(ctx context.Context, tx pgx.Tx, record domain.ArchiveHistoryRecord) error {
	m := mapping.ToModelArchiveHistory(record)
	query := `
		INSERT INTO archive_history (record_id, project_id, project_name, archived_by, archive_reason, archived_at, filename)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err := tx.Exec(ctx, query,
		m.RecordID,
		m.ProjectID,
		m.ProjectName,
		m.ArchivedBy,
		m.ArchiveReason,
		m.ArchivedAt,
		m.Filename,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert archive history for project "+m.ProjectID, err)
	}
	return nil
}

// DeleteJournalDataTx deletes the project's journal lines and then its
// journal entries. Lines go first: they carry no project ID, so they are
// scoped through the entry-id set of the parent entries. Absent journal
// tables are skipped so a partial schema purges cleanly.
func (r *PgxArchiveRepository) DeleteJournalDataTx(ctx context.Context, tx pgx.Tx, projectID string) error {
	entriesOK, err := r.tableExists(ctx, "journal_entries")
	if err != nil {
		return err
	}
	linesOK, err := r.tableExists(ctx, "journal_lines")
	if err != nil {
		return err
	}

	// The lines delete scopes through journal_entries, so it needs both
	// tables; without the entries table there is nothing to scope by.
	if linesOK && entriesOK {
		linesQuery := `
			DELETE FROM journal_lines
			WHERE entry_id IN (SELECT entry_id FROM journal_entries WHERE project_id = $1);
		`
		if _, err := tx.Exec(ctx, linesQuery, projectID); err != nil {
			return apperrors.NewAppError(500, "failed to delete journal lines for project "+projectID, err)
		}
	}

	if entriesOK {
		entriesQuery := `DELETE FROM journal_entries WHERE project_id = $1;`
		if _, err := tx.Exec(ctx, entriesQuery, projectID); err != nil {
			return apperrors.NewAppError(500, "failed to delete journal entries for project "+projectID, err)
		}
	}
	return nil
}

// DeleteProjectScopedRowsTx deletes the raw income, expense and roster rows
// of the project. Tables absent from the schema are skipped.
func (r *PgxArchiveRepository) DeleteProjectScopedRowsTx(ctx context.Context, tx pgx.Tx, projectID string) error {
	for _, table := range []string{"budget_entries", "expenses", "members"} {
		ok, err := r.tableExists(ctx, table)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if _, err := tx.Exec(ctx, "DELETE FROM "+table+" WHERE project_id = $1;", projectID); err != nil {
			return apperrors.NewAppError(500, "failed to delete "+table+" rows for project "+projectID, err)
		}
	}
	return nil
}

// DeleteProjectRowTx removes the project row itself.
func (r *PgxArchiveRepository) DeleteProjectRowTx(ctx context.Context, tx pgx.Tx, projectID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE project_id = $1;`, projectID); err != nil {
		return apperrors.NewAppError(500, "failed to delete project row "+projectID, err)
	}
	return nil
}
