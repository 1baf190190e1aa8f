package pgsql

import (
	"context"

	"github.com/clubledger/backend/internal/apperrors"
	"github.com/clubledger/backend/internal/core/domain"
	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetEntryRepository struct {
	BaseRepository
}

// newPgxBudgetEntryRepository creates a new repository for raw income rows.
func newPgxBudgetEntryRepository(pool *pgxpool.Pool) portsrepo.BudgetEntryRepository {
	return &PgxBudgetEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBudgetEntryRepository implements portsrepo.BudgetEntryRepository
var _ portsrepo.BudgetEntryRepository = (*PgxBudgetEntryRepository)(nil)

// SaveBudgetEntry inserts a raw income row.
func (r *PgxBudgetEntryRepository) SaveBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error {
	m := mapping.ToModelBudgetEntry(entry)
	query := `
		INSERT INTO budget_entries (budget_entry_id, project_id, entry_date, source_type, contributor_name, amount, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.BudgetEntryID,
		m.ProjectID,
		m.EntryDate,
		m.SourceType,
		m.ContributorName,
		m.Amount,
		m.Note,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert budget entry "+m.BudgetEntryID, err)
	}
	return nil
}

// ListBudgetEntriesByProject returns the raw income rows of one project,
// ordered by entry date with recording time as tie-breaker.
func (r *PgxBudgetEntryRepository) ListBudgetEntriesByProject(ctx context.Context, projectID string) ([]domain.BudgetEntry, error) {
	query := `
		SELECT budget_entry_id, project_id, entry_date, source_type, contributor_name, amount, note, created_at
		FROM budget_entries
		WHERE project_id = $1
		ORDER BY entry_date, created_at;
	`

	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budget entries for project "+projectID, err)
	}
	defer rows.Close()

	entries := []domain.BudgetEntry{}
	for rows.Next() {
		var m models.BudgetEntry
		if err := rows.Scan(
			&m.BudgetEntryID,
			&m.ProjectID,
			&m.EntryDate,
			&m.SourceType,
			&m.ContributorName,
			&m.Amount,
			&m.Note,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget entry row for project "+projectID, err)
		}
		entries = append(entries, mapping.ToDomainBudgetEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating budget entry rows for project "+projectID, err)
	}

	return entries, nil
}
