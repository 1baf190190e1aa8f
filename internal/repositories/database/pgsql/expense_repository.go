package pgsql

import (
	"context"

	"github.com/clubledger/backend/internal/apperrors"
	"github.com/clubledger/backend/internal/core/domain"
	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for raw expense rows.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepository
var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

// SaveExpense inserts a raw expense row.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.ExpenseRecord) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, project_id, date, item, amount, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.ProjectID,
		m.Date,
		m.Item,
		m.Amount,
		m.Category,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert expense "+m.ExpenseID, err)
	}
	return nil
}

// ListExpensesByProject returns the raw expense rows of one project, ordered
// by expense date with recording time as tie-breaker.
func (r *PgxExpenseRepository) ListExpensesByProject(ctx context.Context, projectID string) ([]domain.ExpenseRecord, error) {
	query := `
		SELECT expense_id, project_id, date, item, amount, category, created_at
		FROM expenses
		WHERE project_id = $1
		ORDER BY date, created_at;
	`

	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenses for project "+projectID, err)
	}
	defer rows.Close()

	expenses := []domain.ExpenseRecord{}
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(
			&m.ExpenseID,
			&m.ProjectID,
			&m.Date,
			&m.Item,
			&m.Amount,
			&m.Category,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense row for project "+projectID, err)
		}
		expenses = append(expenses, mapping.ToDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating expense rows for project "+projectID, err)
	}

	return expenses, nil
}

// SumExpensesByProject returns the total spent amount of one project.
func (r *PgxExpenseRepository) SumExpensesByProject(ctx context.Context, projectID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE project_id = $1;
	`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, projectID).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum expenses for project "+projectID, err)
	}
	return total, nil
}
