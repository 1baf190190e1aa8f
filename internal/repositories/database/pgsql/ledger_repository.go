package pgsql

import (
	"context"
	"strings"

	"github.com/clubledger/backend/internal/apperrors"
	"github.com/clubledger/backend/internal/core/domain"
	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the ledger projection.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// ledgerDescription labels a ledger row. Income recorded without a
// contributor (school budget, reserve moves) falls back to its source label.
func ledgerDescription(description, fallback string) string {
	if strings.TrimSpace(description) == "" {
		return fallback
	}
	return description
}

// FetchLedger returns the union of income rows (positive) and expense rows
// (negative), ordered by transaction date ascending with recording time as
// tie-breaker. The projection is computed in SQL so the two sources stay
// interleaved in one stable order.
func (r *PgxLedgerRepository) FetchLedger(ctx context.Context, projectID string) ([]domain.LedgerRow, error) {
	query := `
		SELECT entry_date AS transaction_date,
		       created_at AS recorded_at,
		       'INCOME' AS kind,
		       contributor_name AS description,
		       source_type AS fallback_label,
		       amount AS signed_amount
		FROM budget_entries
		WHERE project_id = $1
		UNION ALL
		SELECT date AS transaction_date,
		       created_at AS recorded_at,
		       'EXPENSE' AS kind,
		       item AS description,
		       '' AS fallback_label,
		       -amount AS signed_amount
		FROM expenses
		WHERE project_id = $1
		ORDER BY transaction_date ASC, recorded_at ASC;
	`

	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger for project "+projectID, err)
	}
	defer rows.Close()

	ledger := []domain.LedgerRow{}
	for rows.Next() {
		var row domain.LedgerRow
		var fallback string
		if err := rows.Scan(
			&row.TransactionDate,
			&row.RecordedAt,
			&row.Kind,
			&row.Description,
			&fallback,
			&row.SignedAmount,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger row for project "+projectID, err)
		}
		row.Description = ledgerDescription(row.Description, fallback)
		ledger = append(ledger, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger rows for project "+projectID, err)
	}

	return ledger, nil
}
