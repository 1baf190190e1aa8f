package pgsql

import (
	"context"
	"errors"

	"github.com/clubledger/backend/internal/apperrors"
	"github.com/clubledger/backend/internal/core/domain"
	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxMemberRepository struct {
	BaseRepository
}

// newPgxMemberRepository creates a new repository for the dues roster.
func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepository {
	return &PgxMemberRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxMemberRepository implements portsrepo.MemberRepository
var _ portsrepo.MemberRepository = (*PgxMemberRepository)(nil)

// SaveMember inserts a payer onto the roster.
func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		INSERT INTO members (member_id, project_id, name, deposit_amount, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.MemberID,
		m.ProjectID,
		m.Name,
		m.DepositAmount,
		m.Note,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation on (project_id, name)
				return apperrors.ErrDuplicate
			}
		}
		return apperrors.NewAppError(500, "failed to insert member "+m.MemberID, err)
	}
	return nil
}

// ListMembersByProject returns the roster of one project ordered by name.
func (r *PgxMemberRepository) ListMembersByProject(ctx context.Context, projectID string) ([]domain.Member, error) {
	query := `
		SELECT member_id, project_id, name, deposit_amount, note, created_at
		FROM members
		WHERE project_id = $1
		ORDER BY name;
	`

	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query members for project "+projectID, err)
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(
			&m.MemberID,
			&m.ProjectID,
			&m.Name,
			&m.DepositAmount,
			&m.Note,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan member row for project "+projectID, err)
		}
		members = append(members, mapping.ToDomainMember(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating member rows for project "+projectID, err)
	}

	return members, nil
}

// SumDepositsByProject returns the total collected dues of one project.
func (r *PgxMemberRepository) SumDepositsByProject(ctx context.Context, projectID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(deposit_amount), 0)
		FROM members
		WHERE project_id = $1;
	`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, projectID).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum deposits for project "+projectID, err)
	}
	return total, nil
}
