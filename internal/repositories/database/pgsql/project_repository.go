package pgsql

import (
	"context"
	"errors"

	"github.com/clubledger/backend/internal/apperrors"
	"github.com/clubledger/backend/internal/core/domain"
	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepository
var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

// SaveProject inserts a new project.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
		INSERT INTO projects (project_id, name, school_budget, carry_over_funds, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.Name,
		m.SchoolBudget,
		m.CarryOverFunds,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.ErrDuplicate
			}
		}
		return apperrors.NewAppError(500, "failed to insert project "+m.ProjectID, err)
	}
	return nil
}

// FindProjectByID retrieves one project by its ID.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT project_id, name, school_budget, carry_over_funds, created_at
		FROM projects
		WHERE project_id = $1;
	`

	var m models.Project
	err := r.Pool.QueryRow(ctx, query, projectID).Scan(
		&m.ProjectID,
		&m.Name,
		&m.SchoolBudget,
		&m.CarryOverFunds,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find project by ID "+projectID, err)
	}

	project := mapping.ToDomainProject(m)
	return &project, nil
}

// ListProjects returns all projects ordered by creation time.
func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT project_id, name, school_budget, carry_over_funds, created_at
		FROM projects
		ORDER BY created_at;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query projects", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var m models.Project
		if err := rows.Scan(&m.ProjectID, &m.Name, &m.SchoolBudget, &m.CarryOverFunds, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan project row", err)
		}
		projects = append(projects, mapping.ToDomainProject(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating project rows", err)
	}

	return projects, nil
}

// UpdateProjectBudget sets the fixed budget figures of a project.
func (r *PgxProjectRepository) UpdateProjectBudget(ctx context.Context, projectID string, schoolBudget, carryOverFunds decimal.Decimal) error {
	query := `
		UPDATE projects
		SET school_budget = $2,
		    carry_over_funds = $3
		WHERE project_id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query, projectID, schoolBudget, carryOverFunds)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update budget for project "+projectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("project " + projectID + " not found for update")
	}
	return nil
}
