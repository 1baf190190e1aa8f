package repositories

import (
	"context"

	"github.com/clubledger/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectRepository defines persistence for the project scoping entity.
type ProjectRepository interface {
	// SaveProject inserts a new project. Returns apperrors.ErrDuplicate if
	// the name is taken.
	SaveProject(ctx context.Context, project domain.Project) error

	// FindProjectByID retrieves one project or apperrors.ErrNotFound.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects returns all projects ordered by creation time.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// UpdateProjectBudget sets the fixed budget figures of a project.
	UpdateProjectBudget(ctx context.Context, projectID string, schoolBudget, carryOverFunds decimal.Decimal) error
}
