package services

import (
	"context"

	"github.com/clubledger/backend/internal/core/domain"
	"github.com/clubledger/backend/internal/dto"
)

// ProjectSvc manages the scoping projects and their settlement summary.
type ProjectSvc interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProjectBudget(ctx context.Context, projectID string, req dto.UpdateProjectBudgetRequest) (*domain.Project, error)

	// GetProjectSummary computes total budget (fixed budget + carry-over +
	// dues), total expense, balance and usage rate.
	GetProjectSummary(ctx context.Context, projectID string) (*domain.ProjectSummary, error)
}
