package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clubledger/backend/internal/core/domain"
	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/dto"
	"github.com/clubledger/backend/internal/middleware"
)

// projectService manages scoping projects and the settlement summary.
type projectService struct {
	projectRepo portsrepo.ProjectRepository
	memberRepo  portsrepo.MemberRepository
	expenseRepo portsrepo.ExpenseRepository
}

// NewProjectService creates the project service.
func NewProjectService(projectRepo portsrepo.ProjectRepository, memberRepo portsrepo.MemberRepository, expenseRepo portsrepo.ExpenseRepository) portssvc.ProjectSvc {
	return &projectService{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		expenseRepo: expenseRepo,
	}
}

var _ portssvc.ProjectSvc = (*projectService)(nil)

// CreateProject inserts a new project with its fixed budget figures.
func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	project := domain.Project{
		ProjectID:      uuid.NewString(),
		Name:           req.Name,
		SchoolBudget:   req.SchoolBudget,
		CarryOverFunds: req.CarryOverFunds,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Project created",
		"project_id", project.ProjectID, "name", project.Name)
	return &project, nil
}

// GetProject retrieves one project.
func (s *projectService) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

// ListProjects returns all projects ordered by creation time.
func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.ListProjects(ctx)
}

// UpdateProjectBudget sets the fixed budget figures and returns the updated
// project.
func (s *projectService) UpdateProjectBudget(ctx context.Context, projectID string, req dto.UpdateProjectBudgetRequest) (*domain.Project, error) {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}
	if err := s.projectRepo.UpdateProjectBudget(ctx, projectID, req.SchoolBudget, req.CarryOverFunds); err != nil {
		return nil, fmt.Errorf("failed to update project budget: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Project budget updated",
		"project_id", projectID,
		"school_budget", req.SchoolBudget.String(), "carry_over_funds", req.CarryOverFunds.String())
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

// GetProjectSummary computes the settlement dashboard figures: total budget
// is the fixed budget plus carry-over plus collected dues; usage rate is
// expense over budget in percent, zero when there is no budget.
func (s *projectService) GetProjectSummary(ctx context.Context, projectID string) (*domain.ProjectSummary, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	dues, err := s.memberRepo.SumDepositsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum member deposits: %w", err)
	}
	totalExpense, err := s.expenseRepo.SumExpensesByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	totalBudget := project.SchoolBudget.Add(project.CarryOverFunds).Add(dues)
	usageRate := decimal.Zero
	if totalBudget.IsPositive() {
		usageRate = totalExpense.Div(totalBudget).Mul(decimal.NewFromInt(100)).Round(1)
	}

	return &domain.ProjectSummary{
		TotalBudget:  totalBudget,
		StudentDues:  dues,
		TotalExpense: totalExpense,
		Balance:      totalBudget.Sub(totalExpense),
		UsageRate:    usageRate,
	}, nil
}
