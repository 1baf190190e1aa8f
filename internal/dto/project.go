package dto

import (
	"time"

	"github.com/clubledger/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest creates a new scoping project.
type CreateProjectRequest struct {
	Name           string          `json:"name" binding:"required"`
	SchoolBudget   decimal.Decimal `json:"schoolBudget"`
	CarryOverFunds decimal.Decimal `json:"carryOverFunds"`
}

// UpdateProjectBudgetRequest updates the fixed budget figures.
type UpdateProjectBudgetRequest struct {
	SchoolBudget   decimal.Decimal `json:"schoolBudget"`
	CarryOverFunds decimal.Decimal `json:"carryOverFunds"`
}

// ProjectResponse is the API shape of one project.
type ProjectResponse struct {
	ProjectID      string          `json:"projectID"`
	Name           string          `json:"name"`
	SchoolBudget   decimal.Decimal `json:"schoolBudget"`
	CarryOverFunds decimal.Decimal `json:"carryOverFunds"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ProjectDetailResponse pairs a project with its settlement summary.
type ProjectDetailResponse struct {
	Project ProjectResponse        `json:"project"`
	Summary *domain.ProjectSummary `json:"summary,omitempty"`
}

// ToProjectResponse converts a domain project to its API shape.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:      p.ProjectID,
		Name:           p.Name,
		SchoolBudget:   p.SchoolBudget,
		CarryOverFunds: p.CarryOverFunds,
		CreatedAt:      p.CreatedAt,
	}
}
