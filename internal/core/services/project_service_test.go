package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/clubledger/backend/internal/apperrors"
	"github.com/clubledger/backend/internal/core/domain"
	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/core/services"
	"github.com/clubledger/backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	mockProjectRepo *MockProjectRepository
	mockMemberRepo  *MockMemberRepository
	mockExpenseRepo *MockExpenseRepository
	service         portssvc.ProjectSvc
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.service = services.NewProjectService(suite.mockProjectRepo, suite.mockMemberRepo, suite.mockExpenseRepo)
}

func (suite *ProjectServiceTestSuite) TestCreateProject_Success() {
	suite.mockProjectRepo.On("SaveProject", mock.Anything, mock.AnythingOfType("domain.Project")).Return(nil).Once()

	project, err := suite.service.CreateProject(context.Background(), dto.CreateProjectRequest{
		Name:           "Spring Festival",
		SchoolBudget:   decimal.NewFromInt(500000),
		CarryOverFunds: decimal.NewFromInt(80000),
	})

	suite.Require().NoError(err)
	suite.NotEmpty(project.ProjectID)
	suite.Equal("Spring Festival", project.Name)
	suite.True(project.SchoolBudget.Equal(decimal.NewFromInt(500000)))
	suite.WithinDuration(time.Now(), project.CreatedAt, time.Second)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_DuplicateName() {
	suite.mockProjectRepo.On("SaveProject", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	project, err := suite.service.CreateProject(context.Background(), dto.CreateProjectRequest{Name: "Spring Festival"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(project)
}

func (suite *ProjectServiceTestSuite) TestUpdateProjectBudget_NotFound() {
	suite.mockProjectRepo.On("FindProjectByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateProjectBudget(context.Background(), "ghost", dto.UpdateProjectBudgetRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "UpdateProjectBudget", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestUpdateProjectBudget_Success() {
	existing := &domain.Project{ProjectID: "project-1", Name: "Spring Festival"}
	updated := &domain.Project{
		ProjectID:      "project-1",
		Name:           "Spring Festival",
		SchoolBudget:   decimal.NewFromInt(600000),
		CarryOverFunds: decimal.NewFromInt(90000),
	}
	suite.mockProjectRepo.On("FindProjectByID", mock.Anything, "project-1").Return(existing, nil).Once()
	suite.mockProjectRepo.On("UpdateProjectBudget", mock.Anything, "project-1", decimal.NewFromInt(600000), decimal.NewFromInt(90000)).Return(nil).Once()
	suite.mockProjectRepo.On("FindProjectByID", mock.Anything, "project-1").Return(updated, nil).Once()

	project, err := suite.service.UpdateProjectBudget(context.Background(), "project-1", dto.UpdateProjectBudgetRequest{
		SchoolBudget:   decimal.NewFromInt(600000),
		CarryOverFunds: decimal.NewFromInt(90000),
	})

	suite.Require().NoError(err)
	suite.True(project.SchoolBudget.Equal(decimal.NewFromInt(600000)))
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestGetProjectSummary() {
	project := &domain.Project{
		ProjectID:      "project-1",
		SchoolBudget:   decimal.NewFromInt(100),
		CarryOverFunds: decimal.NewFromInt(50),
	}
	suite.mockProjectRepo.On("FindProjectByID", mock.Anything, "project-1").Return(project, nil).Once()
	suite.mockMemberRepo.On("SumDepositsByProject", mock.Anything, "project-1").Return(decimal.NewFromInt(30), nil).Once()
	suite.mockExpenseRepo.On("SumExpensesByProject", mock.Anything, "project-1").Return(decimal.NewFromInt(90), nil).Once()

	summary, err := suite.service.GetProjectSummary(context.Background(), "project-1")

	suite.Require().NoError(err)
	suite.True(summary.TotalBudget.Equal(decimal.NewFromInt(180)))
	suite.True(summary.StudentDues.Equal(decimal.NewFromInt(30)))
	suite.True(summary.TotalExpense.Equal(decimal.NewFromInt(90)))
	suite.True(summary.Balance.Equal(decimal.NewFromInt(90)))
	suite.True(summary.UsageRate.Equal(decimal.NewFromFloat(50.0)))
}

func (suite *ProjectServiceTestSuite) TestGetProjectSummary_ZeroBudget() {
	project := &domain.Project{ProjectID: "project-1"}
	suite.mockProjectRepo.On("FindProjectByID", mock.Anything, "project-1").Return(project, nil).Once()
	suite.mockMemberRepo.On("SumDepositsByProject", mock.Anything, "project-1").Return(decimal.Zero, nil).Once()
	suite.mockExpenseRepo.On("SumExpensesByProject", mock.Anything, "project-1").Return(decimal.NewFromInt(40), nil).Once()

	summary, err := suite.service.GetProjectSummary(context.Background(), "project-1")

	suite.Require().NoError(err)
	// Usage rate stays at zero instead of dividing by a zero budget.
	suite.True(summary.UsageRate.IsZero())
	suite.True(summary.Balance.Equal(decimal.NewFromInt(-40)))
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
