package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clubledger/backend/internal/apperrors"
	"github.com/clubledger/backend/internal/core/domain"
	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/dto"
	"github.com/clubledger/backend/internal/handlers"
	"github.com/clubledger/backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectService) UpdateProjectBudget(ctx context.Context, projectID string, req dto.UpdateProjectBudgetRequest) (*domain.Project, error) {
	args := m.Called(ctx, projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) GetProjectSummary(ctx context.Context, projectID string) (*domain.ProjectSummary, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectSummary), args.Error(1)
}

var _ portssvc.ProjectSvc = (*MockProjectService)(nil)

// --- Test Suite ---
type ProjectHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockProjectService *MockProjectService
	jwtSecret          string
}

func (suite *ProjectHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "clubledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockProjectService = new(MockProjectService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterProjectRoutes(v1, suite.mockProjectService)
}

func (suite *ProjectHandlerTestSuite) authedRequest(method, url string, body []byte) *http.Request {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// --- Test Cases ---

func (suite *ProjectHandlerTestSuite) TestCreateProject_Success() {
	created := &domain.Project{
		ProjectID:      uuid.NewString(),
		Name:           "Spring Festival",
		SchoolBudget:   decimal.NewFromInt(500000),
		CarryOverFunds: decimal.NewFromInt(80000),
		CreatedAt:      time.Now().UTC(),
	}
	suite.mockProjectService.On("CreateProject",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateProjectRequest) bool {
			return req.Name == "Spring Festival" && req.SchoolBudget.Equal(decimal.NewFromInt(500000))
		}),
	).Return(created, nil).Once()

	body, _ := json.Marshal(dto.CreateProjectRequest{
		Name:           "Spring Festival",
		SchoolBudget:   decimal.NewFromInt(500000),
		CarryOverFunds: decimal.NewFromInt(80000),
	})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/projects", body))

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ProjectResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ProjectID, resp.ProjectID)
	suite.Equal("Spring Festival", resp.Name)
	suite.mockProjectService.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_DuplicateName() {
	suite.mockProjectService.On("CreateProject", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	body, _ := json.Marshal(dto.CreateProjectRequest{Name: "Spring Festival"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/projects", body))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_MissingName() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/projects", []byte(`{}`)))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProjectService.AssertNotCalled(suite.T(), "CreateProject", mock.Anything, mock.Anything)
}

func (suite *ProjectHandlerTestSuite) TestGetProject_NotFound() {
	suite.mockProjectService.On("GetProject", mock.Anything, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/projects/ghost", nil))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestGetProjectSummary_Success() {
	summary := &domain.ProjectSummary{
		TotalBudget:  decimal.NewFromInt(180),
		StudentDues:  decimal.NewFromInt(30),
		TotalExpense: decimal.NewFromInt(90),
		Balance:      decimal.NewFromInt(90),
		UsageRate:    decimal.NewFromFloat(50.0),
	}
	projectID := uuid.NewString()
	suite.mockProjectService.On("GetProjectSummary", mock.Anything, projectID).
		Return(summary, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/projects/"+projectID+"/summary", nil))

	suite.Equal(http.StatusOK, w.Code)

	var resp domain.ProjectSummary
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.NewFromInt(90)))
	suite.True(resp.UsageRate.Equal(decimal.NewFromFloat(50.0)))
}

func (suite *ProjectHandlerTestSuite) TestListProjects_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProjectService.AssertNotCalled(suite.T(), "ListProjects", mock.Anything)
}

// --- Run Test Suite ---
func TestProjectHandler(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
