package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/clubledger/backend/internal/apperrors"
	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/dto"
	"github.com/clubledger/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recordingHandler handles HTTP requests for raw income and expense rows.
type recordingHandler struct {
	recordingService portssvc.RecordingSvc
}

// newRecordingHandler creates a new recordingHandler.
func newRecordingHandler(recordingService portssvc.RecordingSvc) *recordingHandler {
	return &recordingHandler{
		recordingService: recordingService,
	}
}

// registerRecordingRoutes adds income/expense recording routes to the group.
func registerRecordingRoutes(rg *gin.RouterGroup, recordingService portssvc.RecordingSvc) {
	h := newRecordingHandler(recordingService)
	projects := rg.Group("/projects/:projectID")
	{
		projects.POST("/incomes", h.recordIncome)
		projects.GET("/incomes", h.listIncomes)
		projects.POST("/expenses", h.recordExpense)
		projects.GET("/expenses", h.listExpenses)
	}
}

// recordIncome godoc
// @Summary Record an income row
// @Description Stores a raw income row and posts the matching journal entry
// @Tags recording
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param income body dto.RecordIncomeRequest true "Income row"
// @Success 201 {object} dto.RecordResult
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to record income"
// @Router /projects/{projectID}/incomes [post]
func (h *recordingHandler) recordIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	req := dto.RecordIncomeRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for recordIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorName, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.recordingService.RecordIncome(c.Request.Context(), projectID, req, actorName)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		default:
			logger.Error("Failed to record income", slog.String("error", err.Error()), slog.String("project_id", projectID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record income"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// listIncomes godoc
// @Summary List income rows
// @Description Returns the raw income rows of a project
// @Tags recording
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {array} domain.BudgetEntry
// @Failure 500 {object} map[string]string "Failed to list incomes"
// @Router /projects/{projectID}/incomes [get]
func (h *recordingHandler) listIncomes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	entries, err := h.recordingService.ListIncomes(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to list incomes", slog.String("error", err.Error()), slog.String("project_id", projectID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list incomes"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// recordExpense godoc
// @Summary Record an expense row
// @Description Stores a raw expense row and posts the matching journal entry
// @Tags recording
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param expense body dto.RecordExpenseRequest true "Expense row"
// @Success 201 {object} dto.RecordResult
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Router /projects/{projectID}/expenses [post]
func (h *recordingHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	req := dto.RecordExpenseRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for recordExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorName, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.recordingService.RecordExpense(c.Request.Context(), projectID, req, actorName)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		default:
			logger.Error("Failed to record expense", slog.String("error", err.Error()), slog.String("project_id", projectID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record expense"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// listExpenses godoc
// @Summary List expense rows
// @Description Returns the raw expense rows of a project
// @Tags recording
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {array} domain.ExpenseRecord
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Router /projects/{projectID}/expenses [get]
func (h *recordingHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	expenses, err := h.recordingService.ListExpenses(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to list expenses", slog.String("error", err.Error()), slog.String("project_id", projectID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, expenses)
}
