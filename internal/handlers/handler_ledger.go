package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for the ledger projection.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ledgerService portssvc.LedgerSvc) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ledgerService,
	}
}

// registerLedgerRoutes adds the ledger route to the group.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := newLedgerHandler(ledgerService)
	rg.GET("/projects/:projectID/ledger", h.getLedger)
}

// getLedger godoc
// @Summary Get the ledger projection of a project
// @Description Returns the signed, time-ordered cash view plus the running total
// @Tags ledger
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.LedgerResponse
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Router /projects/{projectID}/ledger [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	ledger, err := h.ledgerService.GetLedger(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to build ledger", slog.String("error", err.Error()), slog.String("project_id", projectID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build ledger"})
		return
	}

	c.JSON(http.StatusOK, ledger)
}
