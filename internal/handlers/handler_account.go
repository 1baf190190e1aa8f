package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.ChartOfAccountsSvc
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(accountService portssvc.ChartOfAccountsSvc) *accountHandler {
	return &accountHandler{
		accountService: accountService,
	}
}

// registerAccountRoutes adds chart-of-accounts routes to the given group.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.ChartOfAccountsSvc) {
	h := newAccountHandler(accountService)
	rg.GET("/accounts", h.listAccounts)
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Returns the fixed seeded chart, ordered by code
// @Tags accounts
// @Produce json
// @Success 200 {array} domain.Account
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, accounts)
}
