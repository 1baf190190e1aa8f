package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/clubledger/backend/internal/core/ports/services"
	"github.com/clubledger/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests for the formal journal.
type journalHandler struct {
	postingService portssvc.PostingSvc
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(postingService portssvc.PostingSvc) *journalHandler {
	return &journalHandler{
		postingService: postingService,
	}
}

// registerJournalRoutes adds the journal route to the group.
func registerJournalRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvc) {
	h := newJournalHandler(postingService)
	rg.GET("/projects/:projectID/journal", h.getProjectJournal)
}

// getProjectJournal godoc
// @Summary Get the journal of a project
// @Description Returns every posted entry with its two lines, ordered by transaction date
// @Tags journal
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {array} dto.JournalEntryWithLines
// @Failure 500 {object} map[string]string "Failed to retrieve journal"
// @Router /projects/{projectID}/journal [get]
func (h *journalHandler) getProjectJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	entries, err := h.postingService.GetProjectJournal(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to retrieve journal", slog.String("error", err.Error()), slog.String("project_id", projectID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
