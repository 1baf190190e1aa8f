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

// archiveHandler handles HTTP requests for the archive-then-purge protocol.
type archiveHandler struct {
	archiveService portssvc.ArchiveSvc
}

// newArchiveHandler creates a new archiveHandler.
func newArchiveHandler(archiveService portssvc.ArchiveSvc) *archiveHandler {
	return &archiveHandler{
		archiveService: archiveService,
	}
}

// registerArchiveRoutes adds archive and purge routes to the group.
func registerArchiveRoutes(rg *gin.RouterGroup, archiveService portssvc.ArchiveSvc) {
	h := newArchiveHandler(archiveService)
	rg.POST("/projects/:projectID/archive", h.archiveProject)
	rg.POST("/projects/:projectID/purge", h.purgeProject)
	rg.GET("/archive-history", h.listArchiveHistory)
}

// archiveProject godoc
// @Summary Archive a project
// @Description Builds a point-in-time snapshot of every project-scoped row; read-only
// @Tags archive
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param archive body dto.ArchiveProjectRequest true "Archive reason"
// @Success 200 {object} dto.ArchiveProjectResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to archive project"
// @Router /projects/{projectID}/archive [post]
func (h *archiveHandler) archiveProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	req := dto.ArchiveProjectRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for archiveProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	archivedBy, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	filename, snapshot, err := h.archiveService.ArchiveProject(c.Request.Context(), projectID, archivedBy, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		default:
			logger.Error("Failed to archive project", slog.String("error", err.Error()), slog.String("project_id", projectID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive project"})
		}
		return
	}

	logger.Info("Project archived", slog.String("project_id", projectID), slog.String("filename", filename))
	c.JSON(http.StatusOK, dto.ArchiveProjectResponse{Filename: filename, Snapshot: snapshot})
}

// purgeProject godoc
// @Summary Purge a project
// @Description Deletes all project-scoped rows in one transaction, recording a purge trail row first
// @Tags archive
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param purge body dto.PurgeProjectRequest true "Purge parameters"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Failed to purge project"
// @Router /projects/{projectID}/purge [post]
func (h *archiveHandler) purgeProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	req := dto.PurgeProjectRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for purgeProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	archivedBy, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	params := dto.PurgeProjectParams{
		ProjectID:        projectID,
		ArchivedBy:       archivedBy,
		ArchiveReason:    req.ArchiveReason,
		Filename:         req.Filename,
		DeleteProjectRow: req.DeleteProjectRow,
	}

	if err := h.archiveService.PurgeProject(c.Request.Context(), params); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to purge project", slog.String("error", err.Error()), slog.String("project_id", projectID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purge project"})
		return
	}

	logger.Info("Project purged", slog.String("project_id", projectID))
	c.JSON(http.StatusOK, gin.H{"status": "purged"})
}

// listArchiveHistory godoc
// @Summary List the purge trail
// @Description Returns every recorded purge, newest first
// @Tags archive
// @Produce json
// @Success 200 {array} domain.ArchiveHistoryRecord
// @Failure 500 {object} map[string]string "Failed to list archive history"
// @Router /archive-history [get]
func (h *archiveHandler) listArchiveHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	records, err := h.archiveService.ListArchiveHistory(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list archive history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list archive history"})
		return
	}

	c.JSON(http.StatusOK, records)
}
