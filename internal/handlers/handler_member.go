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

// memberHandler handles HTTP requests for the dues roster.
type memberHandler struct {
	memberService portssvc.MemberSvc
}

// newMemberHandler creates a new memberHandler.
func newMemberHandler(memberService portssvc.MemberSvc) *memberHandler {
	return &memberHandler{
		memberService: memberService,
	}
}

// registerMemberRoutes adds roster routes to the group.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvc) {
	h := newMemberHandler(memberService)
	projects := rg.Group("/projects/:projectID")
	{
		projects.POST("/members", h.addMember)
		projects.GET("/members", h.listMembers)
	}
}

// addMember godoc
// @Summary Add a payer to the dues roster
// @Description Adds a member; names are unique within a project
// @Tags members
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param member body dto.AddMemberRequest true "Member"
// @Success 201 {object} domain.Member
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 409 {object} map[string]string "Member already exists"
// @Failure 500 {object} map[string]string "Failed to add member"
// @Router /projects/{projectID}/members [post]
func (h *memberHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	req := dto.AddMemberRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for addMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	member, err := h.memberService.AddMember(c.Request.Context(), projectID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Member already exists"})
		default:
			logger.Error("Failed to add member", slog.String("error", err.Error()), slog.String("project_id", projectID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
		}
		return
	}

	c.JSON(http.StatusCreated, member)
}

// listMembers godoc
// @Summary List the dues roster
// @Description Returns the payers of a project ordered by name
// @Tags members
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {array} domain.Member
// @Failure 500 {object} map[string]string "Failed to list members"
// @Router /projects/{projectID}/members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	members, err := h.memberService.ListMembers(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to list members", slog.String("error", err.Error()), slog.String("project_id", projectID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list members"})
		return
	}

	c.JSON(http.StatusOK, members)
}
