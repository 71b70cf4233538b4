package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dkovacs/codeshare/internal/api/middleware"
	"github.com/dkovacs/codeshare/internal/models"
	"github.com/dkovacs/codeshare/internal/permissions"
	"github.com/dkovacs/codeshare/pkg/types"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	db      *sql.DB
	queries *models.Queries
}

func NewProjectHandler(db *sql.DB) *ProjectHandler {
	return &ProjectHandler{
		db:      db,
		queries: models.New(db),
	}
}

// ProjectResponse represents a project
type ProjectResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProjectResponse(p models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		IsPublic:    p.IsPublic,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// MemberResponse represents a project member
type MemberResponse struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"isPublic"`
}

// AddMemberRequest identifies the new member by id or, for users picked from
// an email field in the UI, by their account email.
type AddMemberRequest struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role" binding:"required"`
}

// Create handles POST /v1/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.queries.CreateProject(c.Request.Context(), models.CreateProjectParams{
		ID:          types.NewID(),
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, toProjectResponse(project))
}

// List handles GET /v1/projects
func (h *ProjectHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	projects, err := h.queries.ListProjectsForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to list projects"})
		return
	}

	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}

	c.JSON(http.StatusOK, gin.H{"projects": out})
}

// Get handles GET /v1/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	access, ok := loadProjectAccess(c, h.queries, c.Param("id"), userID)
	if !ok {
		return
	}
	if !access.canView() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "no access to project"})
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(access.project))
}

// Update handles PUT /v1/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	access, ok := loadProjectAccess(c, h.queries, c.Param("id"), userID)
	if !ok {
		return
	}
	if !access.canManage() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "admin access required"})
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	project := access.project
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.IsPublic != nil {
		project.IsPublic = *req.IsPublic
	}

	err := h.queries.UpdateProject(c.Request.Context(), models.UpdateProjectParams{
		Name:        project.Name,
		Description: project.Description,
		IsPublic:    project.IsPublic,
		ID:          project.ID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to update project"})
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

// Delete handles DELETE /v1/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	access, ok := loadProjectAccess(c, h.queries, c.Param("id"), userID)
	if !ok {
		return
	}
	// Only the owner can delete a project; admins cannot.
	if !access.isOwner {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "owner access required"})
		return
	}

	if err := h.queries.DeleteProject(c.Request.Context(), access.project.ID); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

// ListMembers handles GET /v1/projects/:id/members
func (h *ProjectHandler) ListMembers(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	access, ok := loadProjectAccess(c, h.queries, c.Param("id"), userID)
	if !ok {
		return
	}
	if !access.canView() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "no access to project"})
		return
	}

	members, err := h.queries.ListProjectMembers(c.Request.Context(), access.project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to list members"})
		return
	}

	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, MemberResponse{UserID: m.UserID, Role: m.Role})
	}

	c.JSON(http.StatusOK, gin.H{"members": out})
}

// AddMember handles POST /v1/projects/:id/members
func (h *ProjectHandler) AddMember(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	access, ok := loadProjectAccess(c, h.queries, c.Param("id"), userID)
	if !ok {
		return
	}
	if !access.canManage() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "admin access required"})
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	role := permissions.NormalizeRole(req.Role)
	if role == permissions.RoleNone {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid role"})
		return
	}

	targetID := req.UserID
	if targetID == "" {
		if req.Email == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "userId or email is required"})
			return
		}
		user, err := h.queries.GetUserByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "no account with that email"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to look up user"})
			return
		}
		targetID = user.ID
	}

	err := h.queries.AddProjectMember(c.Request.Context(), models.AddProjectMemberParams{
		ProjectID: access.project.ID,
		UserID:    targetID,
		Role:      string(role),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to add member"})
		return
	}

	c.JSON(http.StatusOK, MemberResponse{UserID: targetID, Role: string(role)})
}

// RemoveMember handles DELETE /v1/projects/:id/members/:userId
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	targetID := c.Param("userId")

	access, ok := loadProjectAccess(c, h.queries, c.Param("id"), userID)
	if !ok {
		return
	}
	// Members may remove themselves; otherwise admin access is required.
	if targetID != userID && !access.canManage() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "admin access required"})
		return
	}

	err := h.queries.RemoveProjectMember(c.Request.Context(), models.RemoveProjectMemberParams{
		ProjectID: access.project.ID,
		UserID:    targetID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to remove member"})
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}
