package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/dkovacs/codeshare/internal/models"
	"github.com/dkovacs/codeshare/internal/permissions"
	"github.com/dkovacs/codeshare/pkg/types"
	"github.com/gin-gonic/gin"
)

// projectAccess is the caller's standing with respect to one project. It
// backs the coarse REST authorization checks; fine-grained document edit
// decisions go through the permissions resolver instead.
type projectAccess struct {
	project models.Project
	isOwner bool
	role    permissions.Role
}

// loadProjectAccess loads a project and the caller's role in it. On failure
// it writes the HTTP error response and returns ok=false.
func loadProjectAccess(c *gin.Context, queries *models.Queries, projectID, userID string) (projectAccess, bool) {
	project, err := queries.GetProjectByID(c.Request.Context(), projectID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "project not found"})
		return projectAccess{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to load project"})
		return projectAccess{}, false
	}

	access := projectAccess{
		project: project,
		isOwner: project.OwnerID == userID,
	}

	member, err := queries.GetProjectMember(c.Request.Context(), models.GetProjectMemberParams{
		ProjectID: projectID,
		UserID:    userID,
	})
	switch {
	case err == nil:
		access.role = permissions.NormalizeRole(member.Role)
	case errors.Is(err, sql.ErrNoRows):
		// not a member
	default:
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to load membership"})
		return projectAccess{}, false
	}

	return access, true
}

func (a projectAccess) canView() bool {
	return a.isOwner || a.role != permissions.RoleNone || a.project.IsPublic
}

// canManage gates structural operations: members, invitations, grants,
// project settings, deletions.
func (a projectAccess) canManage() bool {
	return a.isOwner || a.role == permissions.RoleAdmin
}

// canCreateContent gates creating folders and documents.
func (a projectAccess) canCreateContent() bool {
	return a.isOwner || a.role == permissions.RoleAdmin || a.role == permissions.RoleEditor
}
