package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/dkovacs/codeshare/internal/api/middleware"
	"github.com/dkovacs/codeshare/internal/models"
	"github.com/dkovacs/codeshare/pkg/types"
	"github.com/gin-gonic/gin"
)

type FolderHandler struct {
	db      *sql.DB
	queries *models.Queries
}

func NewFolderHandler(db *sql.DB) *FolderHandler {
	return &FolderHandler{
		db:      db,
		queries: models.New(db),
	}
}

// FolderResponse represents a folder
type FolderResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
}

func toFolderResponse(f models.Folder) FolderResponse {
	return FolderResponse{ID: f.ID, ProjectID: f.ProjectID, Name: f.Name}
}

type CreateFolderRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

type RenameFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create handles POST /v1/folders
func (h *FolderHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	access, ok := loadProjectAccess(c, h.queries, req.ProjectID, userID)
	if !ok {
		return
	}
	if !access.canCreateContent() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "editor access required"})
		return
	}

	folder, err := h.queries.CreateFolder(c.Request.Context(), models.CreateFolderParams{
		ID:        types.NewID(),
		ProjectID: req.ProjectID,
		Name:      req.Name,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to create folder"})
		return
	}

	c.JSON(http.StatusCreated, toFolderResponse(folder))
}

// List handles GET /v1/projects/:id/folders
func (h *FolderHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	access, ok := loadProjectAccess(c, h.queries, c.Param("id"), userID)
	if !ok {
		return
	}
	if !access.canView() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "no access to project"})
		return
	}

	folders, err := h.queries.ListFoldersByProject(c.Request.Context(), access.project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to list folders"})
		return
	}

	out := make([]FolderResponse, 0, len(folders))
	for _, f := range folders {
		out = append(out, toFolderResponse(f))
	}

	c.JSON(http.StatusOK, gin.H{"folders": out})
}

// Rename handles PUT /v1/folders/:id
func (h *FolderHandler) Rename(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	folder, access, ok := h.loadFolder(c, c.Param("id"), userID)
	if !ok {
		return
	}
	if !access.canCreateContent() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "editor access required"})
		return
	}

	var req RenameFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.queries.RenameFolder(c.Request.Context(), models.RenameFolderParams{
		Name: req.Name,
		ID:   folder.ID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to rename folder"})
		return
	}

	folder.Name = req.Name
	c.JSON(http.StatusOK, toFolderResponse(folder))
}

// Delete handles DELETE /v1/folders/:id
//
// Documents inside the folder survive; they move to the project root.
func (h *FolderHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	folder, access, ok := h.loadFolder(c, c.Param("id"), userID)
	if !ok {
		return
	}
	if !access.canManage() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "admin access required"})
		return
	}

	if err := h.queries.DeleteFolder(c.Request.Context(), folder.ID); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to delete folder"})
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

func (h *FolderHandler) loadFolder(c *gin.Context, folderID, userID string) (models.Folder, projectAccess, bool) {
	folder, err := h.queries.GetFolderByID(c.Request.Context(), folderID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "folder not found"})
		return models.Folder{}, projectAccess{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to load folder"})
		return models.Folder{}, projectAccess{}, false
	}

	access, ok := loadProjectAccess(c, h.queries, folder.ProjectID, userID)
	if !ok {
		return models.Folder{}, projectAccess{}, false
	}

	return folder, access, true
}
