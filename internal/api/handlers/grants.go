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

// GrantHandler manages the explicit per-user document and folder grants the
// permission resolver consults.
type GrantHandler struct {
	db      *sql.DB
	queries *models.Queries
}

func NewGrantHandler(db *sql.DB) *GrantHandler {
	return &GrantHandler{
		db:      db,
		queries: models.New(db),
	}
}

type GrantRequest struct {
	UserID  string `json:"userId" binding:"required"`
	CanEdit bool   `json:"canEdit"`
}

// UpsertDocumentGrant handles PUT /v1/documents/:id/grants
func (h *GrantHandler) UpsertDocumentGrant(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	documentID := c.Param("id")

	doc, err := h.queries.GetDocumentByID(c.Request.Context(), documentID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "document not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to load document"})
		return
	}

	access, ok := loadProjectAccess(c, h.queries, doc.ProjectID, userID)
	if !ok {
		return
	}
	if !access.canManage() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "admin access required"})
		return
	}

	var req GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	err = h.queries.UpsertDocumentGrant(c.Request.Context(), models.UpsertDocumentGrantParams{
		DocumentID: documentID,
		UserID:     req.UserID,
		CanEdit:    req.CanEdit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to save grant"})
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

// DeleteDocumentGrant handles DELETE /v1/documents/:id/grants/:userId
func (h *GrantHandler) DeleteDocumentGrant(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	documentID := c.Param("id")

	doc, err := h.queries.GetDocumentByID(c.Request.Context(), documentID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "document not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to load document"})
		return
	}

	access, ok := loadProjectAccess(c, h.queries, doc.ProjectID, userID)
	if !ok {
		return
	}
	if !access.canManage() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "admin access required"})
		return
	}

	err = h.queries.DeleteDocumentGrant(c.Request.Context(), models.DeleteDocumentGrantParams{
		DocumentID: documentID,
		UserID:     c.Param("userId"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to delete grant"})
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

// UpsertFolderGrant handles PUT /v1/folders/:id/grants
func (h *GrantHandler) UpsertFolderGrant(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	folderID := c.Param("id")

	folder, err := h.queries.GetFolderByID(c.Request.Context(), folderID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "folder not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to load folder"})
		return
	}

	access, ok := loadProjectAccess(c, h.queries, folder.ProjectID, userID)
	if !ok {
		return
	}
	if !access.canManage() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "admin access required"})
		return
	}

	var req GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	err = h.queries.UpsertFolderGrant(c.Request.Context(), models.UpsertFolderGrantParams{
		FolderID: folderID,
		UserID:   req.UserID,
		CanEdit:  req.CanEdit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to save grant"})
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

// DeleteFolderGrant handles DELETE /v1/folders/:id/grants/:userId
func (h *GrantHandler) DeleteFolderGrant(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	folderID := c.Param("id")

	folder, err := h.queries.GetFolderByID(c.Request.Context(), folderID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "folder not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to load folder"})
		return
	}

	access, ok := loadProjectAccess(c, h.queries, folder.ProjectID, userID)
	if !ok {
		return
	}
	if !access.canManage() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "admin access required"})
		return
	}

	err = h.queries.DeleteFolderGrant(c.Request.Context(), models.DeleteFolderGrantParams{
		FolderID: folderID,
		UserID:   c.Param("userId"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to delete grant"})
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}
