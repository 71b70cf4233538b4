package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/dkovacs/codeshare/internal/api/middleware"
	"github.com/dkovacs/codeshare/internal/models"
	"github.com/dkovacs/codeshare/internal/permissions"
	"github.com/dkovacs/codeshare/pkg/types"
	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	db      *sql.DB
	queries *models.Queries
}

func NewDocumentHandler(db *sql.DB) *DocumentHandler {
	return &DocumentHandler{
		db:      db,
		queries: models.New(db),
	}
}

// DocumentResponse represents a document
type DocumentResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	FolderID  *string   `json:"folderId"`
	Name      string    `json:"name"`
	Content   string    `json:"content,omitempty"`
	Language  string    `json:"language,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDocumentResponse(d models.Document, includeContent bool) DocumentResponse {
	resp := DocumentResponse{
		ID:        d.ID,
		ProjectID: d.ProjectID,
		Name:      d.Name,
		Language:  d.Language,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.FolderID.Valid {
		resp.FolderID = &d.FolderID.String
	}
	if includeContent {
		resp.Content = d.Content
	}
	return resp
}

type CreateDocumentRequest struct {
	ProjectID string  `json:"projectId" binding:"required"`
	FolderID  *string `json:"folderId"`
	Name      string  `json:"name" binding:"required"`
	Content   string  `json:"content"`
	Language  string  `json:"language"`
}

type UpdateDocumentRequest struct {
	Name     *string `json:"name"`
	Language *string `json:"language"`
	FolderID *string `json:"folderId"`
}

type UpdateContentRequest struct {
	Content string `json:"content"`
}

// Create handles POST /v1/documents
func (h *DocumentHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req CreateDocumentRequest
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

	folderID := sql.NullString{}
	if req.FolderID != nil && *req.FolderID != "" {
		folderID = sql.NullString{String: *req.FolderID, Valid: true}
	}

	doc, err := h.queries.CreateDocument(c.Request.Context(), models.CreateDocumentParams{
		ID:        types.NewID(),
		ProjectID: req.ProjectID,
		FolderID:  folderID,
		Name:      req.Name,
		Content:   req.Content,
		Language:  req.Language,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to create document"})
		return
	}

	c.JSON(http.StatusCreated, toDocumentResponse(doc, true))
}

// List handles GET /v1/projects/:id/documents
func (h *DocumentHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	access, ok := loadProjectAccess(c, h.queries, c.Param("id"), userID)
	if !ok {
		return
	}
	if !access.canView() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "no access to project"})
		return
	}

	docs, err := h.queries.ListDocumentsByProject(c.Request.Context(), access.project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to list documents"})
		return
	}

	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d, false))
	}

	c.JSON(http.StatusOK, gin.H{"documents": out})
}

// Get handles GET /v1/documents/:id
func (h *DocumentHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	doc, permCtx, ok := h.loadDocument(c, c.Param("id"), userID)
	if !ok {
		return
	}
	if !permissions.ResolveViewPermission(permCtx) {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "no access to document"})
		return
	}

	c.JSON(http.StatusOK, toDocumentResponse(doc, true))
}

// UpdateContent handles PUT /v1/documents/:id/content
//
// This is the REST fallback for saving; live edits travel over the realtime
// gateway. Both paths apply the same edit permission decision.
func (h *DocumentHandler) UpdateContent(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	doc, permCtx, ok := h.loadDocument(c, c.Param("id"), userID)
	if !ok {
		return
	}

	decision := permissions.ResolveEditPermission(permCtx)
	if !decision.CanEdit {
		c.JSON(http.StatusForbidden, decision)
		return
	}

	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.queries.UpdateDocumentContent(c.Request.Context(), models.UpdateDocumentContentParams{
		Content: req.Content,
		ID:      doc.ID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to update document"})
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

// Update handles PUT /v1/documents/:id (rename, language, move to folder)
func (h *DocumentHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	doc, _, ok := h.loadDocument(c, c.Param("id"), userID)
	if !ok {
		return
	}

	access, ok := loadProjectAccess(c, h.queries, doc.ProjectID, userID)
	if !ok {
		return
	}
	if !access.canCreateContent() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "editor access required"})
		return
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	if req.Name != nil {
		doc.Name = *req.Name
	}
	if req.Language != nil {
		doc.Language = *req.Language
	}
	if req.FolderID != nil {
		if *req.FolderID == "" {
			doc.FolderID = sql.NullString{}
		} else {
			doc.FolderID = sql.NullString{String: *req.FolderID, Valid: true}
		}
	}

	err := h.queries.UpdateDocumentMeta(c.Request.Context(), models.UpdateDocumentMetaParams{
		Name:     doc.Name,
		Language: doc.Language,
		FolderID: doc.FolderID,
		ID:       doc.ID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to update document"})
		return
	}

	c.JSON(http.StatusOK, toDocumentResponse(doc, false))
}

// Delete handles DELETE /v1/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	doc, _, ok := h.loadDocument(c, c.Param("id"), userID)
	if !ok {
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

	if err := h.queries.DeleteDocument(c.Request.Context(), doc.ID); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to delete document"})
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

// Permissions handles GET /v1/documents/:id/permissions
//
// Returns the caller's effective decision so editors can be shown a
// read-only banner before they type.
func (h *DocumentHandler) Permissions(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	_, permCtx, ok := h.loadDocument(c, c.Param("id"), userID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, permissions.ResolveEditPermission(permCtx))
}

func (h *DocumentHandler) loadDocument(c *gin.Context, documentID, userID string) (models.Document, permissions.Context, bool) {
	doc, err := h.queries.GetDocumentByID(c.Request.Context(), documentID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "document not found"})
		return models.Document{}, permissions.Context{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to load document"})
		return models.Document{}, permissions.Context{}, false
	}

	permCtx, err := h.queries.GetPermissionContext(c.Request.Context(), documentID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to resolve permissions"})
		return models.Document{}, permissions.Context{}, false
	}

	return doc, permCtx, true
}
