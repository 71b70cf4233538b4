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

// invitationTTL bounds how long a pending invitation stays redeemable.
const invitationTTL = 7 * 24 * time.Hour

type InvitationHandler struct {
	db      *sql.DB
	queries *models.Queries
}

func NewInvitationHandler(db *sql.DB) *InvitationHandler {
	return &InvitationHandler{
		db:      db,
		queries: models.New(db),
	}
}

// InvitationResponse represents an invitation
type InvitationResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token,omitempty"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func toInvitationResponse(inv models.Invitation, includeToken bool) InvitationResponse {
	resp := InvitationResponse{
		ID:        inv.ID,
		ProjectID: inv.ProjectID,
		Email:     inv.Email,
		Role:      inv.Role,
		Status:    inv.Status,
		ExpiresAt: inv.ExpiresAt,
	}
	if includeToken {
		resp.Token = inv.Token
	}
	return resp
}

type CreateInvitationRequest struct {
	Email string `json:"email" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

// Create handles POST /v1/projects/:id/invitations
func (h *InvitationHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	access, ok := loadProjectAccess(c, h.queries, c.Param("id"), userID)
	if !ok {
		return
	}
	if !access.canManage() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "admin access required"})
		return
	}

	var req CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	role := permissions.NormalizeRole(req.Role)
	if role == permissions.RoleNone {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid role"})
		return
	}

	inv, err := h.queries.CreateInvitation(c.Request.Context(), models.CreateInvitationParams{
		ID:        types.NewID(),
		ProjectID: access.project.ID,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Role:      string(role),
		Token:     types.NewID(),
		ExpiresAt: time.Now().Add(invitationTTL),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to create invitation"})
		return
	}

	c.JSON(http.StatusCreated, toInvitationResponse(inv, true))
}

// ListByProject handles GET /v1/projects/:id/invitations
func (h *InvitationHandler) ListByProject(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	access, ok := loadProjectAccess(c, h.queries, c.Param("id"), userID)
	if !ok {
		return
	}
	if !access.canManage() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "admin access required"})
		return
	}

	invs, err := h.queries.ListInvitationsByProject(c.Request.Context(), access.project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to list invitations"})
		return
	}

	out := make([]InvitationResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toInvitationResponse(inv, true))
	}

	c.JSON(http.StatusOK, gin.H{"invitations": out})
}

// ListMine handles GET /v1/invitations
//
// Lists pending invitations addressed to the caller's email.
func (h *InvitationHandler) ListMine(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	user, err := h.queries.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to load user"})
		return
	}

	invs, err := h.queries.ListInvitationsByEmail(c.Request.Context(), strings.ToLower(user.Email))
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to list invitations"})
		return
	}

	out := make([]InvitationResponse, 0, len(invs))
	for _, inv := range invs {
		if inv.Status != models.InvitationPending {
			continue
		}
		out = append(out, toInvitationResponse(inv, true))
	}

	c.JSON(http.StatusOK, gin.H{"invitations": out})
}

// Accept handles POST /v1/invitations/:token/accept
func (h *InvitationHandler) Accept(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	inv, ok := h.loadPendingForCaller(c, userID)
	if !ok {
		return
	}

	err := h.queries.AddProjectMember(c.Request.Context(), models.AddProjectMemberParams{
		ProjectID: inv.ProjectID,
		UserID:    userID,
		Role:      inv.Role,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to join project"})
		return
	}

	_, err = h.queries.UpdateInvitationStatus(c.Request.Context(), models.UpdateInvitationStatusParams{
		Status: models.InvitationAccepted,
		ID:     inv.ID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to update invitation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"projectId": inv.ProjectID, "role": inv.Role})
}

// Decline handles POST /v1/invitations/:token/decline
func (h *InvitationHandler) Decline(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	inv, ok := h.loadPendingForCaller(c, userID)
	if !ok {
		return
	}

	_, err := h.queries.UpdateInvitationStatus(c.Request.Context(), models.UpdateInvitationStatusParams{
		Status: models.InvitationDeclined,
		ID:     inv.ID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to update invitation"})
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

func (h *InvitationHandler) loadPendingForCaller(c *gin.Context, userID string) (models.Invitation, bool) {
	inv, err := h.queries.GetInvitationByToken(c.Request.Context(), c.Param("token"))
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "invitation not found"})
		return models.Invitation{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to load invitation"})
		return models.Invitation{}, false
	}

	if inv.Status != models.InvitationPending {
		c.JSON(http.StatusConflict, types.ErrorResponse{Error: "invitation already handled"})
		return models.Invitation{}, false
	}
	if time.Now().After(inv.ExpiresAt) {
		c.JSON(http.StatusGone, types.ErrorResponse{Error: "invitation expired"})
		return models.Invitation{}, false
	}

	user, err := h.queries.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to load user"})
		return models.Invitation{}, false
	}
	if !strings.EqualFold(user.Email, inv.Email) {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "invitation addressed to a different account"})
		return models.Invitation{}, false
	}

	return inv, true
}
