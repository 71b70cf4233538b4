package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/dkovacs/codeshare/internal/api/middleware"
	"github.com/dkovacs/codeshare/internal/models"
	"github.com/dkovacs/codeshare/pkg/types"
	"github.com/gin-gonic/gin"
)

const defaultChatHistoryLimit = 100

type ChatHandler struct {
	db      *sql.DB
	queries *models.Queries
}

func NewChatHandler(db *sql.DB) *ChatHandler {
	return &ChatHandler{
		db:      db,
		queries: models.New(db),
	}
}

// ChatMessageResponse represents a persisted chat message
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	UserID    string    `json:"userId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// History handles GET /v1/projects/:id/chat
//
// Returns the most recent messages, oldest first, so clients can render the
// backlog before live messages start arriving over the gateway.
func (h *ChatHandler) History(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	access, ok := loadProjectAccess(c, h.queries, c.Param("id"), userID)
	if !ok {
		return
	}
	if !access.canView() {
		c.JSON(http.StatusForbidden, types.ErrorResponse{Error: "no access to project"})
		return
	}

	limit := int64(defaultChatHistoryLimit)
	if limitStr := c.Query("limit"); limitStr != "" {
		if n, err := strconv.ParseInt(limitStr, 10, 64); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}

	messages, err := h.queries.ListChatMessages(c.Request.Context(), models.ListChatMessagesParams{
		ProjectID: access.project.ID,
		Limit:     limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to list messages"})
		return
	}

	// The query returns newest first; reverse into chronological order.
	out := make([]ChatMessageResponse, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		out = append(out, ChatMessageResponse{
			ID:        m.ID,
			ProjectID: m.ProjectID,
			UserID:    m.UserID,
			Body:      m.Body,
			CreatedAt: m.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"messages": out})
}
