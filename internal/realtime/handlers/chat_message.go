package handlers

import (
	"context"

	"github.com/dkovacs/codeshare/internal/logger"
	"github.com/dkovacs/codeshare/internal/models"
	"github.com/dkovacs/codeshare/pkg/wire"
)

// ChatMessage persists a project chat message and broadcasts it to the chat
// room. The broadcast includes the sender: clients render chat from the
// broadcast, not from local echo.
func ChatMessage(ctx context.Context, deps Deps, auth AuthContext, req wire.SendChatMessagePayload) EventResult {
	if req.ProjectID == "" || req.Message == "" {
		return EventResult{}
	}

	// Only sockets that joined the chat room may post to it.
	if !deps.Rooms().Contains(auth.SocketID(), req.ProjectID) {
		return EventResult{}
	}

	if _, err := deps.Chat().CreateChatMessage(ctx, models.CreateChatMessageParams{
		ID:        deps.NewID(),
		ProjectID: req.ProjectID,
		UserID:    auth.UserID(),
		Body:      req.Message,
	}); err != nil {
		// The realtime channel stays available even when persistence fails.
		logger.Warnf("Failed to persist chat message: %v", err)
	}

	event := wire.ChatMessageEvent{
		ProjectID: req.ProjectID,
		UserID:    auth.UserID(),
		UserName:  auth.UserName(),
		Message:   req.Message,
		SentAt:    deps.Now().UnixMilli(),
	}

	return NewEventResult(nil, []BroadcastInstruction{
		newRoomBroadcast(req.ProjectID, "chat-message", event),
	})
}
