package realtime

import (
	"github.com/dkovacs/codeshare/internal/logger"
	"github.com/dkovacs/codeshare/internal/realtime/handlers"
	"github.com/dkovacs/codeshare/pkg/wire"
	socket "github.com/zishang520/socket.io/servers/socket/v3"
)

func (s *SocketIOServer) registerClientHandlers(client *socket.Socket, deps handlers.Deps, socketID string) {
	// Room membership events (decode -> handler -> emit reply/broadcasts)
	onTypedEvent[wire.JoinDocumentPayload](s, client, "join-document", deps, handlers.JoinDocument)
	onTypedEvent[wire.JoinProjectChatPayload](s, client, "join-project-chat", deps, handlers.JoinProjectChat)
	onTypedEvent[wire.CursorChangePayload](s, client, "cursor-change", deps, handlers.CursorChange)

	// Events that hit the database take a context
	onTypedEventCtx[wire.CodeChangePayload](s, client, "code-change", deps, handlers.CodeChange)
	onTypedEventCtx[wire.SendChatMessagePayload](s, client, "send-chat-message", deps, handlers.ChatMessage)

	// Disconnection handler
	client.On("disconnect", func(data ...any) {
		sd := s.getSocketData(socketID)
		reason := ""
		if len(data) > 0 {
			if r, ok := data[0].(string); ok {
				reason = r
			}
		}
		logger.Infof(
			"User disconnected: %s (socket %s, reason: %s)",
			sd.UserID,
			socketID,
			reason,
		)

		result := handlers.DisconnectEffects(
			deps,
			handlers.NewAuthContext(sd.UserID, sd.UserName, socketID),
		)
		s.emitHandlerResult(socketID, result)

		s.socketData.Delete(socketID)
	})
}
