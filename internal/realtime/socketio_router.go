package realtime

import (
	"context"

	"github.com/dkovacs/codeshare/internal/realtime/handlers"
	socket "github.com/zishang520/socket.io/servers/socket/v3"
)

func (s *SocketIOServer) emitHandlerResult(callerSocketID string, result handlers.EventResult) {
	if reply := result.Reply(); reply != nil {
		sd := s.getSocketData(callerSocketID)
		if sd.Socket != nil {
			sd.Socket.Emit(reply.Event(), reply.Payload())
		}
	}

	for _, bc := range result.Broadcasts() {
		skipSocketID := ""
		if bc.SkipSelf() {
			skipSocketID = callerSocketID
		}
		if bc.IsGlobal() {
			s.emitToAll(bc.Event(), bc.Payload(), skipSocketID)
			continue
		}
		s.emitToRoom(bc.RoomKey(), bc.Event(), bc.Payload(), skipSocketID)
	}
}

func (s *SocketIOServer) authContext(socketID string) handlers.AuthContext {
	sd := s.getSocketData(socketID)
	return handlers.NewAuthContext(sd.UserID, sd.UserName, socketID)
}

func onTypedEvent[Req any](
	s *SocketIOServer,
	client *socket.Socket,
	event string,
	deps handlers.Deps,
	handler func(handlers.Deps, handlers.AuthContext, Req) handlers.EventResult,
) {
	client.On(event, func(data ...any) {
		raw, _ := getFirstAnyWithAck(data)

		var req Req
		_ = decodeAny(raw, &req)

		result := handler(deps, s.authContext(string(client.Id())), req)
		s.emitHandlerResult(string(client.Id()), result)
	})
}

func onTypedEventCtx[Req any](
	s *SocketIOServer,
	client *socket.Socket,
	event string,
	deps handlers.Deps,
	handler func(context.Context, handlers.Deps, handlers.AuthContext, Req) handlers.EventResult,
) {
	client.On(event, func(data ...any) {
		raw, _ := getFirstAnyWithAck(data)

		var req Req
		_ = decodeAny(raw, &req)

		result := handler(context.Background(), deps, s.authContext(string(client.Id())), req)
		s.emitHandlerResult(string(client.Id()), result)
	})
}
