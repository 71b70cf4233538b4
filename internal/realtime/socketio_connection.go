package realtime

import (
	"github.com/dkovacs/codeshare/internal/logger"
	"github.com/dkovacs/codeshare/internal/realtime/handlers"
	"github.com/dkovacs/codeshare/pkg/wire"
	socket "github.com/zishang520/socket.io/servers/socket/v3"
)

func (s *SocketIOServer) handleConnection(client *socket.Socket, deps handlers.Deps) {
	socketID := string(client.Id())

	logger.Infof("Socket.IO connection attempt (socket ID: %s)", socketID)

	handshake := client.Handshake()

	authMap := handshake.Auth
	if len(authMap) == 0 {
		logger.Warnf("Socket.IO missing auth data (socket %s)", socketID)
		client.Emit("error", map[string]string{"message": "Missing authentication data"})
		client.Disconnect(true)
		return
	}

	var authPayload wire.SocketAuthPayload
	if err := decodeAny(authMap, &authPayload); err != nil {
		logger.Warnf("Socket.IO invalid auth data (socket %s): %v", socketID, err)
		client.Emit("error", map[string]string{"message": "Invalid authentication data"})
		client.Disconnect(true)
		return
	}

	handshakeAuth, err := handlers.ValidateSocketAuthPayload(authPayload)
	if err != nil {
		logger.Warnf("Socket.IO handshake auth rejected (socket %s): %v", socketID, err)
		client.Emit("error", map[string]string{"message": err.Error()})
		client.Disconnect(true)
		return
	}

	claims, err := s.jwtManager.VerifyToken(handshakeAuth.Token)
	if err != nil {
		logger.Warnf("Socket.IO invalid token (socket %s): %v", socketID, err)
		client.Emit("error", map[string]string{"message": "Invalid authentication token"})
		client.Disconnect(true)
		return
	}

	userID := claims.Subject
	userName := handshakeAuth.UserName
	if userName == "" {
		userName = claims.Name
	}

	socketData := &SocketData{
		UserID:   userID,
		UserName: userName,
		Socket:   client,
	}
	s.socketData.Store(socketID, socketData)

	logger.Infof("Socket.IO client ready (user: %s, socket: %s)", userID, socketID)

	s.registerClientHandlers(client, deps, socketID)
}
