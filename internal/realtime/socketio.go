// Package realtime is the collaboration gateway: it accepts Socket.IO
// connections, authenticates them, tracks room membership, and relays
// document edits, cursor positions, and chat messages between clients.
package realtime

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/dkovacs/codeshare/internal/crypto"
	"github.com/dkovacs/codeshare/internal/logger"
	"github.com/dkovacs/codeshare/internal/models"
	"github.com/dkovacs/codeshare/internal/realtime/handlers"
	pkgtypes "github.com/dkovacs/codeshare/pkg/types"
	"github.com/dkovacs/codeshare/pkg/wire"
	"github.com/gin-gonic/gin"
	socket "github.com/zishang520/socket.io/servers/socket/v3"
	sockettypes "github.com/zishang520/socket.io/v3/pkg/types"
)

// SocketIOServer wraps the Socket.IO server and the room registry.
type SocketIOServer struct {
	db         *sql.DB
	jwtManager *crypto.JWTManager
	server     *socket.Server
	socketData sync.Map // socket ID -> *SocketData
	rooms      *RoomRegistry
}

// NewSocketIOServer creates the realtime gateway server.
func NewSocketIOServer(db *sql.DB, jwtManager *crypto.JWTManager) *SocketIOServer {
	opts := socket.DefaultServerOptions()

	opts.SetCors(&sockettypes.Cors{
		Origin:      "*",
		Credentials: false,
	})

	// SocketIOPingInterval defines how frequently the server pings clients to
	// detect stale/disconnected sockets. This bounds how quickly other room
	// members see a user-left notice after an abrupt tab close.
	const SocketIOPingInterval = 5 * time.Second

	// SocketIOPingTimeout defines how long the server waits before
	// considering a socket dead (no pong received).
	const SocketIOPingTimeout = 15 * time.Second

	opts.SetPingTimeout(SocketIOPingTimeout)
	opts.SetPingInterval(SocketIOPingInterval)

	opts.SetPath("/v1/realtime")

	server := socket.NewServer(nil, opts)

	s := &SocketIOServer{
		db:         db,
		jwtManager: jwtManager,
		server:     server,
		socketData: sync.Map{},
		rooms:      NewRoomRegistry(),
	}

	s.setupHandlers()

	return s
}

// SocketData stores connection metadata for each socket.
type SocketData struct {
	UserID   string
	UserName string
	Socket   *socket.Socket
}

// setupHandlers configures Socket.IO event handlers.
func (s *SocketIOServer) setupHandlers() {
	queries := models.New(s.db)
	deps := handlers.NewDeps(s.rooms, s, queries, queries, time.Now, pkgtypes.NewID)

	s.server.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		s.handleConnection(client, deps)
	})
}

func decodeAny(input any, out any) error {
	raw, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func getFirstAnyWithAck(data []any) (any, func(...any)) {
	var ack func(...any)
	if len(data) == 0 {
		return nil, nil
	}
	if cb, ok := data[len(data)-1].(func(...any)); ok {
		ack = cb
		data = data[:len(data)-1]
	} else if cb, ok := data[len(data)-1].(socket.Ack); ok {
		ack = func(args ...any) {
			cb(args, nil)
		}
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return nil, ack
	}
	return data[0], ack
}

// getSocketData retrieves socket metadata by socket ID.
func (s *SocketIOServer) getSocketData(socketID string) *SocketData {
	if data, ok := s.socketData.Load(socketID); ok {
		if sd, ok := data.(*SocketData); ok {
			return sd
		}
	}
	return &SocketData{} // Return empty struct if not found
}

// MemberInfo implements handlers.Presence.
func (s *SocketIOServer) MemberInfo(socketID string) (wire.RoomMember, bool) {
	data, ok := s.socketData.Load(socketID)
	if !ok {
		return wire.RoomMember{}, false
	}
	sd, ok := data.(*SocketData)
	if !ok {
		return wire.RoomMember{}, false
	}
	return wire.RoomMember{
		SocketID: socketID,
		UserID:   sd.UserID,
		UserName: sd.UserName,
	}, true
}

// SetName implements handlers.Presence. The display name can be refreshed by
// a join-document event. Stored SocketData values are immutable; a rename
// stores a replacement struct.
func (s *SocketIOServer) SetName(socketID, userName string) {
	if data, ok := s.socketData.Load(socketID); ok {
		if sd, ok := data.(*SocketData); ok && sd.UserName != userName {
			next := *sd
			next.UserName = userName
			s.socketData.Store(socketID, &next)
		}
	}
}

// emitToRoom sends an event to every member of a room, optionally skipping
// the originating socket.
func (s *SocketIOServer) emitToRoom(roomKey, event string, payload any, skipSocketID string) {
	for _, socketID := range s.rooms.MembersOf(roomKey) {
		if skipSocketID != "" && socketID == skipSocketID {
			continue
		}
		sd := s.getSocketData(socketID)
		if sd.Socket == nil {
			continue
		}
		logger.Tracef("Emitting %s to socket %s (room %s)", event, socketID, roomKey)
		sd.Socket.Emit(event, payload)
	}
}

// emitToAll sends an event to every connected socket.
func (s *SocketIOServer) emitToAll(event string, payload any, skipSocketID string) {
	s.socketData.Range(func(key, value any) bool {
		if skipSocketID != "" && key == skipSocketID {
			return true
		}
		sd, ok := value.(*SocketData)
		if !ok || sd.Socket == nil {
			return true
		}
		sd.Socket.Emit(event, payload)
		return true
	})
}

// HandleSocketIO creates a Gin handler for the Socket.IO endpoint.
func (s *SocketIOServer) HandleSocketIO() gin.HandlerFunc {
	httpHandler := s.server.ServeHandler(nil)

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "false")

		if c.Request.Method == "OPTIONS" {
			c.Status(http.StatusOK)
			return
		}

		logger.Tracef("Socket.IO request: %s %s", c.Request.Method, c.Request.URL.Path)

		httpHandler.ServeHTTP(c.Writer, c.Request)
	}
}

// Close shuts down the Socket.IO server.
func (s *SocketIOServer) Close() error {
	s.server.Close(nil)
	return nil
}
