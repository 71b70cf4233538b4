package handlers

import (
	"context"
	"time"

	"github.com/dkovacs/codeshare/internal/models"
	"github.com/dkovacs/codeshare/internal/permissions"
	"github.com/dkovacs/codeshare/pkg/wire"
)

// RoomOps is the registry surface used by event handlers.
type RoomOps interface {
	Join(socketID, roomKey string)
	LeaveAll(socketID string) []string
	MembersOf(roomKey string) []string
	Contains(socketID, roomKey string) bool
}

// Presence resolves socket ids to user identity for room snapshots.
type Presence interface {
	MemberInfo(socketID string) (wire.RoomMember, bool)
	SetName(socketID, userName string)
}

// PermissionStore loads the fact snapshot for a permission decision.
type PermissionStore interface {
	GetPermissionContext(ctx context.Context, documentID, userID string) (permissions.Context, error)
}

// ChatStore persists project chat messages.
type ChatStore interface {
	CreateChatMessage(ctx context.Context, arg models.CreateChatMessageParams) (models.ChatMessage, error)
}

// Deps holds the narrow dependencies required by realtime event handlers.
type Deps struct {
	rooms    RoomOps
	presence Presence
	store    PermissionStore
	chat     ChatStore
	now      func() time.Time
	newID    func() string
}

// NewDeps builds a dependency bundle for handler calls.
func NewDeps(
	rooms RoomOps,
	presence Presence,
	store PermissionStore,
	chat ChatStore,
	now func() time.Time,
	newID func() string,
) Deps {
	return Deps{
		rooms:    rooms,
		presence: presence,
		store:    store,
		chat:     chat,
		now:      now,
		newID:    newID,
	}
}

func (d Deps) Rooms() RoomOps { return d.rooms }
func (d Deps) Presence() Presence { return d.presence }
func (d Deps) Store() PermissionStore { return d.store }
func (d Deps) Chat() ChatStore { return d.chat }
func (d Deps) Now() time.Time {
	if d.now != nil {
		return d.now()
	}
	return time.Now()
}
func (d Deps) NewID() string {
	if d.newID != nil {
		return d.newID()
	}
	return ""
}
