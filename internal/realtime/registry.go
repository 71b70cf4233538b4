package realtime

import (
	"sync"
)

// RoomRegistry tracks which connections belong to which broadcast rooms.
// Rooms are keyed by document id (editing rooms) or project id (chat rooms)
// and are created lazily on first join. Empty rooms are pruned eagerly; an
// absent room is indistinguishable from an empty one.
//
// Socket.IO event callbacks run on multiple goroutines, so all access goes
// through the mutex.
type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[string]map[string]struct{} // roomKey -> socketID set
	conns map[string]map[string]struct{} // socketID -> roomKey set
}

// NewRoomRegistry creates an empty room registry.
func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms: make(map[string]map[string]struct{}),
		conns: make(map[string]map[string]struct{}),
	}
}

// Join adds a connection to a room, creating the room if needed. Joining a
// room the connection is already in is a no-op.
func (r *RoomRegistry) Join(socketID, roomKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[roomKey]
	if !ok {
		members = make(map[string]struct{})
		r.rooms[roomKey] = members
	}
	members[socketID] = struct{}{}

	joined, ok := r.conns[socketID]
	if !ok {
		joined = make(map[string]struct{})
		r.conns[socketID] = joined
	}
	joined[roomKey] = struct{}{}
}

// Leave removes a connection from a room. Leaving a room the connection is
// not in is a no-op.
func (r *RoomRegistry) Leave(socketID, roomKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leaveLocked(socketID, roomKey)
}

func (r *RoomRegistry) leaveLocked(socketID, roomKey string) {
	if members, ok := r.rooms[roomKey]; ok {
		delete(members, socketID)
		if len(members) == 0 {
			delete(r.rooms, roomKey)
		}
	}
	if joined, ok := r.conns[socketID]; ok {
		delete(joined, roomKey)
		if len(joined) == 0 {
			delete(r.conns, socketID)
		}
	}
}

// LeaveAll removes the connection from every room it belongs to and returns
// the room keys it left. Invoked once on disconnect.
func (r *RoomRegistry) LeaveAll(socketID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	joined, ok := r.conns[socketID]
	if !ok {
		return nil
	}

	left := make([]string, 0, len(joined))
	for roomKey := range joined {
		left = append(left, roomKey)
	}
	for _, roomKey := range left {
		r.leaveLocked(socketID, roomKey)
	}
	return left
}

// MembersOf returns a snapshot of the connections currently in a room. The
// order is unspecified. An unknown room yields an empty slice.
func (r *RoomRegistry) MembersOf(roomKey string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.rooms[roomKey]
	result := make([]string, 0, len(members))
	for socketID := range members {
		result = append(result, socketID)
	}
	return result
}

// Contains reports whether a connection is currently in a room.
func (r *RoomRegistry) Contains(socketID, roomKey string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.rooms[roomKey][socketID]
	return ok
}

// Rooms returns a snapshot of the rooms a connection belongs to.
func (r *RoomRegistry) Rooms(socketID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	joined := r.conns[socketID]
	result := make([]string, 0, len(joined))
	for roomKey := range joined {
		result = append(result, roomKey)
	}
	return result
}
