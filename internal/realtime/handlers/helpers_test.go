package handlers

import (
	"context"

	"github.com/dkovacs/codeshare/internal/models"
	"github.com/dkovacs/codeshare/internal/permissions"
	"github.com/dkovacs/codeshare/pkg/wire"
)

type fakeRooms struct {
	rooms map[string]map[string]struct{}
}

func newFakeRooms() *fakeRooms {
	return &fakeRooms{rooms: make(map[string]map[string]struct{})}
}

func (f *fakeRooms) Join(socketID, roomKey string) {
	if f.rooms[roomKey] == nil {
		f.rooms[roomKey] = make(map[string]struct{})
	}
	f.rooms[roomKey][socketID] = struct{}{}
}

func (f *fakeRooms) LeaveAll(socketID string) []string {
	var left []string
	for roomKey, members := range f.rooms {
		if _, ok := members[socketID]; ok {
			delete(members, socketID)
			left = append(left, roomKey)
		}
	}
	return left
}

func (f *fakeRooms) MembersOf(roomKey string) []string {
	var result []string
	for socketID := range f.rooms[roomKey] {
		result = append(result, socketID)
	}
	return result
}

func (f *fakeRooms) Contains(socketID, roomKey string) bool {
	_, ok := f.rooms[roomKey][socketID]
	return ok
}

type fakePresence struct {
	info map[string]wire.RoomMember
}

func newFakePresence() *fakePresence {
	return &fakePresence{info: make(map[string]wire.RoomMember)}
}

func (f *fakePresence) MemberInfo(socketID string) (wire.RoomMember, bool) {
	m, ok := f.info[socketID]
	return m, ok
}

func (f *fakePresence) SetName(socketID, userName string) {
	m := f.info[socketID]
	m.SocketID = socketID
	m.UserName = userName
	f.info[socketID] = m
}

type fakePermissionStore struct {
	get func(ctx context.Context, documentID, userID string) (permissions.Context, error)
}

func (f fakePermissionStore) GetPermissionContext(ctx context.Context, documentID, userID string) (permissions.Context, error) {
	return f.get(ctx, documentID, userID)
}

type fakeChatStore struct {
	create func(ctx context.Context, arg models.CreateChatMessageParams) (models.ChatMessage, error)
}

func (f fakeChatStore) CreateChatMessage(ctx context.Context, arg models.CreateChatMessageParams) (models.ChatMessage, error) {
	if f.create == nil {
		return models.ChatMessage{ID: arg.ID, ProjectID: arg.ProjectID, UserID: arg.UserID, Body: arg.Body}, nil
	}
	return f.create(ctx, arg)
}
