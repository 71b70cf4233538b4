package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/dkovacs/codeshare/internal/permissions"
	"github.com/dkovacs/codeshare/pkg/wire"
	"github.com/stretchr/testify/require"
)

func codeChangeDeps(rooms *fakeRooms, pc permissions.Context) Deps {
	store := fakePermissionStore{
		get: func(ctx context.Context, documentID, userID string) (permissions.Context, error) {
			return pc, nil
		},
	}
	now := time.UnixMilli(5000)
	return NewDeps(rooms, newFakePresence(), store, nil, func() time.Time { return now }, func() string { return "id" })
}

func TestCodeChange_BroadcastsExcludingSender(t *testing.T) {
	rooms := newFakeRooms()
	rooms.Join("sockA", "doc1")
	rooms.Join("sockB", "doc1")

	deps := codeChangeDeps(rooms, permissions.Context{IsOwner: true})

	res := CodeChange(context.Background(), deps, NewAuthContext("u1", "Alice", "sockA"), wire.CodeChangePayload{
		DocumentID: "doc1",
		Code:       "x",
		UserID:     "u1",
	})

	require.Nil(t, res.Reply())
	require.Len(t, res.Broadcasts(), 1)
	b := res.Broadcasts()[0]
	require.Equal(t, "code-update", b.Event())
	require.Equal(t, "doc1", b.RoomKey())
	require.True(t, b.SkipSelf())

	update, ok := b.Payload().(wire.CodeUpdateEvent)
	require.True(t, ok)
	require.Equal(t, "x", update.Code)
	require.Equal(t, int64(5000), update.Timestamp)
}

func TestCodeChange_EditorRootDocumentDenied(t *testing.T) {
	rooms := newFakeRooms()
	rooms.Join("sockA", "doc1")

	deps := codeChangeDeps(rooms, permissions.Context{MemberRole: permissions.RoleEditor})

	res := CodeChange(context.Background(), deps, NewAuthContext("u1", "Alice", "sockA"), wire.CodeChangePayload{
		DocumentID: "doc1",
		Code:       "x",
		UserID:     "u1",
	})

	require.Empty(t, res.Broadcasts())
	require.NotNil(t, res.Reply())
	require.Equal(t, "edit-denied", res.Reply().Event())

	denied, ok := res.Reply().Payload().(wire.EditDeniedEvent)
	require.True(t, ok)
	require.Equal(t, permissions.ReasonRootRequiresExplicit, denied.Reason)
	require.True(t, denied.CanView)
	require.False(t, denied.CanEdit)
}

func TestCodeChange_AdminRootDocumentAllowed(t *testing.T) {
	rooms := newFakeRooms()
	rooms.Join("sockA", "doc1")

	deps := codeChangeDeps(rooms, permissions.Context{MemberRole: permissions.RoleAdmin})

	res := CodeChange(context.Background(), deps, NewAuthContext("u1", "Alice", "sockA"), wire.CodeChangePayload{
		DocumentID: "doc1",
		Code:       "y",
		UserID:     "u1",
	})

	require.Nil(t, res.Reply())
	require.Len(t, res.Broadcasts(), 1)
}

func TestCodeChange_IgnoredWhenNotInRoom(t *testing.T) {
	deps := codeChangeDeps(newFakeRooms(), permissions.Context{IsOwner: true})

	res := CodeChange(context.Background(), deps, NewAuthContext("u1", "Alice", "sockA"), wire.CodeChangePayload{
		DocumentID: "doc1",
		Code:       "x",
		UserID:     "u1",
	})

	require.Nil(t, res.Reply())
	require.Empty(t, res.Broadcasts())
}

func TestCodeChange_MalformedPayloadDropped(t *testing.T) {
	deps := codeChangeDeps(newFakeRooms(), permissions.Context{IsOwner: true})

	res := CodeChange(context.Background(), deps, NewAuthContext("u1", "Alice", "sockA"), wire.CodeChangePayload{Code: "x"})
	require.Nil(t, res.Reply())
	require.Empty(t, res.Broadcasts())
}

func TestCursorChange_BroadcastsExcludingSender(t *testing.T) {
	rooms := newFakeRooms()
	rooms.Join("sockA", "doc1")
	deps := NewDeps(rooms, newFakePresence(), nil, nil, nil, nil)

	res := CursorChange(deps, NewAuthContext("u1", "Alice", "sockA"), wire.CursorChangePayload{
		DocumentID: "doc1",
		Position:   map[string]any{"line": 3.0, "ch": 7.0},
		UserID:     "u1",
		UserName:   "Alice",
	})

	require.Len(t, res.Broadcasts(), 1)
	b := res.Broadcasts()[0]
	require.Equal(t, "cursor-update", b.Event())
	require.True(t, b.SkipSelf())

	update, ok := b.Payload().(wire.CursorUpdateEvent)
	require.True(t, ok)
	require.Equal(t, map[string]any{"line": 3.0, "ch": 7.0}, update.Position)
}

func TestCursorChange_IgnoredWhenNotInRoom(t *testing.T) {
	deps := NewDeps(newFakeRooms(), newFakePresence(), nil, nil, nil, nil)

	res := CursorChange(deps, NewAuthContext("u1", "Alice", "sockA"), wire.CursorChangePayload{
		DocumentID: "doc1",
		UserID:     "u1",
	})
	require.Empty(t, res.Broadcasts())
}
