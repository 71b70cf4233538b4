package handlers

import (
	"testing"
	"time"

	"github.com/dkovacs/codeshare/pkg/wire"
	"github.com/stretchr/testify/require"
)

func TestJoinDocument_SnapshotIncludesJoiner(t *testing.T) {
	rooms := newFakeRooms()
	presence := newFakePresence()
	presence.info["sockA"] = wire.RoomMember{SocketID: "sockA", UserID: "u1", UserName: "Alice"}
	rooms.Join("sockA", "doc1")

	deps := NewDeps(rooms, presence, nil, nil, func() time.Time { return time.UnixMilli(1000) }, func() string { return "id" })

	res := JoinDocument(deps, NewAuthContext("u2", "Bob", "sockB"), wire.JoinDocumentPayload{
		DocumentID: "doc1",
		UserID:     "u2",
		UserName:   "Bob",
	})

	require.NotNil(t, res.Reply())
	require.Equal(t, "users-in-room", res.Reply().Event())
	snapshot, ok := res.Reply().Payload().(wire.RoomSnapshot)
	require.True(t, ok)
	require.Equal(t, "doc1", snapshot.DocumentID)
	require.Equal(t, 2, snapshot.Count)

	var socketIDs []string
	for _, m := range snapshot.Members {
		socketIDs = append(socketIDs, m.SocketID)
	}
	require.ElementsMatch(t, []string{"sockA", "sockB"}, socketIDs)
}

func TestJoinDocument_AnnouncesToRoomExcludingJoiner(t *testing.T) {
	deps := NewDeps(newFakeRooms(), newFakePresence(), nil, nil, nil, nil)

	res := JoinDocument(deps, NewAuthContext("u1", "Alice", "sock1"), wire.JoinDocumentPayload{
		DocumentID: "doc1",
		UserID:     "u1",
		UserName:   "Alice",
	})

	require.Len(t, res.Broadcasts(), 1)
	b := res.Broadcasts()[0]
	require.Equal(t, "user-joined", b.Event())
	require.Equal(t, "doc1", b.RoomKey())
	require.True(t, b.SkipSelf())

	joined, ok := b.Payload().(wire.UserJoinedEvent)
	require.True(t, ok)
	require.Equal(t, "sock1", joined.SocketID)
	require.Equal(t, "Alice", joined.UserName)
}

func TestJoinDocument_MalformedPayloadDropped(t *testing.T) {
	rooms := newFakeRooms()
	deps := NewDeps(rooms, newFakePresence(), nil, nil, nil, nil)

	res := JoinDocument(deps, NewAuthContext("u1", "Alice", "sock1"), wire.JoinDocumentPayload{})
	require.Nil(t, res.Reply())
	require.Empty(t, res.Broadcasts())
	require.Empty(t, rooms.MembersOf(""))
}

func TestJoinProjectChat_JoinsSilently(t *testing.T) {
	rooms := newFakeRooms()
	deps := NewDeps(rooms, newFakePresence(), nil, nil, nil, nil)

	res := JoinProjectChat(deps, NewAuthContext("u1", "Alice", "sock1"), wire.JoinProjectChatPayload{ProjectID: "proj1"})

	require.Nil(t, res.Reply())
	require.Empty(t, res.Broadcasts())
	require.True(t, rooms.Contains("sock1", "proj1"))
}
