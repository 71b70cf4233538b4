package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dkovacs/codeshare/internal/models"
	"github.com/dkovacs/codeshare/pkg/wire"
	"github.com/stretchr/testify/require"
)

func TestChatMessage_BroadcastIncludesSender(t *testing.T) {
	rooms := newFakeRooms()
	rooms.Join("sock1", "proj1")

	var created models.CreateChatMessageParams
	chat := fakeChatStore{
		create: func(ctx context.Context, arg models.CreateChatMessageParams) (models.ChatMessage, error) {
			created = arg
			return models.ChatMessage{ID: arg.ID}, nil
		},
	}
	now := time.UnixMilli(9000)
	deps := NewDeps(rooms, newFakePresence(), nil, chat, func() time.Time { return now }, func() string { return "msg1" })

	res := ChatMessage(context.Background(), deps, NewAuthContext("u1", "Alice", "sock1"), wire.SendChatMessagePayload{
		ProjectID: "proj1",
		Message:   "hello",
	})

	require.Equal(t, "msg1", created.ID)
	require.Equal(t, "proj1", created.ProjectID)
	require.Equal(t, "u1", created.UserID)
	require.Equal(t, "hello", created.Body)

	require.Len(t, res.Broadcasts(), 1)
	b := res.Broadcasts()[0]
	require.Equal(t, "chat-message", b.Event())
	require.Equal(t, "proj1", b.RoomKey())
	// Chat broadcasts are sender-inclusive.
	require.False(t, b.SkipSelf())

	event, ok := b.Payload().(wire.ChatMessageEvent)
	require.True(t, ok)
	require.Equal(t, "Alice", event.UserName)
	require.Equal(t, int64(9000), event.SentAt)
}

func TestChatMessage_BroadcastsEvenWhenPersistenceFails(t *testing.T) {
	rooms := newFakeRooms()
	rooms.Join("sock1", "proj1")
	chat := fakeChatStore{
		create: func(ctx context.Context, arg models.CreateChatMessageParams) (models.ChatMessage, error) {
			return models.ChatMessage{}, errors.New("db locked")
		},
	}
	deps := NewDeps(rooms, newFakePresence(), nil, chat, nil, func() string { return "msg1" })

	res := ChatMessage(context.Background(), deps, NewAuthContext("u1", "Alice", "sock1"), wire.SendChatMessagePayload{
		ProjectID: "proj1",
		Message:   "hello",
	})

	require.Len(t, res.Broadcasts(), 1)
}

func TestChatMessage_IgnoredWhenNotInRoom(t *testing.T) {
	deps := NewDeps(newFakeRooms(), newFakePresence(), nil, fakeChatStore{}, nil, nil)

	res := ChatMessage(context.Background(), deps, NewAuthContext("u1", "Alice", "sock1"), wire.SendChatMessagePayload{
		ProjectID: "proj1",
		Message:   "hello",
	})
	require.Empty(t, res.Broadcasts())
}

func TestChatMessage_MalformedPayloadDropped(t *testing.T) {
	deps := NewDeps(newFakeRooms(), newFakePresence(), nil, fakeChatStore{}, nil, nil)

	res := ChatMessage(context.Background(), deps, NewAuthContext("u1", "Alice", "sock1"), wire.SendChatMessagePayload{ProjectID: "proj1"})
	require.Empty(t, res.Broadcasts())
}

func TestDisconnectEffects_GlobalUserLeft(t *testing.T) {
	rooms := newFakeRooms()
	rooms.Join("sock1", "doc1")
	rooms.Join("sock1", "proj1")
	deps := NewDeps(rooms, newFakePresence(), nil, nil, nil, nil)

	res := DisconnectEffects(deps, NewAuthContext("u1", "Alice", "sock1"))

	require.False(t, rooms.Contains("sock1", "doc1"))
	require.False(t, rooms.Contains("sock1", "proj1"))

	require.Len(t, res.Broadcasts(), 1)
	b := res.Broadcasts()[0]
	require.Equal(t, "user-left", b.Event())
	// Leave notices go to every connected socket, not just shared rooms.
	require.True(t, b.IsGlobal())
	require.False(t, b.SkipSelf())

	left, ok := b.Payload().(wire.UserLeftEvent)
	require.True(t, ok)
	require.Equal(t, "sock1", left.SocketID)
	require.Equal(t, "u1", left.UserID)
}
