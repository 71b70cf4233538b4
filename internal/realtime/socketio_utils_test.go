package realtime

import (
	"fmt"
	"sync"
	"testing"

	"github.com/dkovacs/codeshare/pkg/wire"
	"github.com/stretchr/testify/require"
	socket "github.com/zishang520/socket.io/servers/socket/v3"
)

func TestGetFirstAnyWithAck_FuncAck(t *testing.T) {
	var got []any
	payload, ack := getFirstAnyWithAck([]any{
		map[string]any{"k": "v"},
		func(args ...any) { got = args },
	})

	require.Equal(t, map[string]any{"k": "v"}, payload)
	require.NotNil(t, ack)

	ack("a", 1)
	require.Equal(t, []any{"a", 1}, got)
}

func TestGetFirstAnyWithAck_SocketAck(t *testing.T) {
	var gotArgs []any
	var gotErr error

	payload, ack := getFirstAnyWithAck([]any{
		"payload",
		socket.Ack(func(args []any, err error) {
			gotArgs = args
			gotErr = err
		}),
	})

	require.Equal(t, "payload", payload)
	require.NotNil(t, ack)

	ack("x", 2)
	require.Equal(t, []any{"x", 2}, gotArgs)
	require.NoError(t, gotErr)
}

func TestGetFirstAnyWithAck_NoAck(t *testing.T) {
	payload, ack := getFirstAnyWithAck([]any{"payload"})
	require.Equal(t, "payload", payload)
	require.Nil(t, ack)
}

func TestDecodeAny_JoinDocumentPayload(t *testing.T) {
	var req wire.JoinDocumentPayload
	err := decodeAny(map[string]any{
		"documentId": "doc-1",
		"userId":     "user-1",
		"userName":   "Ada",
	}, &req)

	require.NoError(t, err)
	require.Equal(t, "doc-1", req.DocumentID)
	require.Equal(t, "user-1", req.UserID)
	require.Equal(t, "Ada", req.UserName)
}

func TestPresence_SetNameStoresReplacement(t *testing.T) {
	s := &SocketIOServer{rooms: NewRoomRegistry()}
	original := &SocketData{UserID: "user-1", UserName: "Ada"}
	s.socketData.Store("sock-1", original)

	s.SetName("sock-1", "Ada L.")

	// The previously stored struct must not be mutated in place.
	require.Equal(t, "Ada", original.UserName)

	member, ok := s.MemberInfo("sock-1")
	require.True(t, ok)
	require.Equal(t, "Ada L.", member.UserName)
	require.Equal(t, "user-1", member.UserID)
}

func TestPresence_ConcurrentRenameAndLookup(t *testing.T) {
	s := &SocketIOServer{rooms: NewRoomRegistry()}
	s.socketData.Store("sock-1", &SocketData{UserID: "user-1", UserName: "name-0"})

	names := make([]string, 8)
	for i := range names {
		names[i] = fmt.Sprintf("name-%d", i)
	}

	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(2)
		go func(name string) {
			defer wg.Done()
			s.SetName("sock-1", name)
		}(name)
		go func() {
			defer wg.Done()
			_, _ = s.MemberInfo("sock-1")
		}()
	}
	wg.Wait()

	member, ok := s.MemberInfo("sock-1")
	require.True(t, ok)
	require.Contains(t, names, member.UserName)
}

func TestPresence_MemberInfoAndSetName(t *testing.T) {
	s := &SocketIOServer{rooms: NewRoomRegistry()}
	s.socketData.Store("sock-1", &SocketData{UserID: "user-1", UserName: "Ada"})

	member, ok := s.MemberInfo("sock-1")
	require.True(t, ok)
	require.Equal(t, wire.RoomMember{SocketID: "sock-1", UserID: "user-1", UserName: "Ada"}, member)

	s.SetName("sock-1", "Ada L.")
	member, ok = s.MemberInfo("sock-1")
	require.True(t, ok)
	require.Equal(t, "Ada L.", member.UserName)

	_, ok = s.MemberInfo("unknown")
	require.False(t, ok)
}
