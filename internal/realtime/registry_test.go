package realtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoomRegistry_JoinIsIdempotent(t *testing.T) {
	r := NewRoomRegistry()
	r.Join("sock1", "doc1")
	r.Join("sock1", "doc1")

	require.Equal(t, []string{"sock1"}, r.MembersOf("doc1"))
	require.Equal(t, []string{"doc1"}, r.Rooms("sock1"))
}

func TestRoomRegistry_LeavePrunesEmptyRoom(t *testing.T) {
	r := NewRoomRegistry()
	r.Join("sock1", "doc1")
	r.Join("sock2", "doc1")

	r.Leave("sock1", "doc1")
	require.ElementsMatch(t, []string{"sock2"}, r.MembersOf("doc1"))

	r.Leave("sock2", "doc1")
	require.Empty(t, r.MembersOf("doc1"))
	require.False(t, r.Contains("sock2", "doc1"))
}

func TestRoomRegistry_LeaveUnknownRoomIsNoop(t *testing.T) {
	r := NewRoomRegistry()
	r.Leave("sock1", "nope")
	require.Empty(t, r.MembersOf("nope"))
}

func TestRoomRegistry_LeaveAll(t *testing.T) {
	r := NewRoomRegistry()
	r.Join("sock1", "doc1")
	r.Join("sock1", "proj1")
	r.Join("sock2", "doc1")

	left := r.LeaveAll("sock1")
	require.ElementsMatch(t, []string{"doc1", "proj1"}, left)

	require.ElementsMatch(t, []string{"sock2"}, r.MembersOf("doc1"))
	require.Empty(t, r.MembersOf("proj1"))
	require.Empty(t, r.Rooms("sock1"))
}

func TestRoomRegistry_LeaveAllUnknownConnection(t *testing.T) {
	r := NewRoomRegistry()
	require.Nil(t, r.LeaveAll("ghost"))
}

func TestRoomRegistry_MembersOfIsSnapshot(t *testing.T) {
	r := NewRoomRegistry()
	r.Join("sock1", "doc1")

	members := r.MembersOf("doc1")
	r.Join("sock2", "doc1")

	// The earlier snapshot must not observe later mutations.
	require.Equal(t, []string{"sock1"}, members)
	require.ElementsMatch(t, []string{"sock1", "sock2"}, r.MembersOf("doc1"))
}

func TestRoomRegistry_SeparateRoomsAreIndependent(t *testing.T) {
	r := NewRoomRegistry()
	r.Join("sock1", "doc1")
	r.Join("sock1", "doc2")

	r.Leave("sock1", "doc1")
	require.True(t, r.Contains("sock1", "doc2"))
	require.False(t, r.Contains("sock1", "doc1"))
}
