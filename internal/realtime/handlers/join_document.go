package handlers

import (
	"github.com/dkovacs/codeshare/pkg/wire"
)

// JoinDocument adds the calling socket to a document room, announces the
// joiner to the existing members, and replies to the caller with a room
// snapshot that already includes the joiner itself.
func JoinDocument(deps Deps, auth AuthContext, req wire.JoinDocumentPayload) EventResult {
	if req.DocumentID == "" || req.UserID == "" {
		return EventResult{}
	}

	if req.UserName != "" {
		deps.Presence().SetName(auth.SocketID(), req.UserName)
	}

	deps.Rooms().Join(auth.SocketID(), req.DocumentID)

	memberIDs := deps.Rooms().MembersOf(req.DocumentID)
	members := make([]wire.RoomMember, 0, len(memberIDs))
	for _, socketID := range memberIDs {
		info, ok := deps.Presence().MemberInfo(socketID)
		if !ok {
			// Socket vanished between the registry read and the presence
			// lookup; still count it so count matches the registry.
			info = wire.RoomMember{SocketID: socketID}
		}
		members = append(members, info)
	}

	snapshot := wire.RoomSnapshot{
		DocumentID: req.DocumentID,
		Count:      len(members),
		Members:    members,
	}

	joined := wire.UserJoinedEvent{
		DocumentID: req.DocumentID,
		SocketID:   auth.SocketID(),
		UserID:     req.UserID,
		UserName:   req.UserName,
	}

	return NewEventResult(
		newReply("users-in-room", snapshot),
		[]BroadcastInstruction{
			newRoomBroadcastSkippingSelf(req.DocumentID, "user-joined", joined),
		},
	)
}
