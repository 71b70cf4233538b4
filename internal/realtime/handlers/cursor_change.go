package handlers

import (
	"github.com/dkovacs/codeshare/pkg/wire"
)

// CursorChange relays a cursor position to the other members of the document
// room. The payload passes through unchanged; the sender is excluded.
func CursorChange(deps Deps, auth AuthContext, req wire.CursorChangePayload) EventResult {
	if req.DocumentID == "" || req.UserID == "" {
		return EventResult{}
	}

	if !deps.Rooms().Contains(auth.SocketID(), req.DocumentID) {
		return EventResult{}
	}

	update := wire.CursorUpdateEvent{
		DocumentID: req.DocumentID,
		Position:   req.Position,
		UserID:     req.UserID,
		UserName:   req.UserName,
	}

	return NewEventResult(nil, []BroadcastInstruction{
		newRoomBroadcastSkippingSelf(req.DocumentID, "cursor-update", update),
	})
}
