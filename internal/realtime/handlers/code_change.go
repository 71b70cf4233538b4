package handlers

import (
	"context"

	"github.com/dkovacs/codeshare/internal/logger"
	"github.com/dkovacs/codeshare/internal/permissions"
	"github.com/dkovacs/codeshare/pkg/wire"
)

// CodeChange relays a document edit to the other members of the document
// room after resolving the sender's edit permission. Denials are replied to
// the sender as a structured edit-denied event; the broadcast excludes the
// sender.
func CodeChange(ctx context.Context, deps Deps, auth AuthContext, req wire.CodeChangePayload) EventResult {
	if req.DocumentID == "" || req.UserID == "" {
		return EventResult{}
	}

	// Edits are only accepted from sockets inside the document room.
	if !deps.Rooms().Contains(auth.SocketID(), req.DocumentID) {
		return EventResult{}
	}

	pc, err := deps.Store().GetPermissionContext(ctx, req.DocumentID, auth.UserID())
	if err != nil {
		logger.Warnf("Failed to load permission context for document %s: %v", req.DocumentID, err)
		return EventResult{}
	}

	decision := permissions.ResolveEditPermission(pc)
	if !decision.CanEdit {
		return NewEventResult(
			newReply("edit-denied", wire.EditDeniedEvent{
				DocumentID: req.DocumentID,
				Reason:     decision.Reason,
				CanView:    decision.CanView,
				CanEdit:    false,
			}),
			nil,
		)
	}

	update := wire.CodeUpdateEvent{
		DocumentID: req.DocumentID,
		Code:       req.Code,
		UserID:     req.UserID,
		Timestamp:  deps.Now().UnixMilli(),
	}

	return NewEventResult(nil, []BroadcastInstruction{
		newRoomBroadcastSkippingSelf(req.DocumentID, "code-update", update),
	})
}
