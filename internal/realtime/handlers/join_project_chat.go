package handlers

import (
	"github.com/dkovacs/codeshare/pkg/wire"
)

// JoinProjectChat adds the calling socket to a project chat room. Joining is
// silent: chat rooms have no presence announcements.
func JoinProjectChat(deps Deps, auth AuthContext, req wire.JoinProjectChatPayload) EventResult {
	if req.ProjectID == "" {
		return EventResult{}
	}

	deps.Rooms().Join(auth.SocketID(), req.ProjectID)
	return EventResult{}
}
