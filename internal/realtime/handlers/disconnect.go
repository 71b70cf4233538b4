package handlers

import (
	"github.com/dkovacs/codeshare/pkg/wire"
)

// DisconnectEffects removes the socket from every room it joined and
// announces the departure. The user-left notice goes to every connected
// socket, not just the rooms the socket was in.
func DisconnectEffects(deps Deps, auth AuthContext) EventResult {
	deps.Rooms().LeaveAll(auth.SocketID())

	left := wire.UserLeftEvent{
		SocketID: auth.SocketID(),
		UserID:   auth.UserID(),
		UserName: auth.UserName(),
	}

	return NewEventResult(nil, []BroadcastInstruction{
		newGlobalBroadcast("user-left", left),
	})
}
