package wire

// Outbound events

// UserJoinedEvent is broadcast to a document room when a new member joins.
// The joiner itself receives a RoomSnapshot instead.
type UserJoinedEvent struct {
	// DocumentID is the room the member joined.
	DocumentID string `json:"documentId"`
	// SocketID is the joining connection id.
	SocketID string `json:"socketId"`
	// UserID is the joining account id.
	UserID string `json:"userId"`
	// UserName is the joining display name.
	UserName string `json:"userName"`
}

// RoomMember describes one connection in a room snapshot.
type RoomMember struct {
	// SocketID is the member connection id.
	SocketID string `json:"socketId"`
	// UserID is the member account id.
	UserID string `json:"userId"`
	// UserName is the member display name.
	UserName string `json:"userName"`
}

// RoomSnapshot is the "users-in-room" reply sent to a joining connection.
// It includes the joiner itself.
type RoomSnapshot struct {
	// DocumentID is the room key.
	DocumentID string `json:"documentId"`
	// Count is the current member count.
	Count int `json:"count"`
	// Members lists the current room members in no particular order.
	Members []RoomMember `json:"members"`
}

// CodeUpdateEvent is broadcast to a document room on code-change. The sender
// is excluded.
type CodeUpdateEvent struct {
	// DocumentID is the edited document.
	DocumentID string `json:"documentId"`
	// Code is the full updated content.
	Code string `json:"code"`
	// UserID is the editing account id.
	UserID string `json:"userId"`
	// Timestamp is the server receive time in milliseconds since epoch.
	Timestamp int64 `json:"timestamp"`
}

// CursorUpdateEvent is broadcast to a document room on cursor-change. The
// sender is excluded.
type CursorUpdateEvent struct {
	// DocumentID is the document the cursor belongs to.
	DocumentID string `json:"documentId"`
	// Position is passed through from the sender unchanged.
	Position any `json:"position"`
	// UserID is the account id owning the cursor.
	UserID string `json:"userId"`
	// UserName is the display name rendered next to the cursor.
	UserName string `json:"userName"`
}

// ChatMessageEvent is broadcast to a project chat room, including the sender.
// Clients render chat from the broadcast rather than local echo.
type ChatMessageEvent struct {
	// ProjectID is the chat room key.
	ProjectID string `json:"projectId"`
	// UserID is the sending account id.
	UserID string `json:"userId"`
	// UserName is the sending display name.
	UserName string `json:"userName"`
	// Message is the chat body.
	Message string `json:"message"`
	// SentAt is the server receive time in milliseconds since epoch.
	SentAt int64 `json:"sentAt"`
}

// UserLeftEvent is broadcast to every connected socket when a connection
// disconnects.
type UserLeftEvent struct {
	// SocketID is the disconnected connection id.
	SocketID string `json:"socketId"`
	// UserID is the disconnected account id.
	UserID string `json:"userId"`
	// UserName is the disconnected display name.
	UserName string `json:"userName"`
}

// EditDeniedEvent is sent to a sender whose code-change was rejected by the
// permission check.
type EditDeniedEvent struct {
	// DocumentID is the document the edit targeted.
	DocumentID string `json:"documentId"`
	// Reason explains which rule denied the edit.
	Reason string `json:"reason"`
	// CanView reports whether the sender may still read the document.
	CanView bool `json:"canView"`
	// CanEdit is always false for this event.
	CanEdit bool `json:"canEdit"`
}
