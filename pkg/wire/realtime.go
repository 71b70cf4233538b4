// Package wire defines the JSON payloads exchanged over the realtime channel.
//
// Inbound events are emitted by clients; outbound events are emitted by the
// server. Field names match what the web client sends and expects.
package wire

// SocketAuthPayload is the Socket.IO handshake auth payload.
type SocketAuthPayload struct {
	// Token is the bearer access token.
	Token string `json:"token"`
	// UserName is the display name to announce in rooms.
	UserName string `json:"userName,omitempty"`
}

// Inbound events

// JoinDocumentPayload is the "join-document" event payload.
type JoinDocumentPayload struct {
	// DocumentID is the room key for the document being opened.
	DocumentID string `json:"documentId"`
	// UserID is the joining account id.
	UserID string `json:"userId"`
	// UserName is the display name shown to other room members.
	UserName string `json:"userName"`
}

// JoinProjectChatPayload is the "join-project-chat" event payload.
type JoinProjectChatPayload struct {
	// ProjectID is the room key for the project chat.
	ProjectID string `json:"projectId"`
}

// SendChatMessagePayload is the "send-chat-message" event payload.
type SendChatMessagePayload struct {
	// ProjectID is the target project chat room.
	ProjectID string `json:"projectId"`
	// Message is the chat message body.
	Message string `json:"message"`
}

// CodeChangePayload is the "code-change" event payload.
type CodeChangePayload struct {
	// DocumentID is the document being edited.
	DocumentID string `json:"documentId"`
	// Code is the full updated document content.
	Code string `json:"code"`
	// UserID is the editing account id.
	UserID string `json:"userId"`
}

// CursorChangePayload is the "cursor-change" event payload.
type CursorChangePayload struct {
	// DocumentID is the document the cursor belongs to.
	DocumentID string `json:"documentId"`
	// Position is the editor-specific cursor position blob.
	Position any `json:"position"`
	// UserID is the account id owning the cursor.
	UserID string `json:"userId"`
	// UserName is the display name rendered next to the cursor.
	UserName string `json:"userName"`
}
