package handlers

// BroadcastInstruction describes a single outbound emission produced by a
// handler call. The transport adapter applies it against the room registry
// and the connected socket set.
type BroadcastInstruction struct {
	roomKey  string // empty means every connected socket
	event    string
	payload  any
	skipSelf bool
}

func newRoomBroadcast(roomKey, event string, payload any) BroadcastInstruction {
	return BroadcastInstruction{roomKey: roomKey, event: event, payload: payload}
}

func newRoomBroadcastSkippingSelf(roomKey, event string, payload any) BroadcastInstruction {
	return BroadcastInstruction{roomKey: roomKey, event: event, payload: payload, skipSelf: true}
}

func newGlobalBroadcast(event string, payload any) BroadcastInstruction {
	return BroadcastInstruction{event: event, payload: payload}
}

// IsGlobal reports whether the emission targets every connected socket
// rather than one room.
func (b BroadcastInstruction) IsGlobal() bool { return b.roomKey == "" }

// RoomKey returns the target room for room-scoped emissions.
func (b BroadcastInstruction) RoomKey() string { return b.roomKey }

// Event returns the outbound event name.
func (b BroadcastInstruction) Event() string { return b.event }

// Payload returns the outbound event payload.
func (b BroadcastInstruction) Payload() any { return b.payload }

// SkipSelf reports whether the transport adapter must not emit the event
// back to the calling socket.
func (b BroadcastInstruction) SkipSelf() bool { return b.skipSelf }

// Reply is an emission addressed to the calling socket only.
type Reply struct {
	event   string
	payload any
}

func newReply(event string, payload any) *Reply {
	return &Reply{event: event, payload: payload}
}

// Event returns the reply event name.
func (r *Reply) Event() string { return r.event }

// Payload returns the reply payload.
func (r *Reply) Payload() any { return r.payload }

// EventResult is the output of a handler invocation. The zero value means
// "do nothing", which is how malformed events are dropped.
type EventResult struct {
	reply      *Reply
	broadcasts []BroadcastInstruction
}

// NewEventResult constructs a handler result.
func NewEventResult(reply *Reply, broadcasts []BroadcastInstruction) EventResult {
	return EventResult{reply: reply, broadcasts: broadcasts}
}

// Reply returns the emission addressed to the caller, or nil.
func (r EventResult) Reply() *Reply { return r.reply }

// Broadcasts returns the list of broadcast emissions requested by the
// handler.
func (r EventResult) Broadcasts() []BroadcastInstruction { return r.broadcasts }
