package domain

type SessionID string

func (s SessionID) String() string {
	return string(s)
}

// RoomID is the chat channel of an event. It always equals the event id.
type RoomID string

func (r RoomID) String() string {
	return string(r)
}

// SessionState is the lifecycle of one transport connection.
type SessionState int

const (
	SessionConnecting SessionState = iota
	SessionIdentified
	SessionClosed
)

func (s SessionState) String() string {
	switch s {
	case SessionConnecting:
		return "connecting"
	case SessionIdentified:
		return "identified"
	case SessionClosed:
		return "closed"
	default:
		return "unknown"
	}
}
