package socket

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Frame is the envelope of every websocket message, in both directions.
type Frame struct {
	Event string          `json:"event" validate:"required"`
	Data  json.RawMessage `json:"data"`
}

const (
	EventSetUserID  = "setUserId"
	EventJoinRoom   = "joinRoom"
	EventLeaveRoom  = "leaveRoom"
	EventConnected  = "connected"
	EventIdentified = "identified"
	EventError      = "error"
)

// Identity is the data of setUserId. Clients may send the bare user id
// as a JSON string or an object carrying a bearer token as well.
type Identity struct {
	UserID string `json:"userId" validate:"required"`
	Token  string `json:"token"`
}

func (i *Identity) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		i.UserID = id
		return nil
	}
	type plain Identity
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*i = Identity(p)
	return nil
}

type RoomMessage struct {
	RoomID  string `json:"roomId" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type PrivateMessage struct {
	RecipientID string `json:"recipientId" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

type Connected struct {
	SessionID string `json:"sessionId"`
}

type ErrorPayload struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}

func encodeFrame(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", event, err)
	}
	return json.Marshal(Frame{Event: event, Data: data})
}

// decodeText accepts a JSON string, the shape clients use for room ids and chat text.
func decodeText(data json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty value")
	}
	return s, nil
}
