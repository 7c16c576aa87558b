package runtime

import (
	"crew-dispatch/contract"
	"crew-dispatch/domain"
	"crew-dispatch/errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var _ contract.ISessionDirectory = (*Hub)(nil)

// Hub owns every live session together with the registry and the room membership
// they feed. It is the only component mutating them: transport handlers report
// connect, identify, join and disconnect events here.
type Hub struct {
	log      *slog.Logger
	registry *Registry
	rooms    *Rooms
	sessions sync.Map // domain.SessionID -> *Session
	closed   atomic.Bool
	now      func() time.Time
}

type HubStats struct {
	Sessions int `json:"sessions"`
	Users    int `json:"users"`
	Rooms    int `json:"rooms"`
}

func NewHub(log *slog.Logger, registry *Registry, rooms *Rooms) *Hub {
	return &Hub{log: log, registry: registry, rooms: rooms, now: time.Now}
}

func (h *Hub) Registry() *Registry {
	return h.registry
}

func (h *Hub) Rooms() *Rooms {
	return h.rooms
}

// Connect creates a session in the connecting state for a freshly opened transport.
func (h *Hub) Connect(sink contract.SessionSink) (*Session, error) {
	if h.closed.Load() {
		return nil, errors.ErrHubClosed
	}
	session := newSession(domain.SessionID(uuid.NewString()), sink, h.now().UTC())
	h.sessions.Store(session.ID, session)
	h.log.Debug("Session connected", "session_id", session.ID)
	return session, nil
}

// Identify attaches a user to a session. Identifying again with another user
// moves the session to the new user's set.
func (h *Hub) Identify(sessionID domain.SessionID, userID domain.UserID) error {
	if userID == "" {
		return errors.ErrEmptyUserID
	}
	session, err := h.lookup(sessionID)
	if err != nil {
		return err
	}
	return session.identify(userID, func(prev domain.UserID) {
		if prev != "" && prev != userID {
			h.registry.Unregister(sessionID, prev)
		}
		h.registry.Register(sessionID, userID)
		h.log.Info(fmt.Sprintf("User %s connected with session %s", userID, sessionID))
	})
}

func (h *Hub) Join(sessionID domain.SessionID, roomID domain.RoomID) error {
	if roomID == "" {
		return errors.ErrEmptyRoomID
	}
	session, err := h.lookup(sessionID)
	if err != nil {
		return err
	}
	return session.whileOpen(func() {
		h.rooms.Join(sessionID, roomID)
		h.log.Debug("Session joined room", "session_id", sessionID, "room_id", roomID, "user_id", session.user)
	})
}

func (h *Hub) Leave(sessionID domain.SessionID, roomID domain.RoomID) error {
	session, err := h.lookup(sessionID)
	if err != nil {
		return err
	}
	return session.whileOpen(func() {
		h.rooms.Leave(sessionID, roomID)
	})
}

// Disconnect closes the session and discards its registry entry and room
// memberships before returning. A sink implementing io.Closer is closed too.
// Unknown or already closed sessions are ignored.
func (h *Hub) Disconnect(sessionID domain.SessionID) {
	session, err := h.lookup(sessionID)
	if err != nil {
		return
	}
	session.close(func(user domain.UserID) {
		if user != "" {
			h.registry.Unregister(sessionID, user)
		}
		left := h.rooms.LeaveAll(sessionID)
		h.sessions.Delete(sessionID)
		if closer, ok := session.sink.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				h.log.Debug("Failed to close session transport", "session_id", sessionID, "error", err)
			}
		}
		h.log.Debug("Session disconnected", "session_id", sessionID, "user_id", user, "rooms_left", len(left))
	})
}

// Close disconnects every session and refuses new ones.
func (h *Hub) Close() {
	if !h.closed.CompareAndSwap(false, true) {
		return
	}
	for _, id := range h.Live() {
		h.Disconnect(id)
	}
	h.log.Info("Hub closed")
}

func (h *Hub) Session(sessionID domain.SessionID) (*Session, bool) {
	v, ok := h.sessions.Load(sessionID)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

func (h *Hub) Sink(sessionID domain.SessionID) (contract.SessionSink, bool) {
	session, ok := h.Session(sessionID)
	if !ok {
		return nil, false
	}
	return session.sink, true
}

// Live is a snapshot of every connected session, identified or not.
func (h *Hub) Live() []domain.SessionID {
	var ids []domain.SessionID
	h.sessions.Range(func(key, _ any) bool {
		ids = append(ids, key.(domain.SessionID))
		return true
	})
	return ids
}

func (h *Hub) Stats() HubStats {
	return HubStats{
		Sessions: len(h.Live()),
		Users:    h.registry.UserCount(),
		Rooms:    h.rooms.RoomCount(),
	}
}

func (h *Hub) lookup(sessionID domain.SessionID) (*Session, error) {
	session, ok := h.Session(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrSessionNotFound, sessionID)
	}
	return session, nil
}
