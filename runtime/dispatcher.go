package runtime

import (
	"context"
	"crew-dispatch/contract"
	"crew-dispatch/domain"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

var _ contract.IDispatcher = (*Dispatcher)(nil)

// Dispatcher delivers a payload to live sessions resolved by user, by room or to everyone.
//
// It is pure best-effort fan-out: no queuing, no retry, no persistence.
// A failed send is logged and the remaining sessions are still served.
// A session disconnecting while a fan-out runs may or may not receive the payload.
type Dispatcher struct {
	log         *slog.Logger
	registry    contract.ISessionRegistry
	rooms       contract.IRoomMembership
	directory   contract.ISessionDirectory
	sendTimeout time.Duration
}

func NewDispatcher(log *slog.Logger, registry contract.ISessionRegistry, rooms contract.IRoomMembership,
	directory contract.ISessionDirectory, sendTimeout time.Duration) *Dispatcher {
	return &Dispatcher{
		log:         log,
		registry:    registry,
		rooms:       rooms,
		directory:   directory,
		sendTimeout: sendTimeout,
	}
}

// EmitToUser returns false without touching the transport when the user has no live session.
// That is not an error: the user may simply be offline.
func (d *Dispatcher) EmitToUser(ctx context.Context, userID domain.UserID, event string, payload any) bool {
	sessions := d.registry.SessionsFor(userID)
	if len(sessions) == 0 {
		d.log.Debug("User is not connected", "user_id", userID, "event", event)
		return false
	}
	d.fanout(ctx, sessions, event, payload)
	return true
}

func (d *Dispatcher) EmitToRoom(ctx context.Context, roomID domain.RoomID, event string, payload any) {
	d.fanout(ctx, d.rooms.Members(roomID), event, payload)
}

// EmitGlobal reaches every connected session except the excluded ones.
func (d *Dispatcher) EmitGlobal(ctx context.Context, event string, payload any, excluding ...domain.SessionID) {
	targets, _ := lo.Difference(d.directory.Live(), excluding)
	d.fanout(ctx, targets, event, payload)
}

func (d *Dispatcher) fanout(ctx context.Context, sessions []domain.SessionID, event string, payload any) {
	for _, sessionID := range sessions {
		sink, ok := d.directory.Sink(sessionID)
		if !ok {
			// Disconnected between resolution and delivery.
			continue
		}
		if err := d.send(ctx, sink, event, payload); err != nil {
			d.log.Warn("Failed to deliver to session",
				"session_id", sessionID,
				"event", event,
				"error", err)
		}
	}
}

func (d *Dispatcher) send(ctx context.Context, sink contract.SessionSink, event string, payload any) error {
	if d.sendTimeout <= 0 {
		return sink.Send(ctx, event, payload)
	}
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()
	return sink.Send(sendCtx, event, payload)
}
