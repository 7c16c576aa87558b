// Package socket is the websocket transport of live sessions.
// It translates frames into hub transitions and dispatcher calls.
package socket

import (
	"context"
	"crew-dispatch/contract"
	"crew-dispatch/domain"
	"crew-dispatch/errors"
	"crew-dispatch/runtime"
	"crew-dispatch/services"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
)

type Options struct {
	BufferSize     int
	WriteTimeout   time.Duration
	PongWait       time.Duration
	ReadLimit      int64
	AllowedOrigins []string
}

// Handler upgrades HTTP requests and serves one read loop per connection.
type Handler struct {
	log        *slog.Logger
	hub        *runtime.Hub
	dispatcher contract.IDispatcher
	auth       services.IAuthService
	validate   *validator.Validate
	upgrader   websocket.Upgrader
	opts       Options
	now        func() time.Time
}

// NewHandler builds the websocket handler. auth may be nil, in which case
// tokens sent with setUserId are ignored.
func NewHandler(log *slog.Logger, hub *runtime.Hub, dispatcher contract.IDispatcher,
	auth services.IAuthService, opts Options) *Handler {
	if opts.BufferSize <= 0 {
		opts.BufferSize = 64
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	if opts.PongWait <= 0 {
		opts.PongWait = 60 * time.Second
	}
	if opts.ReadLimit <= 0 {
		opts.ReadLimit = 64 << 10
	}
	h := &Handler{
		log:        log,
		hub:        hub,
		dispatcher: dispatcher,
		auth:       auth,
		validate:   validator.New(),
		opts:       opts,
		now:        time.Now,
	}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

// Serve is mounted on the router as the websocket endpoint.
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "error", err)
		return
	}
	connection := newConnection(h.log, conn, h.opts.BufferSize, h.opts.WriteTimeout, h.opts.PongWait)
	session, err := h.hub.Connect(connection)
	if err != nil {
		h.log.Warn("Refusing connection", "error", err)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, err.Error()),
			time.Now().Add(h.opts.WriteTimeout))
		_ = conn.Close()
		return
	}
	go connection.writePump()
	go h.readPump(session, connection)
}

// readPump owns the session: when it returns the session is gone from the
// registry and from every room.
func (h *Handler) readPump(session *runtime.Session, connection *Connection) {
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		h.hub.Disconnect(session.ID)
		_ = connection.Close()
		h.log.Info(fmt.Sprintf("Session disconnected: %s", session.ID), "user_id", session.UserID())
	}()

	conn := connection.conn
	conn.SetReadLimit(h.opts.ReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(h.opts.PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.opts.PongWait))
	})

	h.reply(ctx, connection, EventConnected, Connected{SessionID: session.ID.String()})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug("Unexpected close", "session_id", session.ID, "error", err)
			}
			return
		}
		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			h.replyError(ctx, connection, "", fmt.Errorf("malformed frame: %w", err))
			continue
		}
		if err := h.validate.Struct(frame); err != nil {
			h.replyError(ctx, connection, "", err)
			continue
		}
		if err := h.handle(ctx, session, connection, frame); err != nil {
			h.log.Debug("Frame rejected", "session_id", session.ID, "event", frame.Event, "error", err)
			h.replyError(ctx, connection, frame.Event, err)
		}
	}
}

func (h *Handler) handle(ctx context.Context, session *runtime.Session, connection *Connection, frame Frame) error {
	switch frame.Event {
	case EventSetUserID:
		return h.setUserID(ctx, session, connection, frame.Data)
	case domain.EventGlobalMessage:
		text, err := decodeText(frame.Data)
		if err != nil {
			return err
		}
		h.globalMessage(ctx, session, text)
		return nil
	case EventJoinRoom:
		roomID, err := decodeText(frame.Data)
		if err != nil {
			return err
		}
		return h.hub.Join(session.ID, domain.RoomID(roomID))
	case EventLeaveRoom:
		roomID, err := decodeText(frame.Data)
		if err != nil {
			return err
		}
		return h.hub.Leave(session.ID, domain.RoomID(roomID))
	case domain.EventEventMessage:
		var msg RoomMessage
		if err := h.decode(frame.Data, &msg); err != nil {
			return err
		}
		roomID := domain.RoomID(msg.RoomID)
		h.dispatcher.EmitToRoom(ctx, roomID, domain.EventEventMessage, domain.RoomPayload{
			RoomID: roomID,
			Msg:    domain.NewChatPayload(session.UserID(), msg.Message, h.now()),
		})
		return nil
	case domain.EventPrivateMessage:
		var msg PrivateMessage
		if err := h.decode(frame.Data, &msg); err != nil {
			return err
		}
		recipient := domain.UserID(msg.RecipientID)
		payload := domain.NewChatPayload(session.UserID(), msg.Message, h.now())
		if !h.dispatcher.EmitToUser(ctx, recipient, domain.EventPrivateMessage, payload) {
			h.log.Info(fmt.Sprintf("User %s is not connected.", recipient))
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", errors.ErrUnknownFrameType, frame.Event)
	}
}

func (h *Handler) setUserID(ctx context.Context, session *runtime.Session, connection *Connection, data json.RawMessage) error {
	var identity Identity
	if err := h.decode(data, &identity); err != nil {
		return err
	}
	userID := domain.UserID(identity.UserID)
	if identity.Token != "" && h.auth != nil {
		user, err := h.auth.Authenticate(identity.Token)
		if err != nil {
			return err
		}
		if user.ID != userID {
			return errors.ErrInvalidCredentials
		}
	}
	if err := h.hub.Identify(session.ID, userID); err != nil {
		return err
	}
	h.reply(ctx, connection, EventIdentified, identity.UserID)
	return nil
}

// globalMessage reaches everyone but the sender: every session of an identified
// sender is skipped, an anonymous one only skips itself.
func (h *Handler) globalMessage(ctx context.Context, session *runtime.Session, text string) {
	sender := session.UserID()
	excluding := []domain.SessionID{session.ID}
	if sender != "" {
		excluding = lo.Uniq(append(excluding, h.hub.Registry().SessionsFor(sender)...))
	}
	h.dispatcher.EmitGlobal(ctx, domain.EventGlobalMessage,
		domain.NewChatPayload(sender, text, h.now()), excluding...)
}

func (h *Handler) decode(data json.RawMessage, into any) error {
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("malformed data: %w", err)
	}
	return h.validate.Struct(into)
}

func (h *Handler) reply(ctx context.Context, connection *Connection, event string, payload any) {
	sendCtx, cancel := context.WithTimeout(ctx, h.opts.WriteTimeout)
	defer cancel()
	if err := connection.Send(sendCtx, event, payload); err != nil {
		h.log.Debug("Failed to reply", "event", event, "error", err)
	}
}

func (h *Handler) replyError(ctx context.Context, connection *Connection, event string, err error) {
	h.reply(ctx, connection, EventError, ErrorPayload{Event: event, Message: err.Error()})
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	if len(h.opts.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || lo.Contains(h.opts.AllowedOrigins, origin)
}
