package socket

import (
	"context"
	"crew-dispatch/contract"
	"crew-dispatch/errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var (
	_ contract.SessionSink = (*Connection)(nil)
	_ io.Closer            = (*Connection)(nil)
)

// Connection is the sink of one websocket session. Sends are queued on a
// bounded buffer drained by writePump, the only goroutine writing to the socket.
type Connection struct {
	log          *slog.Logger
	conn         *websocket.Conn
	send         chan []byte
	done         chan struct{}
	closeOnce    sync.Once
	writeTimeout time.Duration
	pingPeriod   time.Duration
}

func newConnection(log *slog.Logger, conn *websocket.Conn, bufferSize int, writeTimeout, pongWait time.Duration) *Connection {
	return &Connection{
		log:          log,
		conn:         conn,
		send:         make(chan []byte, bufferSize),
		done:         make(chan struct{}),
		writeTimeout: writeTimeout,
		pingPeriod:   pongWait * 9 / 10,
	}
}

// Send queues a frame. It gives up when ctx ends or the connection is closed.
func (c *Connection) Send(ctx context.Context, event string, payload any) error {
	frame, err := encodeFrame(event, payload)
	if err != nil {
		return err
	}
	select {
	case <-c.done:
		return errors.ErrSessionClosed
	default:
	}
	select {
	case c.send <- frame:
		return nil
	case <-c.done:
		return errors.ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the write pump, which sends a close frame and releases the socket.
// The read loop then ends on its own.
func (c *Connection) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
	})
	return nil
}

// writePump drains the send buffer and keeps the peer alive with pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(c.pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.log.Debug("Failed to write frame", "error", err)
				_ = c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.Debug("Failed to ping", "error", err)
				_ = c.Close()
				return
			}
		}
	}
}
