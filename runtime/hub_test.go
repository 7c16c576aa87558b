package runtime

import (
	"crew-dispatch/domain"
	"crew-dispatch/errors"
	"crew-dispatch/mocks"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHub() *Hub {
	return NewHub(logs.GetLoggerFromLevel(slog.LevelDebug), NewRegistry(), NewRooms())
}

func TestHub_Session_Lifecycle(t *testing.T) {
	req := require.New(t)
	hub := newTestHub()

	// Given a freshly connected session
	session, err := hub.Connect(mocks.NewMockSessionSink(gomock.NewController(t)))
	req.NoError(err)
	req.Equal(domain.SessionConnecting, session.State())
	req.Empty(session.UserID())

	// When it identifies and joins an event chat
	req.NoError(hub.Identify(session.ID, "u1"))
	req.NoError(hub.Join(session.ID, "e1"))

	req.Equal(domain.SessionIdentified, session.State())
	req.Equal([]domain.SessionID{session.ID}, hub.Registry().SessionsFor("u1"))
	req.Equal([]domain.SessionID{session.ID}, hub.Rooms().Members("e1"))
	req.Equal(HubStats{Sessions: 1, Users: 1, Rooms: 1}, hub.Stats())

	// When the transport closes
	hub.Disconnect(session.ID)

	// Then registry and rooms are clean before Disconnect returns
	req.Equal(domain.SessionClosed, session.State())
	req.Empty(hub.Registry().SessionsFor("u1"))
	req.Empty(hub.Rooms().Members("e1"))
	req.Equal(HubStats{}, hub.Stats())

	// And a closed session cannot come back
	req.ErrorIs(hub.Identify(session.ID, "u1"), errors.ErrSessionNotFound)
	hub.Disconnect(session.ID)
}

func TestHub_Identify_Again_Moves_The_Session(t *testing.T) {
	req := require.New(t)
	hub := newTestHub()
	session, err := hub.Connect(mocks.NewMockSessionSink(gomock.NewController(t)))
	req.NoError(err)

	req.NoError(hub.Identify(session.ID, "u1"))
	req.NoError(hub.Identify(session.ID, "u2"))

	req.Empty(hub.Registry().SessionsFor("u1"))
	req.Equal([]domain.SessionID{session.ID}, hub.Registry().SessionsFor("u2"))
}

func TestHub_Rejects_Empty_Identifiers(t *testing.T) {
	req := require.New(t)
	hub := newTestHub()
	session, err := hub.Connect(mocks.NewMockSessionSink(gomock.NewController(t)))
	req.NoError(err)

	req.ErrorIs(hub.Identify(session.ID, ""), errors.ErrEmptyUserID)
	req.ErrorIs(hub.Join(session.ID, ""), errors.ErrEmptyRoomID)
	req.ErrorIs(hub.Join("ghost", "e1"), errors.ErrSessionNotFound)
}

func TestHub_Close_Disconnects_Everyone(t *testing.T) {
	req := require.New(t)
	hub := newTestHub()
	ctrl := gomock.NewController(t)
	for _, u := range []domain.UserID{"u1", "u2", "u3"} {
		session, err := hub.Connect(mocks.NewMockSessionSink(ctrl))
		req.NoError(err)
		req.NoError(hub.Identify(session.ID, u))
	}

	hub.Close()

	req.Empty(hub.Live())
	req.Zero(hub.Registry().UserCount())
	_, err := hub.Connect(mocks.NewMockSessionSink(ctrl))
	req.ErrorIs(err, errors.ErrHubClosed)
}

func TestHub_Concurrent_Identify_And_Disconnect_Leave_No_Trace(t *testing.T) {
	req := require.New(t)
	hub := newTestHub()
	ctrl := gomock.NewController(t)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		session, err := hub.Connect(mocks.NewMockSessionSink(ctrl))
		req.NoError(err)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = hub.Identify(session.ID, "u1")
			_ = hub.Join(session.ID, "e1")
		}()
		go func() {
			defer wg.Done()
			hub.Disconnect(session.ID)
		}()
	}
	wg.Wait()

	req.Empty(hub.Registry().SessionsFor("u1"))
	req.Empty(hub.Rooms().Members("e1"))
	req.Empty(hub.Live())
}

type closingSink struct {
	*mocks.MockSessionSink
	closed atomic.Int32
}

func (s *closingSink) Close() error {
	s.closed.Add(1)
	return nil
}

func TestHub_Close_Releases_Every_Transport(t *testing.T) {
	req := require.New(t)
	hub := newTestHub()
	ctrl := gomock.NewController(t)

	// Given two sessions whose transport can be closed
	sinks := []*closingSink{
		{MockSessionSink: mocks.NewMockSessionSink(ctrl)},
		{MockSessionSink: mocks.NewMockSessionSink(ctrl)},
	}
	for _, sink := range sinks {
		session, err := hub.Connect(sink)
		req.NoError(err)
		req.NoError(hub.Identify(session.ID, "u1"))
	}

	// When the hub shuts down
	hub.Close()

	// Then each transport is closed exactly once
	for _, sink := range sinks {
		req.Equal(int32(1), sink.closed.Load())
	}
	req.Empty(hub.Live())
}
