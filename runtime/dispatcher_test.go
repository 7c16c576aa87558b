package runtime

import (
	"context"
	"crew-dispatch/domain"
	"crew-dispatch/mocks"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDispatcher(hub *Hub) *Dispatcher {
	return NewDispatcher(logs.GetLoggerFromLevel(slog.LevelDebug), hub.Registry(), hub.Rooms(), hub, time.Second)
}

func connect(t *testing.T, hub *Hub, sink *mocks.MockSessionSink, userID domain.UserID) domain.SessionID {
	t.Helper()
	session, err := hub.Connect(sink)
	require.NoError(t, err)
	if userID != "" {
		require.NoError(t, hub.Identify(session.ID, userID))
	}
	return session.ID
}

func TestDispatcher_EmitToUser_Offline(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	hub := newTestHub()
	dispatcher := newTestDispatcher(hub)

	// Another user is online, u1 is not
	other := mocks.NewMockSessionSink(ctrl)
	other.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	connect(t, hub, other, "u2")

	req.False(dispatcher.EmitToUser(context.Background(), "u1", domain.EventNotification, "payload"))
}

func TestDispatcher_EmitToUser_Reaches_Every_Session_Despite_Failures(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	hub := newTestHub()
	dispatcher := newTestDispatcher(hub)

	// Given u1 on three devices, one with a broken transport
	broken := mocks.NewMockSessionSink(ctrl)
	broken.EXPECT().Send(gomock.Any(), "notification", "payload").Return(fmt.Errorf("broken pipe"))
	connect(t, hub, broken, "u1")
	for i := 0; i < 2; i++ {
		sink := mocks.NewMockSessionSink(ctrl)
		sink.EXPECT().Send(gomock.Any(), "notification", "payload").Return(nil)
		connect(t, hub, sink, "u1")
	}

	req.True(dispatcher.EmitToUser(context.Background(), "u1", "notification", "payload"))
}

func TestDispatcher_EmitToRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := newTestHub()
	dispatcher := newTestDispatcher(hub)

	member := mocks.NewMockSessionSink(ctrl)
	member.EXPECT().Send(gomock.Any(), domain.EventEventMessage, gomock.Any()).Return(nil)
	memberID := connect(t, hub, member, "")
	require.NoError(t, hub.Join(memberID, "e1"))

	outsider := mocks.NewMockSessionSink(ctrl)
	outsider.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	outsiderID := connect(t, hub, outsider, "u2")
	require.NoError(t, hub.Join(outsiderID, "e2"))

	dispatcher.EmitToRoom(context.Background(), "e1", domain.EventEventMessage, "hello")
}

func TestDispatcher_EmitGlobal_Excludes_Every_Session_Of_The_Sender(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	hub := newTestHub()
	dispatcher := newTestDispatcher(hub)

	// Given the sender on two devices
	for i := 0; i < 2; i++ {
		sink := mocks.NewMockSessionSink(ctrl)
		sink.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		connect(t, hub, sink, "sender")
	}
	// And three other connected users
	reached := map[domain.UserID]int{}
	for _, u := range []domain.UserID{"u1", "u2", "u3"} {
		sink := mocks.NewMockSessionSink(ctrl)
		sink.EXPECT().Send(gomock.Any(), domain.EventGlobalMessage, gomock.Any()).
			DoAndReturn(func(context.Context, string, any) error {
				reached[u]++
				return nil
			})
		connect(t, hub, sink, u)
	}

	// When the sender broadcasts
	dispatcher.EmitGlobal(context.Background(), domain.EventGlobalMessage, "hi",
		hub.Registry().SessionsFor("sender")...)

	// Then exactly three users are reached, once each
	req.Equal(map[domain.UserID]int{"u1": 1, "u2": 1, "u3": 1}, reached)
}

func TestDispatcher_Send_Carries_A_Deadline(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	hub := newTestHub()
	dispatcher := newTestDispatcher(hub)

	sink := mocks.NewMockSessionSink(ctrl)
	sink.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ any) error {
			_, ok := ctx.Deadline()
			req.True(ok)
			return nil
		})
	connect(t, hub, sink, "u1")

	req.True(dispatcher.EmitToUser(context.Background(), "u1", "notification", nil))
}
