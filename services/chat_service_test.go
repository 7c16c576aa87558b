package services

import (
	"context"
	"crew-dispatch/domain"
	apperrors "crew-dispatch/errors"
	"crew-dispatch/mocks"
	"crew-dispatch/runtime"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type chatFixture struct {
	stores
	hub           *runtime.Hub
	dispatcher    *runtime.Dispatcher
	notifications *NotificationService
	activities    *ActivityService
	chat          *ChatService
}

func newChatFixture(t *testing.T, ctrl *gomock.Controller) chatFixture {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	s := openStores(t)
	hub := runtime.NewHub(log, runtime.NewRegistry(), runtime.NewRooms())
	dispatcher := runtime.NewDispatcher(log, hub.Registry(), hub.Rooms(), hub, 0)
	notifications := NewNotificationService(log, s.users, dispatcher)
	activities := NewActivityService(log, s.activities, s.users, s.opportunities, s.events)
	chat := NewChatService(log, s.users, s.messages, s.chats, s.events, notifications, activities,
		dispatcher, inlineTasks(ctrl), 20)
	for _, u := range []domain.User{
		{ID: "u1", Name: "Una", NotificationSettings: domain.DefaultNotificationSettings()},
		{ID: "b", Name: "Bob", NotificationSettings: domain.DefaultNotificationSettings()},
		{ID: "c", Name: "Clara", NotificationSettings: domain.DefaultNotificationSettings()},
		{ID: "admin", Name: "Root", Role: domain.RoleAdmin, NotificationSettings: domain.DefaultNotificationSettings()},
	} {
		require.NoError(t, s.users.SaveUser(u))
	}
	return chatFixture{stores: s, hub: hub, dispatcher: dispatcher, notifications: notifications, activities: activities, chat: chat}
}

func TestChatService_Private_Message_To_Connected_Then_Disconnected_User(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := newChatFixture(t, ctrl)

	// Given u1 connected with session s1
	sink := mocks.NewMockSessionSink(ctrl)
	s1, err := f.hub.Connect(sink)
	req.NoError(err)
	req.NoError(f.hub.Identify(s1.ID, "u1"))

	// Then the gate reports a delivered notification
	sink.EXPECT().Send(gomock.Any(), domain.EventNotification, gomock.Any()).Return(nil)
	n := f.notifications.SendToUser(ctx, "u1", domain.CategoryPrivate, "New message", "hi", nil)
	req.NotNil(n)
	req.True(n.Delivered)

	// When b sends a private message, u1 receives the stored message and a notification
	sink.EXPECT().Send(gomock.Any(), domain.EventPrivateMessage, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any) error {
			message, ok := payload.(domain.Message)
			req.True(ok)
			req.Equal("hello", message.Content)
			return nil
		})
	sink.EXPECT().Send(gomock.Any(), domain.EventNotification, gomock.Any()).Return(nil)
	message, chat, err := f.chat.SendPrivateMessage(ctx, domain.User{ID: "b", Name: "Bob"}, "u1", "hello")
	req.NoError(err)
	req.Equal(domain.UserID("u1"), message.Recipient)
	req.Equal(&message.ID, chat.LastMessage)

	// When s1 disconnects, nothing reaches the transport anymore
	f.hub.Disconnect(s1.ID)
	req.False(f.dispatcher.EmitToUser(ctx, "u1", domain.EventNotification, nil))
	n = f.notifications.SendToUser(ctx, "u1", domain.CategoryPrivate, "New message", "hi", nil)
	req.NotNil(n)
	req.False(n.Delivered)

	_, _, err = f.chat.SendPrivateMessage(ctx, domain.User{ID: "b", Name: "Bob"}, "u1", "are you there?")
	req.NoError(err)

	// Then the feed still records one entry for the sender
	feed, err := f.activities.GetUserFeed(ctx, "u1", 20, 0)
	req.NoError(err)
	req.Len(feed, 1)
	req.Equal(domain.ActivityPrivateMessage, feed[0].Type)
	req.Equal(domain.UserID("b"), feed[0].RelatedUser)
	req.Equal("Bob", feed[0].User.Name)
}

func TestChatService_Private_Message_Rules(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newChatFixture(t, gomock.NewController(t))

	_, _, err := f.chat.SendPrivateMessage(ctx, domain.User{ID: "b"}, "ghost", "hello")
	req.ErrorIs(err, apperrors.ErrUserNotFound)

	_, _, err = f.chat.SendPrivateMessage(ctx, domain.User{ID: "b"}, "b", "hello")
	req.ErrorIs(err, apperrors.ErrSelfMessage)
}

func TestChatService_Create_Private_Chat_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newChatFixture(t, gomock.NewController(t))

	// Given b opens a chat with c, then c opens one with b
	first, err := f.chat.CreatePrivateChat(ctx, domain.User{ID: "b"}, "c")
	req.NoError(err)
	second, err := f.chat.CreatePrivateChat(ctx, domain.User{ID: "c"}, "b")
	req.NoError(err)

	// Then both land in the same conversation, still empty
	req.Equal(first.ID, second.ID)
	req.Nil(second.LastMessage)

	_, err = f.chat.CreatePrivateChat(ctx, domain.User{ID: "b"}, "b")
	req.ErrorIs(err, apperrors.ErrSelfMessage)
	_, err = f.chat.CreatePrivateChat(ctx, domain.User{ID: "b"}, "ghost")
	req.ErrorIs(err, apperrors.ErrUserNotFound)
}

func TestChatService_Persistence_Failure_Is_Returned(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	users := mocks.NewMockIUserRepository(ctrl)
	messages := mocks.NewMockIMessageRepository(ctrl)
	tasks := mocks.NewMockITaskRunner(ctrl)
	chat := NewChatService(log, users, messages, mocks.NewMockIChatRepository(ctrl), mocks.NewMockIEventRepository(ctrl),
		mocks.NewMockINotificationGate(ctrl), mocks.NewMockIActivityFeed(ctrl), mocks.NewMockIDispatcher(ctrl), tasks, 20)

	messages.EXPECT().StoreMessage(gomock.Any()).Return(domain.Message{}, apperrors.ErrInvalidMessage)
	tasks.EXPECT().Go(gomock.Any(), gomock.Any()).Times(0)

	_, err := chat.SendGlobalMessage(context.Background(), domain.User{ID: "b"}, "hello")
	req.ErrorIs(err, apperrors.ErrInvalidMessage)
}

func TestChatService_Global_Message_Notifies_Everyone_But_The_Sender(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := newChatFixture(t, ctrl)

	// Given u1, c and the sender connected
	connected := map[domain.UserID]*mocks.MockSessionSink{}
	for _, u := range []domain.UserID{"u1", "c", "b"} {
		sink := mocks.NewMockSessionSink(ctrl)
		s, err := f.hub.Connect(sink)
		req.NoError(err)
		req.NoError(f.hub.Identify(s.ID, u))
		connected[u] = sink
	}
	// u1 is mentioned: one global notification plus one mention
	connected["u1"].EXPECT().Send(gomock.Any(), domain.EventNotification, gomock.Any()).Return(nil).Times(2)
	connected["c"].EXPECT().Send(gomock.Any(), domain.EventNotification, gomock.Any()).Return(nil).Times(1)
	connected["b"].EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	message, err := f.chat.SendGlobalMessage(ctx, domain.User{ID: "b", Name: "Bob"}, "hi @una and @bob")

	req.NoError(err)
	req.ElementsMatch([]domain.UserID{"u1", "b"}, message.Mentions)
	req.Equal([]domain.UserID{"b"}, message.ReadBy)
}

func TestChatService_Event_Message(t *testing.T) {
	ctx := context.Background()

	t.Run("should refuse inactive events and outsiders", func(t *testing.T) {
		req := require.New(t)
		f := newChatFixture(t, gomock.NewController(t))
		req.NoError(f.events.SaveEvent(domain.Event{ID: "e1", Title: "Dock", Status: domain.EventCompleted, Participants: []domain.UserID{"u1"}}))
		req.NoError(f.events.SaveEvent(domain.Event{ID: "e2", Title: "Dock", Participants: []domain.UserID{"u1"}}))

		_, err := f.chat.SendEventMessage(ctx, domain.User{ID: "u1"}, "e1", "hi")
		req.ErrorIs(err, apperrors.ErrEventNotActive)

		_, err = f.chat.SendEventMessage(ctx, domain.User{ID: "c"}, "e2", "hi")
		req.ErrorIs(err, apperrors.ErrNotParticipant)

		_, err = f.chat.SendEventMessage(ctx, domain.User{ID: "admin", Role: domain.RoleAdmin}, "e2", "hi")
		req.NoError(err)

		_, err = f.chat.SendEventMessage(ctx, domain.User{ID: "u1"}, "nope", "hi")
		req.ErrorIs(err, apperrors.ErrEventNotFound)
	})

	t.Run("should push to the room and record mentions of participants only", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		f := newChatFixture(t, ctrl)
		req.NoError(f.events.SaveEvent(domain.Event{ID: "e1", Title: "Dock", Participants: []domain.UserID{"u1", "b"}}))

		// Given a session of b watching the room
		sink := mocks.NewMockSessionSink(ctrl)
		s, err := f.hub.Connect(sink)
		req.NoError(err)
		req.NoError(f.hub.Join(s.ID, "e1"))
		sink.EXPECT().Send(gomock.Any(), domain.EventEventMessage, gomock.Any()).Return(nil)

		// When u1 mentions b and clara, who is not a participant
		message, err := f.chat.SendEventMessage(ctx, domain.User{ID: "u1", Name: "Una"}, "e1", "@bob @clara ready?")

		// Then only b is mentioned and gets a grouped feed entry
		req.NoError(err)
		req.Equal([]domain.UserID{"b"}, message.Mentions)
		feed, err := f.activities.GetUserFeed(ctx, "b", 20, 0)
		req.NoError(err)
		req.Len(feed, 1)
		req.Equal(domain.ActivityJobMessage, feed[0].Type)
		req.Equal(domain.EventMentionGroupKey("e1"), feed[0].GroupKey)

		feed, err = f.activities.GetUserFeed(ctx, "c", 20, 0)
		req.NoError(err)
		req.Empty(feed)
	})
	t.Run("should mention nobody in an event without participants", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		f := newChatFixture(t, ctrl)
		req.NoError(f.events.SaveEvent(domain.Event{ID: "e9", Title: "Empty"}))

		// When an admin mentions bob in an event nobody joined
		message, err := f.chat.SendEventMessage(ctx, domain.User{ID: "admin", Name: "Root", Role: domain.RoleAdmin}, "e9", "@bob look")

		// Then bob is neither mentioned nor given a feed entry
		req.NoError(err)
		req.Empty(message.Mentions)
		feed, err := f.activities.GetUserFeed(ctx, "b", 20, 0)
		req.NoError(err)
		req.Empty(feed)
	})
}

func TestChatService_History_Marks_Pages_Read(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newChatFixture(t, gomock.NewController(t))

	// Given b and u1 exchanged three messages
	for _, m := range []struct {
		from, to domain.UserID
		content  string
	}{{"b", "u1", "one"}, {"u1", "b", "two"}, {"b", "u1", "three"}} {
		_, _, err := f.chat.SendPrivateMessage(ctx, domain.User{ID: m.from}, m.to, m.content)
		req.NoError(err)
	}
	counts, err := f.chat.GetUnreadCounts(ctx, "u1")
	req.NoError(err)
	req.Equal(2, counts.Private)

	// When u1 opens the conversation
	page, err := f.chat.GetPrivateMessages(ctx, "u1", "b", 1, 2)
	req.NoError(err)

	// Then the newest two come back oldest first and b's message in the page is read
	req.Len(page.Messages, 2)
	req.Equal("two", page.Messages[0].Content)
	req.Equal("three", page.Messages[1].Content)
	req.Equal(Pagination{Page: 1, Limit: 2, TotalPages: 2, TotalMessages: 3}, page.Pagination)
	req.Equal("Bob", page.OtherUser.Name)

	counts, err = f.chat.GetUnreadCounts(ctx, "u1")
	req.NoError(err)
	req.Equal(1, counts.Private)
	req.Equal(1, counts.Total)

	chats, err := f.chat.GetPrivateChats(ctx, "u1")
	req.NoError(err)
	req.Len(chats, 1)
	req.Equal("Bob", chats[0].OtherUser.Name)
	req.Equal("three", chats[0].LastMessage.Content)
}

func TestChatService_Unread_Counts_Per_Active_Event(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newChatFixture(t, gomock.NewController(t))

	req.NoError(f.events.SaveEvent(domain.Event{ID: "e1", Title: "Dock", Participants: []domain.UserID{"u1", "b"}}))
	req.NoError(f.events.SaveEvent(domain.Event{ID: "e2", Title: "Quay", Participants: []domain.UserID{"u1", "b"}}))
	_, err := f.chat.SendEventMessage(ctx, domain.User{ID: "b"}, "e1", "one")
	req.NoError(err)
	_, err = f.chat.SendEventMessage(ctx, domain.User{ID: "b"}, "e1", "two")
	req.NoError(err)
	_, err = f.chat.SendGlobalMessage(ctx, domain.User{ID: "b"}, "hello all")
	req.NoError(err)

	counts, err := f.chat.GetUnreadCounts(ctx, "u1")
	req.NoError(err)
	req.Equal(map[string]int{"e1": 2}, counts.Events)
	req.Equal(1, counts.Global)
	req.Equal(3, counts.Total)

	// Reading the event chat clears its count
	_, err = f.chat.GetEventMessages(ctx, domain.User{ID: "u1"}, "e1", 1, 20)
	req.NoError(err)
	counts, err = f.chat.GetUnreadCounts(ctx, "u1")
	req.NoError(err)
	req.Empty(counts.Events)
}
