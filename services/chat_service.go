package services

import (
	"context"
	"crew-dispatch/contract"
	"crew-dispatch/domain"
	apperrors "crew-dispatch/errors"
	"crew-dispatch/repositories"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IChatService interface {
	SendGlobalMessage(ctx context.Context, sender domain.User, content string) (domain.Message, error)
	SendPrivateMessage(ctx context.Context, sender domain.User, recipientID domain.UserID, content string) (domain.Message, domain.Chat, error)
	SendEventMessage(ctx context.Context, sender domain.User, eventID string, content string) (domain.Message, error)
	CreatePrivateChat(ctx context.Context, sender domain.User, recipientID domain.UserID) (domain.Chat, error)
	GetGlobalMessages(ctx context.Context, reader domain.UserID, page, limit int) (MessagePage, error)
	GetPrivateMessages(ctx context.Context, reader, other domain.UserID, page, limit int) (PrivateMessagePage, error)
	GetEventMessages(ctx context.Context, reader domain.User, eventID string, page, limit int) (EventMessagePage, error)
	GetPrivateChats(ctx context.Context, userID domain.UserID) ([]ChatSummary, error)
	GetUnreadCounts(ctx context.Context, userID domain.UserID) (UnreadCounts, error)
}

type Pagination struct {
	Page          int `json:"page"`
	Limit         int `json:"limit"`
	TotalPages    int `json:"totalPages"`
	TotalMessages int `json:"totalMessages"`
}

type MessagePage struct {
	Messages   []domain.Message `json:"messages"`
	Pagination Pagination       `json:"pagination"`
}

type PrivateMessagePage struct {
	MessagePage
	OtherUser *domain.UserSummary `json:"otherUser"`
}

type EventMessagePage struct {
	MessagePage
	Event domain.Event `json:"event"`
}

type ChatSummary struct {
	ID          uuid.UUID           `json:"_id"`
	OtherUser   *domain.UserSummary `json:"otherUser"`
	LastMessage *domain.Message     `json:"lastMessage"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type UnreadCounts struct {
	Global  int            `json:"global"`
	Private int            `json:"private"`
	Events  map[string]int `json:"events"`
	Total   int            `json:"total"`
}

// ChatService runs the messaging domain actions.
// The stored message is the outcome of an action: a persistence failure is returned.
// Notifications are spawned as tasks and never delay or fail the action.
type ChatService struct {
	log           *slog.Logger
	users         repositories.IUserRepository
	messages      repositories.IMessageRepository
	chats         repositories.IChatRepository
	events        repositories.IEventRepository
	notifications contract.INotificationGate
	activities    contract.IActivityFeed
	dispatcher    contract.IDispatcher
	tasks         contract.ITaskRunner
	pageSize      int
	now           func() time.Time
}

func NewChatService(log *slog.Logger,
	users repositories.IUserRepository,
	messages repositories.IMessageRepository,
	chats repositories.IChatRepository,
	events repositories.IEventRepository,
	notifications contract.INotificationGate,
	activities contract.IActivityFeed,
	dispatcher contract.IDispatcher,
	tasks contract.ITaskRunner,
	pageSize int) *ChatService {
	if pageSize <= 0 {
		pageSize = defaultFeedLimit
	}
	return &ChatService{
		log:           log,
		users:         users,
		messages:      messages,
		chats:         chats,
		events:        events,
		notifications: notifications,
		activities:    activities,
		dispatcher:    dispatcher,
		tasks:         tasks,
		pageSize:      pageSize,
		now:           time.Now,
	}
}

func (s *ChatService) SendGlobalMessage(ctx context.Context, sender domain.User, content string) (domain.Message, error) {
	mentions, err := s.resolveMentions(content, s.users.FindByNames)
	if err != nil {
		return domain.Message{}, err
	}
	message, err := s.messages.StoreMessage(domain.Message{
		Sender:    sender.ID,
		Content:   content,
		Channel:   domain.ChannelGlobal,
		Mentions:  mentions,
		ReadBy:    []domain.UserID{sender.ID},
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("store global message: %w", err)
	}

	data := map[string]string{
		"senderId":  sender.ID.String(),
		"messageId": message.ID.String(),
		"chatType":  string(domain.ChannelGlobal),
	}
	s.spawn("global-message-notification", func(ctx context.Context) error {
		s.notifications.SendGlobalNotification(ctx, "New Global Message",
			fmt.Sprintf("%s sent a global message", sender.Name), data, []domain.UserID{sender.ID})
		for _, mentioned := range lo.Without(mentions, sender.ID) {
			s.notifications.SendToUser(ctx, mentioned, domain.CategoryGlobal, "You were mentioned",
				fmt.Sprintf("%s mentioned you in the global chat", sender.Name), data)
		}
		return nil
	})
	return message, nil
}

func (s *ChatService) SendPrivateMessage(ctx context.Context, sender domain.User, recipientID domain.UserID,
	content string) (domain.Message, domain.Chat, error) {
	if _, err := s.users.GetUser(recipientID); err != nil {
		return domain.Message{}, domain.Chat{}, fmt.Errorf("recipient: %w", err)
	}
	if sender.ID == recipientID {
		return domain.Message{}, domain.Chat{}, apperrors.ErrSelfMessage
	}
	at := s.now().UTC()
	chat, err := s.chats.FindOrCreatePrivate(sender.ID, recipientID, at)
	if err != nil {
		return domain.Message{}, domain.Chat{}, fmt.Errorf("find private chat: %w", err)
	}
	message, err := s.messages.StoreMessage(domain.Message{
		Sender:    sender.ID,
		Recipient: recipientID,
		Content:   content,
		Channel:   domain.ChannelPrivate,
		ChatID:    chat.ID.String(),
		ReadBy:    []domain.UserID{sender.ID},
		CreatedAt: at,
	})
	if err != nil {
		return domain.Message{}, domain.Chat{}, fmt.Errorf("store private message: %w", err)
	}
	if err = s.chats.Touch(chat.ID, message.ID, at); err != nil {
		return domain.Message{}, domain.Chat{}, fmt.Errorf("update private chat: %w", err)
	}
	chat.LastMessage = lo.ToPtr(message.ID)
	chat.UpdatedAt = at

	s.recordActivity(ctx, domain.NewActivity{
		User:        recipientID,
		Type:        domain.ActivityPrivateMessage,
		RelatedUser: sender.ID,
		GroupKey:    domain.PrivateMessageGroupKey(sender.ID),
	})

	data := map[string]string{
		"messageId": message.ID.String(),
		"senderId":  sender.ID.String(),
		"chatId":    chat.ID.String(),
	}
	s.spawn("private-message-notification", func(ctx context.Context) error {
		s.dispatcher.EmitToUser(ctx, recipientID, domain.EventPrivateMessage, message)
		s.notifications.SendToUser(ctx, recipientID, domain.CategoryPrivate, "New message",
			fmt.Sprintf("%s sent you a message", sender.Name), data)
		return nil
	})
	return message, chat, nil
}

// CreatePrivateChat opens the conversation without writing into it.
func (s *ChatService) CreatePrivateChat(_ context.Context, sender domain.User, recipientID domain.UserID) (domain.Chat, error) {
	if _, err := s.users.GetUser(recipientID); err != nil {
		return domain.Chat{}, fmt.Errorf("recipient: %w", err)
	}
	if sender.ID == recipientID {
		return domain.Chat{}, apperrors.ErrSelfMessage
	}
	chat, err := s.chats.FindOrCreatePrivate(sender.ID, recipientID, s.now().UTC())
	if err != nil {
		return domain.Chat{}, fmt.Errorf("find private chat: %w", err)
	}
	return chat, nil
}

func (s *ChatService) SendEventMessage(ctx context.Context, sender domain.User, eventID string,
	content string) (domain.Message, error) {
	event, err := s.events.GetEvent(eventID)
	if err != nil {
		return domain.Message{}, err
	}
	if !event.IsActive() {
		return domain.Message{}, apperrors.ErrEventNotActive
	}
	if !event.HasParticipant(sender.ID) && !sender.IsAdmin() {
		return domain.Message{}, apperrors.ErrNotParticipant
	}
	mentions, err := s.resolveMentions(content, func(names []string) ([]domain.User, error) {
		return s.users.FindParticipantsByNames(names, event.Participants)
	})
	if err != nil {
		return domain.Message{}, err
	}
	message, err := s.messages.StoreMessage(domain.Message{
		Sender:    sender.ID,
		Content:   content,
		Channel:   domain.ChannelEvent,
		EventID:   event.ID,
		Mentions:  mentions,
		ReadBy:    []domain.UserID{sender.ID},
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("store event message: %w", err)
	}

	mentioned := lo.Without(mentions, sender.ID)
	for _, userID := range mentioned {
		s.recordActivity(ctx, domain.NewActivity{
			User:         userID,
			Type:         domain.ActivityJobMessage,
			RelatedUser:  sender.ID,
			RelatedEvent: event.ID,
			GroupKey:     domain.EventMentionGroupKey(event.ID),
		})
	}

	data := map[string]string{
		"messageId": message.ID.String(),
		"senderId":  sender.ID.String(),
		"eventId":   event.ID,
		"chatType":  string(domain.ChannelEvent),
	}
	others := lo.Filter(event.Participants, func(p domain.UserID, _ int) bool {
		return p != sender.ID && !lo.Contains(mentioned, p)
	})
	s.spawn("event-message-notification", func(ctx context.Context) error {
		s.dispatcher.EmitToRoom(ctx, event.Room(), domain.EventEventMessage, message)
		s.notifications.SendToUsers(ctx, mentioned, domain.CategoryEvent, "You were mentioned",
			fmt.Sprintf("%s mentioned you in the %s chat", sender.Name, event.Title), data)
		s.notifications.SendToUsers(ctx, others, domain.CategoryEvent, "New message in event",
			fmt.Sprintf("%s sent a message in %s", sender.Name, event.Title), data)
		return nil
	})
	return message, nil
}

func (s *ChatService) GetGlobalMessages(_ context.Context, reader domain.UserID, page, limit int) (MessagePage, error) {
	return s.page(domain.ChannelGlobal, "all", reader, "", page, limit)
}

// GetPrivateMessages only marks as read what the other participant wrote.
func (s *ChatService) GetPrivateMessages(_ context.Context, reader, other domain.UserID, page, limit int) (PrivateMessagePage, error) {
	messages, err := s.page(domain.ChannelPrivate, domain.ConversationKey(reader, other), reader, other, page, limit)
	if err != nil {
		return PrivateMessagePage{}, err
	}
	result := PrivateMessagePage{MessagePage: messages}
	user, err := s.users.GetUser(other)
	switch {
	case err == nil:
		result.OtherUser = lo.ToPtr(user.Summary())
	case !errors.Is(err, apperrors.ErrUserNotFound):
		return PrivateMessagePage{}, err
	}
	return result, nil
}

func (s *ChatService) GetEventMessages(_ context.Context, reader domain.User, eventID string, page, limit int) (EventMessagePage, error) {
	event, err := s.events.GetEvent(eventID)
	if err != nil {
		return EventMessagePage{}, err
	}
	if !event.HasParticipant(reader.ID) && !reader.IsAdmin() {
		return EventMessagePage{}, apperrors.ErrNotParticipant
	}
	messages, err := s.page(domain.ChannelEvent, event.ID, reader.ID, "", page, limit)
	if err != nil {
		return EventMessagePage{}, err
	}
	return EventMessagePage{MessagePage: messages, Event: event}, nil
}

// page fetches one page and marks it read by reader. A non-empty from restricts
// the receipts to messages sent by that user.
func (s *ChatService) page(channel domain.Channel, scope string, reader, from domain.UserID, page, limit int) (MessagePage, error) {
	page = max(page, 1)
	if limit <= 0 {
		limit = s.pageSize
	}
	messages, total, err := s.messages.GetMessages(channel, scope, limit, (page-1)*limit)
	if err != nil {
		return MessagePage{}, fmt.Errorf("get %s messages: %w", channel, err)
	}
	unread := lo.FilterMap(messages, func(m domain.Message, _ int) (uuid.UUID, bool) {
		return m.ID, !m.IsReadBy(reader) && (from == "" || m.Sender == from)
	})
	if len(unread) > 0 {
		if _, err = s.messages.MarkRead(unread, reader); err != nil {
			return MessagePage{}, fmt.Errorf("mark %s messages as read: %w", channel, err)
		}
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return MessagePage{
		Messages: messages,
		Pagination: Pagination{
			Page:          page,
			Limit:         limit,
			TotalPages:    (total + limit - 1) / limit,
			TotalMessages: total,
		},
	}, nil
}

// GetPrivateChats lists the user's conversations, most recently active first.
func (s *ChatService) GetPrivateChats(_ context.Context, userID domain.UserID) ([]ChatSummary, error) {
	chats, err := s.chats.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list chats of %s: %w", userID, err)
	}
	summaries := make([]ChatSummary, 0, len(chats))
	for _, chat := range chats {
		summary := ChatSummary{ID: chat.ID, UpdatedAt: chat.UpdatedAt}
		if other, err := s.users.GetUser(chat.Other(userID)); err == nil {
			summary.OtherUser = lo.ToPtr(other.Summary())
		}
		if chat.LastMessage != nil {
			if last, err := s.messages.GetMessage(*chat.LastMessage); err == nil {
				summary.LastMessage = &last
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetUnreadCounts only counts event chats of active events the user takes part in.
// Events without unread messages are left out of the map.
func (s *ChatService) GetUnreadCounts(_ context.Context, userID domain.UserID) (UnreadCounts, error) {
	global, err := s.messages.CountUnread(domain.ChannelGlobal, "all", userID)
	if err != nil {
		return UnreadCounts{}, err
	}
	private, err := s.messages.CountUnread(domain.ChannelPrivate, "", userID)
	if err != nil {
		return UnreadCounts{}, err
	}
	events, err := s.events.ListActiveForUser(userID)
	if err != nil {
		return UnreadCounts{}, err
	}
	counts := UnreadCounts{Global: global, Private: private, Events: map[string]int{}}
	for _, event := range events {
		count, err := s.messages.CountUnread(domain.ChannelEvent, event.ID, userID)
		if err != nil {
			return UnreadCounts{}, err
		}
		if count > 0 {
			counts.Events[event.ID] = count
		}
	}
	counts.Total = counts.Global + counts.Private + lo.Sum(lo.Values(counts.Events))
	return counts, nil
}

// resolveMentions maps @names of content to the user ids find matches.
func (s *ChatService) resolveMentions(content string, find func(names []string) ([]domain.User, error)) ([]domain.UserID, error) {
	names := domain.ExtractMentions(content)
	if len(names) == 0 {
		return nil, nil
	}
	users, err := find(names)
	if err != nil {
		return nil, fmt.Errorf("resolve mentions: %w", err)
	}
	return lo.Map(users, func(u domain.User, _ int) domain.UserID { return u.ID }), nil
}

// recordActivity degrades the feed on failure but never fails the action.
func (s *ChatService) recordActivity(ctx context.Context, activity domain.NewActivity) {
	if _, err := s.activities.CreateActivity(ctx, activity); err != nil {
		s.log.Error("Cannot record activity", "user_id", activity.User, "type", activity.Type, "error", err)
	}
}

func (s *ChatService) spawn(name string, task contract.Task) {
	if err := s.tasks.Go(name, task); err != nil {
		s.log.Warn("Notification task not scheduled", "task", name, "error", err)
	}
}
