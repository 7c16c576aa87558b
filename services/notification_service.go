package services

import (
	"context"
	"crew-dispatch/contract"
	"crew-dispatch/domain"
	"crew-dispatch/repositories"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

var _ contract.INotificationGate = (*NotificationService)(nil)

// NotificationService is the only path turning a domain action into a push notification.
// It checks the stored preference of the target before handing the record to the dispatcher.
type NotificationService struct {
	log        *slog.Logger
	users      repositories.IUserRepository
	dispatcher contract.IDispatcher
	now        func() time.Time
}

func NewNotificationService(log *slog.Logger, users repositories.IUserRepository,
	dispatcher contract.IDispatcher) *NotificationService {
	return &NotificationService{log: log, users: users, dispatcher: dispatcher, now: time.Now}
}

// SendToUser returns nil when the user opted out of category or cannot be looked up.
// Otherwise the notification is returned whether or not a live session received it:
// Delivered tells which.
func (s *NotificationService) SendToUser(ctx context.Context, userID domain.UserID, category domain.Category,
	title, body string, data map[string]string) *domain.Notification {
	settings, err := s.users.GetNotificationSettings(userID)
	if err != nil {
		s.log.Warn("Cannot read notification settings", "user_id", userID, "error", err)
		return nil
	}
	if !category.Enabled(settings) {
		s.log.Debug("Notification suppressed by preference", "user_id", userID, "category", category)
		return nil
	}
	if data == nil {
		data = map[string]string{}
	}
	notification := domain.Notification{
		UserID:    userID,
		Category:  category,
		Title:     title,
		Body:      body,
		Data:      data,
		Timestamp: s.now().UTC(),
	}
	notification.Delivered = s.dispatcher.EmitToUser(ctx, userID, domain.EventNotification, notification)
	return &notification
}

func (s *NotificationService) SendToUsers(ctx context.Context, userIDs []domain.UserID, category domain.Category,
	title, body string, data map[string]string) []domain.Notification {
	return lo.FilterMap(userIDs, func(userID domain.UserID, _ int) (domain.Notification, bool) {
		n := s.SendToUser(ctx, userID, category, title, body, data)
		if n == nil {
			return domain.Notification{}, false
		}
		return *n, true
	})
}

// SendGlobalNotification notifies every user accepting global messages, minus excludeUserIDs.
func (s *NotificationService) SendGlobalNotification(ctx context.Context, title, body string,
	data map[string]string, excludeUserIDs []domain.UserID) []domain.Notification {
	users, err := s.users.ListByGlobalMessages(excludeUserIDs)
	if err != nil {
		s.log.Error("Cannot list users for global notification", "error", err)
		return nil
	}
	userIDs := lo.Map(users, func(u domain.User, _ int) domain.UserID { return u.ID })
	return s.SendToUsers(ctx, userIDs, domain.CategoryGlobal, title, body, data)
}
