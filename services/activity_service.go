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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var _ contract.IActivityFeed = (*ActivityService)(nil)

const defaultFeedLimit = 20

// ActivityService keeps the durable per-user feed. Entries carrying a group key
// are upserted so a burst of same-kind events collapses into one refreshed row.
type ActivityService struct {
	log           *slog.Logger
	activities    repositories.IActivityRepository
	users         repositories.IUserRepository
	opportunities repositories.IOpportunityRepository
	events        repositories.IEventRepository
	validate      *validator.Validate
	now           func() time.Time
}

func NewActivityService(log *slog.Logger, activities repositories.IActivityRepository,
	users repositories.IUserRepository, opportunities repositories.IOpportunityRepository,
	events repositories.IEventRepository) *ActivityService {
	return &ActivityService{
		log:           log,
		activities:    activities,
		users:         users,
		opportunities: opportunities,
		events:        events,
		validate:      validator.New(),
		now:           time.Now,
	}
}

func (s *ActivityService) CreateActivity(_ context.Context, input domain.NewActivity) (domain.Activity, error) {
	if err := s.validate.Struct(input); err != nil {
		return domain.Activity{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidActivity, err)
	}
	if !input.Type.Valid() {
		return domain.Activity{}, fmt.Errorf("%w: unknown type %q", apperrors.ErrInvalidActivity, input.Type)
	}
	at := s.now().UTC()
	if input.GroupKey != "" {
		activity, err := s.activities.UpsertGroup(input, at)
		if err != nil {
			return domain.Activity{}, fmt.Errorf("upsert activity %s for %s: %w", input.GroupKey, input.User, err)
		}
		return activity, nil
	}
	activity := input.ToActivity(at)
	if err := s.activities.Insert(activity); err != nil {
		return domain.Activity{}, fmt.Errorf("insert activity for %s: %w", input.User, err)
	}
	return activity, nil
}

// GetUserFeed returns a page of the feed, newest refresh first, with references resolved.
// A reference to something that no longer exists is left empty.
func (s *ActivityService) GetUserFeed(_ context.Context, userID domain.UserID, limit, skip int) ([]domain.FeedEntry, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if skip < 0 {
		skip = 0
	}
	activities, err := s.activities.ListByUser(userID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list feed of %s: %w", userID, err)
	}
	entries := make([]domain.FeedEntry, 0, len(activities))
	for _, activity := range activities {
		entry, err := s.resolve(activity)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *ActivityService) resolve(activity domain.Activity) (domain.FeedEntry, error) {
	entry := domain.FeedEntry{Activity: activity}
	if activity.RelatedUser != "" {
		user, err := s.users.GetUser(activity.RelatedUser)
		switch {
		case err == nil:
			entry.User = lo.ToPtr(user.Summary())
		case !errors.Is(err, apperrors.ErrUserNotFound):
			return entry, err
		}
	}
	if activity.RelatedOpportunity != "" {
		opportunity, err := s.opportunities.GetOpportunity(activity.RelatedOpportunity)
		switch {
		case err == nil:
			entry.Opportunity = &domain.TitleRef{ID: opportunity.ID, Title: opportunity.Title}
		case !errors.Is(err, apperrors.ErrOpportunityNotFound):
			return entry, err
		}
	}
	if activity.RelatedEvent != "" {
		event, err := s.events.GetEvent(activity.RelatedEvent)
		switch {
		case err == nil:
			entry.Event = &domain.TitleRef{ID: event.ID, Title: event.Title}
		case !errors.Is(err, apperrors.ErrEventNotFound):
			return entry, err
		}
	}
	return entry, nil
}

// MarkActivitiesAsRead marks the listed entries, or the whole feed when ids is empty.
// The count only includes entries that were unread.
func (s *ActivityService) MarkActivitiesAsRead(_ context.Context, userID domain.UserID, ids []uuid.UUID) (int, error) {
	modified, err := s.activities.MarkRead(userID, ids, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("mark feed of %s as read: %w", userID, err)
	}
	s.log.Debug("Activities marked as read", "user_id", userID, "count", modified)
	return modified, nil
}
