package services

import (
	"context"
	"crew-dispatch/contract"
	"crew-dispatch/domain"
	"crew-dispatch/repositories"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

type IOpportunityNotifier interface {
	OpportunityPosted(ctx context.Context, creator domain.User, opportunity domain.Opportunity) (domain.Message, error)
	ApplicantReviewed(ctx context.Context, opportunity domain.Opportunity, applicant domain.UserID, selected bool) error
	OpportunityClosed(ctx context.Context, opportunity domain.Opportunity, event domain.Event, passedOver []domain.UserID) error
	EventCompleted(ctx context.Context, eventID string) error
	EventCancelled(ctx context.Context, eventID, reason string) error
}

// OpportunityNotifier holds the delivery side of the job lifecycle: who hears about
// a posting, a selection, a closing, and how the resulting event ends.
type OpportunityNotifier struct {
	log           *slog.Logger
	users         repositories.IUserRepository
	messages      repositories.IMessageRepository
	events        repositories.IEventRepository
	notifications contract.INotificationGate
	activities    contract.IActivityFeed
	tasks         contract.ITaskRunner
	now           func() time.Time
}

func NewOpportunityNotifier(log *slog.Logger,
	users repositories.IUserRepository,
	messages repositories.IMessageRepository,
	events repositories.IEventRepository,
	notifications contract.INotificationGate,
	activities contract.IActivityFeed,
	tasks contract.ITaskRunner) *OpportunityNotifier {
	return &OpportunityNotifier{
		log:           log,
		users:         users,
		messages:      messages,
		events:        events,
		notifications: notifications,
		activities:    activities,
		tasks:         tasks,
		now:           time.Now,
	}
}

// OpportunityPosted announces a posting in the global chat and notifies every approved
// worker following opportunity updates, except its creator.
func (n *OpportunityNotifier) OpportunityPosted(ctx context.Context, creator domain.User,
	opportunity domain.Opportunity) (domain.Message, error) {
	announcement, err := n.messages.StoreMessage(domain.Message{
		Sender:            creator.ID,
		Content:           fmt.Sprintf("New job opportunity: %s", opportunity.Title),
		Channel:           domain.ChannelGlobal,
		LinkedOpportunity: opportunity.ID,
		ReadBy:            []domain.UserID{creator.ID},
		CreatedAt:         n.now().UTC(),
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("store announcement: %w", err)
	}
	n.spawn("opportunity-posted", func(ctx context.Context) error {
		users, err := n.users.ListByOpportunityUpdates([]domain.UserID{creator.ID})
		if err != nil {
			return fmt.Errorf("list users following opportunities: %w", err)
		}
		recipients := lo.Uniq(lo.Map(users, func(u domain.User, _ int) domain.UserID { return u.ID }))
		n.log.Info(fmt.Sprintf("Sending opportunity notifications to %d users", len(recipients)))
		n.notifications.SendToUsers(ctx, recipients, domain.CategoryOpportunity, "New Job Opportunity",
			fmt.Sprintf("New opportunity available: %s", opportunity.Title),
			map[string]string{"opportunityId": opportunity.ID, "type": "new_opportunity"})
		return nil
	})
	return announcement, nil
}

// ApplicantReviewed tells an applicant the outcome. A selection also lands in the feed.
func (n *OpportunityNotifier) ApplicantReviewed(ctx context.Context, opportunity domain.Opportunity,
	applicant domain.UserID, selected bool) error {
	if selected {
		if _, err := n.activities.CreateActivity(ctx, domain.NewActivity{
			User:               applicant,
			Type:               domain.ActivityJobAcceptance,
			RelatedOpportunity: opportunity.ID,
		}); err != nil {
			n.log.Error("Cannot record job acceptance", "user_id", applicant, "error", err)
		}
	}
	title, body, kind := "Job Application Update",
		fmt.Sprintf("Your application for %q was not selected", opportunity.Title), "job_rejection"
	if selected {
		title, body, kind = "Job Application Selected",
			fmt.Sprintf("You've been selected for %q", opportunity.Title), "job_selection"
	}
	n.spawn("applicant-reviewed", func(ctx context.Context) error {
		n.notifications.SendToUser(ctx, applicant, domain.CategoryOpportunity, title, body,
			map[string]string{"opportunityId": opportunity.ID, "type": kind})
		return nil
	})
	return nil
}

// OpportunityClosed records the event born from the opportunity, tells the applicants
// left out through their feed and the selected ones through a notification.
func (n *OpportunityNotifier) OpportunityClosed(ctx context.Context, opportunity domain.Opportunity,
	event domain.Event, passedOver []domain.UserID) error {
	event.OriginatedFrom = opportunity.ID
	if event.Status == "" {
		event.Status = domain.EventActive
	}
	if err := n.events.SaveEvent(event); err != nil {
		return fmt.Errorf("save event %s: %w", event.ID, err)
	}
	for _, userID := range lo.Uniq(passedOver) {
		if _, err := n.activities.CreateActivity(ctx, domain.NewActivity{
			User:               userID,
			Type:               domain.ActivityJobClosed,
			RelatedOpportunity: opportunity.ID,
		}); err != nil {
			n.log.Error("Cannot record job closing", "user_id", userID, "error", err)
		}
	}
	n.spawn("opportunity-closed", func(ctx context.Context) error {
		n.notifications.SendToUsers(ctx, event.Participants, domain.CategoryEvent, "New Event Created",
			fmt.Sprintf("Event %q has been created and you're a participant", event.Title),
			map[string]string{"eventId": event.ID, "opportunityId": opportunity.ID, "type": "event_created"})
		return nil
	})
	return nil
}

func (n *OpportunityNotifier) EventCompleted(_ context.Context, eventID string) error {
	event, err := n.transition(eventID, domain.EventCompleted)
	if err != nil {
		return err
	}
	n.spawn("event-completed", func(ctx context.Context) error {
		n.notifications.SendToUsers(ctx, event.Participants, domain.CategoryEvent, "Event Completed",
			fmt.Sprintf("Event %q has been marked as completed", event.Title),
			map[string]string{"eventId": event.ID, "type": "event_completed"})
		return nil
	})
	return nil
}

func (n *OpportunityNotifier) EventCancelled(_ context.Context, eventID, reason string) error {
	event, err := n.transition(eventID, domain.EventCancelled)
	if err != nil {
		return err
	}
	body := fmt.Sprintf("Event %q has been cancelled", event.Title)
	if reason != "" {
		body += ": " + reason
	}
	n.spawn("event-cancelled", func(ctx context.Context) error {
		n.notifications.SendToUsers(ctx, event.Participants, domain.CategoryEvent, "Event Cancelled", body,
			map[string]string{"eventId": event.ID, "type": "event_cancelled"})
		return nil
	})
	return nil
}

// transition moves an active event to its final status. Ending an event closes its chat.
func (n *OpportunityNotifier) transition(eventID string, status domain.EventStatus) (domain.Event, error) {
	event, err := n.events.GetEvent(eventID)
	if err != nil {
		return domain.Event{}, err
	}
	event.Status = status
	if err = n.events.SaveEvent(event); err != nil {
		return domain.Event{}, fmt.Errorf("save event %s: %w", eventID, err)
	}
	return event, nil
}

func (n *OpportunityNotifier) spawn(name string, task contract.Task) {
	if err := n.tasks.Go(name, task); err != nil {
		n.log.Warn("Notification task not scheduled", "task", name, "error", err)
	}
}
