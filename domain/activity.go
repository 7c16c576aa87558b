package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityJobAcceptance  ActivityType = "job_acceptance"
	ActivityPrivateMessage ActivityType = "private_message"
	ActivityJobMessage     ActivityType = "job_message"
	ActivityJobClosed      ActivityType = "job_closed"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityJobAcceptance, ActivityPrivateMessage, ActivityJobMessage, ActivityJobClosed:
		return true
	default:
		return false
	}
}

// Activity is one durable row of a user's feed.
// CreatedAt is refreshed on every grouped upsert so the row moves back to the top.
type Activity struct {
	ID                 uuid.UUID    `json:"_id"`
	User               UserID       `json:"user"`
	Type               ActivityType `json:"type"`
	RelatedUser        UserID       `json:"relatedUser,omitempty"`
	RelatedOpportunity string       `json:"relatedOpportunity,omitempty"`
	RelatedEvent       string       `json:"relatedEvent,omitempty"`
	Read               bool         `json:"read"`
	GroupKey           string       `json:"groupKey,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// NewActivity is the input of a feed upsert.
type NewActivity struct {
	User               UserID       `validate:"required"`
	Type               ActivityType `validate:"required"`
	RelatedUser        UserID
	RelatedOpportunity string
	RelatedEvent       string
	GroupKey           string
}

// Refresh applies a repeated grouped activity onto an existing row.
// Only supplied references overwrite the stored ones.
func (a *Activity) Refresh(n NewActivity, at time.Time) {
	a.CreatedAt = at
	a.UpdatedAt = at
	a.Read = false
	if n.RelatedUser != "" {
		a.RelatedUser = n.RelatedUser
	}
	if n.RelatedOpportunity != "" {
		a.RelatedOpportunity = n.RelatedOpportunity
	}
	if n.RelatedEvent != "" {
		a.RelatedEvent = n.RelatedEvent
	}
}

func (n NewActivity) ToActivity(at time.Time) Activity {
	return Activity{
		ID:                 uuid.New(),
		User:               n.User,
		Type:               n.Type,
		RelatedUser:        n.RelatedUser,
		RelatedOpportunity: n.RelatedOpportunity,
		RelatedEvent:       n.RelatedEvent,
		GroupKey:           n.GroupKey,
		CreatedAt:          at,
		UpdatedAt:          at,
	}
}

// PrivateMessageGroupKey collapses every private message of one sender into one feed row,
// whatever the conversation.
func PrivateMessageGroupKey(sender UserID) string {
	return fmt.Sprintf("private_%s", sender)
}

func EventMentionGroupKey(eventID string) string {
	return fmt.Sprintf("event_%s_mention", eventID)
}

// TitleRef is the display projection of an opportunity or an event.
type TitleRef struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// FeedEntry is an activity with its references resolved for display.
type FeedEntry struct {
	Activity
	User        *UserSummary `json:"relatedUserInfo,omitempty"`
	Opportunity *TitleRef    `json:"relatedOpportunityInfo,omitempty"`
	Event       *TitleRef    `json:"relatedEventInfo,omitempty"`
}

// FormattedActivity is what the feed endpoint renders.
type FormattedActivity struct {
	ID        uuid.UUID    `json:"_id"`
	Type      ActivityType `json:"type"`
	Read      bool         `json:"read"`
	CreatedAt time.Time    `json:"createdAt"`
	Message   string       `json:"message"`
	Link      string       `json:"link"`
}

func FormatActivity(e FeedEntry) FormattedActivity {
	out := FormattedActivity{
		ID:        e.ID,
		Type:      e.Type,
		Read:      e.Read,
		CreatedAt: e.CreatedAt,
	}
	switch e.Type {
	case ActivityJobAcceptance:
		out.Message = fmt.Sprintf("You've been accepted for %s!", titleOr(e.Opportunity, "a job opportunity"))
		out.Link = "/jobs/" + e.RelatedOpportunity
	case ActivityPrivateMessage:
		name := "a user"
		if e.User != nil && e.User.Name != "" {
			name = e.User.Name
		}
		out.Message = "New message from " + name
		out.Link = "/messaging/private/" + e.RelatedUser.String()
	case ActivityJobMessage:
		out.Message = fmt.Sprintf("New message in %s channel", titleOr(e.Event, "job"))
		out.Link = "/messaging/event/" + e.RelatedEvent
	case ActivityJobClosed:
		out.Message = fmt.Sprintf("Job %q has been closed", titleOr(e.Opportunity, "opportunity"))
		out.Link = "/my-jobs/" + e.RelatedOpportunity
	default:
		out.Message = "New activity in your account"
		out.Link = "/"
	}
	return out
}

func titleOr(ref *TitleRef, fallback string) string {
	if ref == nil || ref.Title == "" {
		return fallback
	}
	return ref.Title
}
