package domain

import (
	"fmt"
	"time"
)

// Category selects which preference flag gates a notification.
type Category string

const (
	CategoryGlobal      Category = "global"
	CategoryEvent       Category = "event"
	CategoryPrivate     Category = "private"
	CategoryOpportunity Category = "opportunity"
)

// ParseCategory rejects anything outside the four known categories.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryGlobal, CategoryEvent, CategoryPrivate, CategoryOpportunity:
		return c, nil
	default:
		return "", fmt.Errorf("invalid notification category %q: must be global, event, private or opportunity", s)
	}
}

// Enabled reports whether settings allow this category.
// Every category maps to exactly one flag.
func (c Category) Enabled(s NotificationSettings) bool {
	switch c {
	case CategoryGlobal:
		return s.GlobalMessages
	case CategoryEvent:
		return s.EventMessages
	case CategoryPrivate:
		return s.PrivateMessages
	case CategoryOpportunity:
		return s.OpportunityUpdates
	default:
		return false
	}
}

// EventNotification is the transport event name notifications are pushed under.
const EventNotification = "notification"

// Notification is the record pushed to live sessions and returned to callers.
// Delivered is not part of the wire shape: it tells the caller whether a live
// session was found, so it can fall back to the feed.
type Notification struct {
	UserID    UserID            `json:"userId"`
	Category  Category          `json:"category"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data"`
	Timestamp time.Time         `json:"timestamp"`
	Delivered bool              `json:"-"`
}
