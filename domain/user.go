// Package domain contains core concepts of the dispatch platform.
// This file defines users as seen by the delivery subsystem.
// No runtime, network, or storage logic should be added here.
package domain

import "time"

type UserID string

func (u UserID) String() string {
	return string(u)
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// NotificationSettings is the durable preference block of a user profile.
// The delivery subsystem reads it but never mutates it.
type NotificationSettings struct {
	GlobalMessages     bool `json:"globalMessages"`
	EventMessages      bool `json:"eventMessages"`
	PrivateMessages    bool `json:"privateMessages"`
	OpportunityUpdates bool `json:"opportunityUpdates"`
}

// DefaultNotificationSettings enables every category, as a freshly created profile does.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		GlobalMessages:     true,
		EventMessages:      true,
		PrivateMessages:    true,
		OpportunityUpdates: true,
	}
}

type User struct {
	ID                   UserID               `json:"id"`
	Name                 string               `json:"name"`
	Email                string               `json:"email"`
	Role                 Role                 `json:"role"`
	IsApproved           bool                 `json:"isApproved"`
	NotificationSettings NotificationSettings `json:"notificationSettings"`
	CreatedAt            time.Time            `json:"createdAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary is the projection used when a user is embedded in another document.
type UserSummary struct {
	ID    UserID `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
