package domain

import (
	"time"

	"github.com/google/uuid"
)

// Chat is a private conversation between exactly two users.
type Chat struct {
	ID           uuid.UUID  `json:"_id"`
	Participants []UserID   `json:"participants"`
	LastMessage  *uuid.UUID `json:"lastMessage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Other returns the participant that is not me.
func (c Chat) Other(me UserID) UserID {
	for _, p := range c.Participants {
		if p != me {
			return p
		}
	}
	return ""
}
