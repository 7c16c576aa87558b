package domain

import "github.com/samber/lo"

type EventStatus string

const (
	EventActive    EventStatus = "active"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// Event is the scheduled job created when an opportunity closes.
// Only what the delivery subsystem reads is modelled here.
type Event struct {
	ID             string      `json:"_id"`
	Title          string      `json:"title"`
	Status         EventStatus `json:"status"`
	Participants   []UserID    `json:"participants"`
	OriginatedFrom string      `json:"originatedFrom,omitempty"`
}

func (e Event) IsActive() bool {
	return e.Status == EventActive
}

func (e Event) HasParticipant(u UserID) bool {
	return lo.Contains(e.Participants, u)
}

func (e Event) Room() RoomID {
	return RoomID(e.ID)
}

// Opportunity is a job posting. Users apply, get selected, then it closes into an Event.
type Opportunity struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	CreatedBy UserID `json:"createdBy"`
}
