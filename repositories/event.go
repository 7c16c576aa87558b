//go:generate go run go.uber.org/mock/mockgen -source=event.go -destination=../mocks/mock_event_repository.go -package=mocks
package repositories

import (
	"crew-dispatch/domain"
	apperrors "crew-dispatch/errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

type IEventRepository interface {
	SaveEvent(event domain.Event) error
	GetEvent(eventID string) (domain.Event, error)
	ListActiveForUser(userID domain.UserID) ([]domain.Event, error)
}

// EventRepository holds the slice of scheduled events the delivery subsystem reads:
// status and participants, for chat access and unread counts.
type EventRepository struct {
	db *badger.DB
}

func NewEventRepository(db *badger.DB) *EventRepository {
	return &EventRepository{db: db}
}

func eventKey(id string) string {
	return "event:" + id
}

func (r EventRepository) SaveEvent(event domain.Event) error {
	if event.ID == "" {
		return fmt.Errorf("%w: event id is required", apperrors.ErrEventNotFound)
	}
	if event.Status == "" {
		event.Status = domain.EventActive
	}
	return update(r.db, func(txn *badger.Txn) error {
		return setJSON(txn, eventKey(event.ID), event)
	})
}

func (r EventRepository) GetEvent(eventID string) (domain.Event, error) {
	var event domain.Event
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		event, err = getJSON[domain.Event](txn, eventKey(eventID), apperrors.ErrEventNotFound)
		return err
	})
	return event, err
}

func (r EventRepository) ListActiveForUser(userID domain.UserID) ([]domain.Event, error) {
	var events []domain.Event
	err := r.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, "event:", false, func(_, val []byte) (bool, error) {
			event, err := decodeJSON[domain.Event](val)
			if err != nil {
				return false, err
			}
			if event.IsActive() && event.HasParticipant(userID) {
				events = append(events, event)
			}
			return true, nil
		})
	})
	return events, err
}
