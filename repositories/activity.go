//go:generate go run go.uber.org/mock/mockgen -source=activity.go -destination=../mocks/mock_activity_repository.go -package=mocks
package repositories

import (
	"crew-dispatch/domain"
	apperrors "crew-dispatch/errors"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IActivityRepository interface {
	Insert(activity domain.Activity) error
	UpsertGroup(activity domain.NewActivity, at time.Time) (domain.Activity, error)
	GetActivity(id uuid.UUID) (domain.Activity, error)
	ListByUser(userID domain.UserID, limit, skip int) ([]domain.Activity, error)
	MarkRead(userID domain.UserID, ids []uuid.UUID, at time.Time) (int, error)
}

// ActivityRepository stores feed rows in badger.
//
// Keys:
//   - "activity:{id}" holds the activity itself.
//   - "feed:{len}.{user}:{createdAt_padded}:{id}" orders a user's feed, newest key last.
//   - "idx:group:{len}.{user}:{type}:{groupKey}" points at the single row of a group.
type ActivityRepository struct {
	db *badger.DB
}

func NewActivityRepository(db *badger.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func activityKey(id uuid.UUID) string {
	return "activity:" + id.String()
}

func feedPrefix(userID domain.UserID) string {
	return "feed:" + segment(userID.String()) + ":"
}

func feedKey(a domain.Activity) string {
	return feedPrefix(a.User) + timeKey(a.CreatedAt) + ":" + a.ID.String()
}

func groupKey(userID domain.UserID, t domain.ActivityType, key string) string {
	return fmt.Sprintf("idx:group:%s:%s:%s", segment(userID.String()), t, key)
}

// Insert writes a new row. A grouped row fails with ErrGroupKeyTaken when its group already exists.
func (r ActivityRepository) Insert(activity domain.Activity) error {
	return update(r.db, func(txn *badger.Txn) error {
		if activity.GroupKey != "" {
			key := groupKey(activity.User, activity.Type, activity.GroupKey)
			taken, err := exists(txn, key)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.ErrGroupKeyTaken
			}
			if err = txn.Set([]byte(key), []byte(activity.ID.String())); err != nil {
				return err
			}
		}
		return r.write(txn, activity, nil)
	})
}

// UpsertGroup refreshes the row of (user, type, groupKey) or creates it.
// The lookup and the write share one transaction: two concurrent upserts of the same
// group conflict in badger and the loser replays against the winner's row.
func (r ActivityRepository) UpsertGroup(n domain.NewActivity, at time.Time) (domain.Activity, error) {
	if n.GroupKey == "" {
		return domain.Activity{}, fmt.Errorf("%w: group key is required", apperrors.ErrInvalidActivity)
	}
	var result domain.Activity
	err := update(r.db, func(txn *badger.Txn) error {
		index := groupKey(n.User, n.Type, n.GroupKey)
		item, err := txn.Get([]byte(index))
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
			result = n.ToActivity(at)
			if err = txn.Set([]byte(index), []byte(result.ID.String())); err != nil {
				return err
			}
			return r.write(txn, result, nil)
		case err != nil:
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		id, err := uuid.ParseBytes(raw)
		if err != nil {
			return err
		}
		existing, err := getJSON[domain.Activity](txn, activityKey(id), apperrors.ErrActivityNotFound)
		if err != nil {
			return err
		}
		previous := existing
		existing.Refresh(n, at)
		result = existing
		return r.write(txn, existing, &previous)
	})
	return result, err
}

// write stores activity and moves its feed entry when the refresh time changed.
func (r ActivityRepository) write(txn *badger.Txn, activity domain.Activity, previous *domain.Activity) error {
	if previous != nil && !previous.CreatedAt.Equal(activity.CreatedAt) {
		if err := txn.Delete([]byte(feedKey(*previous))); err != nil {
			return err
		}
	}
	if err := setJSON(txn, activityKey(activity.ID), activity); err != nil {
		return err
	}
	return txn.Set([]byte(feedKey(activity)), []byte(activity.ID.String()))
}

func (r ActivityRepository) GetActivity(id uuid.UUID) (domain.Activity, error) {
	var activity domain.Activity
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		activity, err = getJSON[domain.Activity](txn, activityKey(id), apperrors.ErrActivityNotFound)
		return err
	})
	return activity, err
}

// ListByUser pages through a feed, most recently refreshed first.
func (r ActivityRepository) ListByUser(userID domain.UserID, limit, skip int) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := r.db.View(func(txn *badger.Txn) error {
		var ids []uuid.UUID
		seen := 0
		err := scanPrefix(txn, feedPrefix(userID), true, func(_, val []byte) (bool, error) {
			seen++
			if seen <= skip {
				return true, nil
			}
			id, err := uuid.ParseBytes(val)
			if err != nil {
				return false, err
			}
			ids = append(ids, id)
			return limit <= 0 || len(ids) < limit, nil
		})
		if err != nil {
			return err
		}
		for _, id := range ids {
			activity, err := getJSON[domain.Activity](txn, activityKey(id), apperrors.ErrActivityNotFound)
			if err != nil {
				return err
			}
			activities = append(activities, activity)
		}
		return nil
	})
	return activities, err
}

// MarkRead flips the user's unread rows to read. An empty ids list targets the whole feed.
// It returns how many rows actually changed.
func (r ActivityRepository) MarkRead(userID domain.UserID, ids []uuid.UUID, at time.Time) (int, error) {
	var modified int
	err := update(r.db, func(txn *badger.Txn) error {
		modified = 0
		var targets []uuid.UUID
		err := scanPrefix(txn, feedPrefix(userID), false, func(_, val []byte) (bool, error) {
			id, err := uuid.ParseBytes(val)
			if err != nil {
				return false, err
			}
			if len(ids) == 0 || lo.Contains(ids, id) {
				targets = append(targets, id)
			}
			return true, nil
		})
		if err != nil {
			return err
		}
		for _, id := range targets {
			activity, err := getJSON[domain.Activity](txn, activityKey(id), apperrors.ErrActivityNotFound)
			if err != nil {
				return err
			}
			if activity.Read {
				continue
			}
			activity.Read = true
			activity.UpdatedAt = at
			if err = setJSON(txn, activityKey(id), activity); err != nil {
				return err
			}
			modified++
		}
		return nil
	})
	return modified, err
}
