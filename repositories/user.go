//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"crew-dispatch/domain"
	apperrors "crew-dispatch/errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type IUserRepository interface {
	SaveUser(user domain.User) error
	GetUser(userID domain.UserID) (domain.User, error)
	GetNotificationSettings(userID domain.UserID) (domain.NotificationSettings, error)
	ListByGlobalMessages(excluding []domain.UserID) ([]domain.User, error)
	ListByOpportunityUpdates(excluding []domain.UserID) ([]domain.User, error)
	FindByNames(names []string) ([]domain.User, error)
	FindParticipantsByNames(names []string, participants []domain.UserID) ([]domain.User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userKey(id domain.UserID) string {
	return "user:" + id.String()
}

// SaveUser upserts a profile. New profiles get every notification enabled.
func (u UserRepository) SaveUser(user domain.User) error {
	if user.ID == "" {
		return apperrors.ErrEmptyUserID
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	return update(u.db, func(txn *badger.Txn) error {
		return setJSON(txn, userKey(user.ID), user)
	})
}

func (u UserRepository) GetUser(userID domain.UserID) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		var err error
		user, err = getJSON[domain.User](txn, userKey(userID), apperrors.ErrUserNotFound)
		return err
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}

func (u UserRepository) GetNotificationSettings(userID domain.UserID) (domain.NotificationSettings, error) {
	user, err := u.GetUser(userID)
	if err != nil {
		return domain.NotificationSettings{}, err
	}
	return user.NotificationSettings, nil
}

func (u UserRepository) ListByGlobalMessages(excluding []domain.UserID) ([]domain.User, error) {
	return u.list(func(user domain.User) bool {
		return user.NotificationSettings.GlobalMessages && !lo.Contains(excluding, user.ID)
	})
}

// ListByOpportunityUpdates only returns approved regular users, the audience of job postings.
func (u UserRepository) ListByOpportunityUpdates(excluding []domain.UserID) ([]domain.User, error) {
	return u.list(func(user domain.User) bool {
		return user.NotificationSettings.OpportunityUpdates &&
			user.IsApproved &&
			user.Role == domain.RoleUser &&
			!lo.Contains(excluding, user.ID)
	})
}

// FindByNames matches names case-insensitively across every user.
func (u UserRepository) FindByNames(names []string) ([]domain.User, error) {
	return u.findByNames(names, func(domain.User) bool { return true })
}

// FindParticipantsByNames only matches users of participants. No participants matches nobody.
func (u UserRepository) FindParticipantsByNames(names []string, participants []domain.UserID) ([]domain.User, error) {
	if len(participants) == 0 {
		return nil, nil
	}
	return u.findByNames(names, func(user domain.User) bool {
		return lo.Contains(participants, user.ID)
	})
}

func (u UserRepository) findByNames(names []string, allowed func(domain.User) bool) ([]domain.User, error) {
	if len(names) == 0 {
		return nil, nil
	}
	wanted := lo.SliceToMap(names, func(n string) (string, struct{}) {
		return strings.ToLower(n), struct{}{}
	})
	return u.list(func(user domain.User) bool {
		if !allowed(user) {
			return false
		}
		_, ok := wanted[strings.ToLower(user.Name)]
		return ok
	})
}

func (u UserRepository) list(keep func(domain.User) bool) ([]domain.User, error) {
	var users []domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, "user:", false, func(_, val []byte) (bool, error) {
			user, err := decodeJSON[domain.User](val)
			if err != nil {
				return false, err
			}
			if keep(user) {
				users = append(users, user)
			}
			return true, nil
		})
	})
	return users, err
}
