//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_repository.go -package=mocks
package repositories

import (
	"cmp"
	"crew-dispatch/domain"
	apperrors "crew-dispatch/errors"
	"errors"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IChatRepository interface {
	FindOrCreatePrivate(a, b domain.UserID, at time.Time) (domain.Chat, error)
	Touch(chatID uuid.UUID, lastMessage uuid.UUID, at time.Time) error
	ListForUser(userID domain.UserID) ([]domain.Chat, error)
}

// ChatRepository keys private chats by id and indexes them by the symmetric
// conversation key of their two participants, so a pair always resolves to one chat.
type ChatRepository struct {
	db *badger.DB
}

func NewChatRepository(db *badger.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func chatKey(id uuid.UUID) string {
	return "chat:" + id.String()
}

func chatPairKey(a, b domain.UserID) string {
	return "idx:chat:" + domain.ConversationKey(a, b)
}

func userChatPrefix(userID domain.UserID) string {
	return "idx:userchat:" + segment(userID.String()) + ":"
}

func (r ChatRepository) FindOrCreatePrivate(a, b domain.UserID, at time.Time) (domain.Chat, error) {
	var chat domain.Chat
	err := update(r.db, func(txn *badger.Txn) error {
		pair := chatPairKey(a, b)
		item, err := txn.Get([]byte(pair))
		if err == nil {
			raw, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			id, err := uuid.ParseBytes(raw)
			if err != nil {
				return err
			}
			chat, err = getJSON[domain.Chat](txn, chatKey(id), apperrors.ErrChatNotFound)
			return err
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		chat = domain.Chat{
			ID:           uuid.New(),
			Participants: []domain.UserID{a, b},
			CreatedAt:    at,
			UpdatedAt:    at,
		}
		if err = setJSON(txn, chatKey(chat.ID), chat); err != nil {
			return err
		}
		if err = txn.Set([]byte(pair), []byte(chat.ID.String())); err != nil {
			return err
		}
		for _, p := range chat.Participants {
			if err = txn.Set([]byte(userChatPrefix(p)+chat.ID.String()), []byte(chat.ID.String())); err != nil {
				return err
			}
		}
		return nil
	})
	return chat, err
}

func (r ChatRepository) Touch(chatID uuid.UUID, lastMessage uuid.UUID, at time.Time) error {
	return update(r.db, func(txn *badger.Txn) error {
		chat, err := getJSON[domain.Chat](txn, chatKey(chatID), apperrors.ErrChatNotFound)
		if err != nil {
			return err
		}
		chat.LastMessage = &lastMessage
		chat.UpdatedAt = at
		return setJSON(txn, chatKey(chatID), chat)
	})
}

// ListForUser returns the user's private chats, most recently active first.
func (r ChatRepository) ListForUser(userID domain.UserID) ([]domain.Chat, error) {
	var chats []domain.Chat
	err := r.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, userChatPrefix(userID), false, func(_, val []byte) (bool, error) {
			id, err := uuid.ParseBytes(val)
			if err != nil {
				return false, err
			}
			chat, err := getJSON[domain.Chat](txn, chatKey(id), apperrors.ErrChatNotFound)
			if err != nil {
				return false, err
			}
			chats = append(chats, chat)
			return true, nil
		})
	})
	slices.SortFunc(chats, func(x, y domain.Chat) int {
		return cmp.Compare(y.UpdatedAt.UnixNano(), x.UpdatedAt.UnixNano())
	})
	return chats, err
}
