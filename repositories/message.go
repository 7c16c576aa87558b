//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"crew-dispatch/domain"
	apperrors "crew-dispatch/errors"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IMessageRepository interface {
	StoreMessage(message domain.Message) (domain.Message, error)
	GetMessage(id uuid.UUID) (domain.Message, error)
	GetMessages(channel domain.Channel, scope string, limit, skip int) ([]domain.Message, int, error)
	MarkRead(ids []uuid.UUID, reader domain.UserID) (int, error)
	CountUnread(channel domain.Channel, scope string, reader domain.UserID) (int, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

func messagePrefix(channel domain.Channel, scope string) string {
	if scope == "" {
		return fmt.Sprintf("msg:%s:", channel)
	}
	return fmt.Sprintf("msg:%s:%s:", channel, segment(scope))
}

func messageIndexKey(id uuid.UUID) string {
	return "idx:msg:" + id.String()
}

// StoreMessage persists a message in BadgerDB.
// The key is formatted as "msg:{channel}:{scope}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Keep one prefix per conversation so history is a single prefix scan.
//  3. Prevent data loss by using the UUID as a tie breaker for messages of the same nanosecond.
//
// An index "idx:msg:{uuid}" resolves an id back to its key for read receipts.
func (m MessageRepository) StoreMessage(message domain.Message) (domain.Message, error) {
	if err := message.Validate(); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidMessage, err)
	}
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	message.Mentions = lo.Uniq(message.Mentions)
	message.ReadBy = lo.Uniq(message.ReadBy)

	key := messagePrefix(message.Channel, message.Scope()) + timeKey(message.CreatedAt) + ":" + message.ID.String()
	err := update(m.db, func(txn *badger.Txn) error {
		if err := setJSON(txn, key, message); err != nil {
			return err
		}
		return txn.Set([]byte(messageIndexKey(message.ID)), []byte(key))
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func (m MessageRepository) GetMessage(id uuid.UUID) (domain.Message, error) {
	var message domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		var err error
		message, err = m.get(txn, id)
		return err
	})
	return message, err
}

func (m MessageRepository) get(txn *badger.Txn, id uuid.UUID) (domain.Message, error) {
	key, err := m.keyOf(txn, id)
	if err != nil {
		return domain.Message{}, err
	}
	return getJSON[domain.Message](txn, key, apperrors.ErrMessageNotFound)
}

func (m MessageRepository) keyOf(txn *badger.Txn, id uuid.UUID) (string, error) {
	item, err := txn.Get([]byte(messageIndexKey(id)))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", fmt.Errorf("%w: %s", apperrors.ErrMessageNotFound, id)
	}
	if err != nil {
		return "", err
	}
	key, err := item.ValueCopy(nil)
	return string(key), err
}

// GetMessages returns one page of a conversation and the size of the whole conversation.
// Pages are counted from the newest message but each page is returned oldest first.
func (m MessageRepository) GetMessages(channel domain.Channel, scope string, limit, skip int) ([]domain.Message, int, error) {
	var messages []domain.Message
	total := 0
	err := m.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, messagePrefix(channel, scope), true, func(_, val []byte) (bool, error) {
			total++
			if total <= skip || (limit > 0 && len(messages) >= limit) {
				return true, nil
			}
			message, err := decodeJSON[domain.Message](val)
			if err != nil {
				return false, err
			}
			messages = append(messages, message)
			return true, nil
		})
	})
	if err != nil {
		return nil, 0, err
	}
	m.log.Debug("Messages fetched", "channel", channel, "scope", scope, "count", len(messages), "total", total)
	return lo.Reverse(messages), total, nil
}

// MarkRead adds reader to the read set of every listed message.
// It returns how many messages were not yet read by reader.
func (m MessageRepository) MarkRead(ids []uuid.UUID, reader domain.UserID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var modified int
	err := update(m.db, func(txn *badger.Txn) error {
		modified = 0
		for _, id := range ids {
			key, err := m.keyOf(txn, id)
			if err != nil {
				return err
			}
			message, err := getJSON[domain.Message](txn, key, apperrors.ErrMessageNotFound)
			if err != nil {
				return err
			}
			if message.IsReadBy(reader) {
				continue
			}
			message.ReadBy = append(message.ReadBy, reader)
			if err = setJSON(txn, key, message); err != nil {
				return err
			}
			modified++
		}
		return nil
	})
	return modified, err
}

// CountUnread counts messages of channel that reader did not send and has not read.
// An empty scope spans every conversation of the channel. Private messages only count
// when addressed to reader.
func (m MessageRepository) CountUnread(channel domain.Channel, scope string, reader domain.UserID) (int, error) {
	count := 0
	err := m.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, messagePrefix(channel, scope), false, func(_, val []byte) (bool, error) {
			message, err := decodeJSON[domain.Message](val)
			if err != nil {
				return false, err
			}
			if message.Sender == reader || message.IsReadBy(reader) {
				return true, nil
			}
			if channel == domain.ChannelPrivate && message.Recipient != reader {
				return true, nil
			}
			count++
			return true, nil
		})
	})
	return count, err
}
