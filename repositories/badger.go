package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// maxConflictRetries bounds how often a read-modify-write transaction is replayed
// after badger detected a conflicting concurrent commit.
const maxConflictRetries = 5

// update runs fn in a read-write transaction, replaying it on write conflicts.
func update(db *badger.DB, fn func(txn *badger.Txn) error) error {
	var err error
	for i := 0; i < maxConflictRetries; i++ {
		err = db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

// getJSON decodes the value stored under key. A missing key surfaces as notFound.
func getJSON[T any](txn *badger.Txn, key string, notFound error) (T, error) {
	var out T
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return out, notFound
	}
	if err != nil {
		return out, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &out)
	})
	return out, err
}

func setJSON(txn *badger.Txn, key string, v any) error {
	bytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s failed: %w", key, err)
	}
	return txn.Set([]byte(key), bytes)
}

func exists(txn *badger.Txn, key string) (bool, error) {
	_, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

// segment length-prefixes an id inside a key, so a prefix scan for one id
// never matches another id that merely starts with it.
func segment(id string) string {
	return strconv.Itoa(len(id)) + "." + id
}

// timeKey pads the timestamp to 19 digits so lexicographical order is chronological.
func timeKey(at time.Time) string {
	return fmt.Sprintf("%019d", at.UnixNano())
}

// scanPrefix visits every value under prefix, newest key first when reverse is set.
func scanPrefix(txn *badger.Txn, prefix string, reverse bool, visit func(key, val []byte) (bool, error)) error {
	options := badger.DefaultIteratorOptions
	options.Reverse = reverse
	options.Prefix = []byte(prefix)
	it := txn.NewIterator(options)
	defer it.Close()

	seek := []byte(prefix)
	if reverse {
		// 0xFF sorts after every printable key suffix.
		seek = append(seek, 0xFF)
	}
	for it.Seek(seek); it.ValidForPrefix([]byte(prefix)); it.Next() {
		item := it.Item()
		key := item.KeyCopy(nil)
		var keepGoing bool
		err := item.Value(func(val []byte) error {
			var err error
			keepGoing, err = visit(key, val)
			return err
		})
		if err != nil {
			return err
		}
		if !keepGoing {
			return nil
		}
	}
	return nil
}

func decodeJSON[T any](val []byte) (T, error) {
	var out T
	err := json.Unmarshal(val, &out)
	return out, err
}

// Ping checks the store answers a read. It feeds the health worker.
func Ping(db *badger.DB) error {
	if db.IsClosed() {
		return fmt.Errorf("badger is closed")
	}
	return db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte("health:ping"))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}
