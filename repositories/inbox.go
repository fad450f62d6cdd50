//go:generate go run go.uber.org/mock/mockgen -source=inbox.go -destination=../mocks/mock_inbox_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"chatter-hub/domain"
)

type IInboxRepository interface {
	Append(recipient domain.ChatterID, entries []domain.InboxEntry) error
	Entries(recipient domain.ChatterID) ([]domain.InboxEntry, error)
}

// InboxRepository persists delivered entries in BadgerDB, one key per entry.
// An unknown recipient simply has no keys, so reads return an empty inbox
// rather than an error. Removing a chatter never deletes its keys: the
// inbox is append-only and survives the chatter.
type InboxRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewInboxRepository(db *badger.DB, log *slog.Logger) InboxRepository {
	return InboxRepository{db: db, log: log}
}

// DiskEntry is the stored representation of one delivered inbox entry.
type DiskEntry struct {
	GroupID  string    `json:"group_id"`
	SenderID string    `json:"sender_id"`
	Body     string    `json:"body"`
	At       time.Time `json:"at"`
}

// Append stores a delivered batch.
// The key is formatted as "inbox:{recipient}:{timestamp_padded}:{index_padded}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Keep the order within a batch via the index, since all entries of a
//     batch share one timestamp.
//
// Only the recipient's own delivery loop appends, so the timestamp+index
// pair is unique per recipient.
func (r InboxRepository) Append(recipient domain.ChatterID, entries []domain.InboxEntry) error {
	if len(entries) == 0 {
		return nil
	}
	at := time.Now().UTC()
	return r.db.Update(func(txn *badger.Txn) error {
		for i, entry := range entries {
			key := fmt.Sprintf("inbox:%s:%019d:%06d", recipient, at.UnixNano(), i)
			bytes, err := json.Marshal(fromInboxEntry(entry, at))
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(key), bytes); err != nil {
				return err
			}
		}
		return nil
	})
}

// Entries returns the recipient's full inbox in delivery order.
// Thanks to the padded timestamp in the key, a forward prefix scan comes
// back already sorted.
func (r InboxRepository) Entries(recipient domain.ChatterID) ([]domain.InboxEntry, error) {
	var raw [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("inbox:%s:", recipient))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				raw = append(raw, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries := make([]domain.InboxEntry, 0, len(raw))
	for _, bytes := range raw {
		var stored DiskEntry
		if err := json.Unmarshal(bytes, &stored); err != nil {
			return nil, err
		}
		entries = append(entries, toInboxEntry(stored))
	}
	return entries, nil
}

func fromInboxEntry(entry domain.InboxEntry, at time.Time) DiskEntry {
	return DiskEntry{
		GroupID:  string(entry.GroupID),
		SenderID: string(entry.SenderID),
		Body:     entry.Body,
		At:       at,
	}
}

func toInboxEntry(stored DiskEntry) domain.InboxEntry {
	return domain.InboxEntry{
		GroupID:  domain.GroupID(stored.GroupID),
		SenderID: domain.ChatterID(stored.SenderID),
		Body:     stored.Body,
	}
}
