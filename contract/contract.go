//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chatter-hub/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Medium is the broadcast transport. Publish appends a record that becomes
// visible to every reader; a reader never sees records published before it
// was created.
type Medium interface {
	Publish(ctx context.Context, msg domain.Message) error
	NewReader(ctx context.Context) (MediumReader, error)
	Close() error
}

// MediumReader holds one consumer's cursor over the medium. ReadNew returns
// every record appended since the previous call, oldest first, and advances
// the cursor past them.
type MediumReader interface {
	ReadNew(ctx context.Context) ([]domain.Message, error)
	Close() error
}

// RecipientFilter decides which published records land in a recipient inbox.
type RecipientFilter interface {
	FilterForRecipient(recipient domain.ChatterID, records []domain.Message) []domain.InboxEntry
}

// Presence answers whether a chatter is still registered. Delivery loops
// check it each cycle so a removed chatter's loop can retire itself.
type Presence interface {
	ChatterExists(id domain.ChatterID) bool
}

// InboxAppender persists delivered entries for one recipient.
type InboxAppender interface {
	Append(recipient domain.ChatterID, entries []domain.InboxEntry) error
}

// InboxIndexer mirrors delivered entries into a searchable index.
type InboxIndexer interface {
	Add(recipient domain.ChatterID, entries []domain.InboxEntry) error
}
