// Package event defines the observability stream flowing beside the
// distribution path. Components emit events without blocking; a fanout
// worker dispatches them to handlers.
package event

import (
	"time"

	"github.com/google/uuid"

	"chatter-hub/domain"
)

// Handler consumes events it recognizes and ignores the rest. Handlers
// are chained by the fanout worker: every event visits every handler.
type Handler interface {
	Handle(event Event)
}

type Type string

const (
	MessagePublishedType Type = "MESSAGE_PUBLISHED"
	EntriesDeliveredType Type = "ENTRIES_DELIVERED"
	WatchlistHitType     Type = "WATCHLIST_HIT"
)

// Event is the envelope carried on the stream. Payload holds one of the
// typed structs below, matched by Type.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

func New(t Type, payload any) Event {
	return Event{Type: t, CreatedAt: time.Now(), Payload: payload}
}

// Emit sends without blocking. When the stream is full, or absent (nil
// channel), the event is dropped: observability never stalls delivery.
func Emit(stream chan<- Event, e Event) {
	select {
	case stream <- e:
	default:
	}
}

// MessagePublished reports a record accepted onto the broadcast medium.
type MessagePublished struct {
	ID       uuid.UUID
	GroupID  domain.GroupID
	SenderID domain.ChatterID
	Body     string
	At       time.Time
}

// EntriesDelivered reports one delivery cycle that landed entries in a
// recipient inbox. OldestAt is the publish time of the oldest record in
// the batch, used to measure distribution lead time.
type EntriesDelivered struct {
	Recipient domain.ChatterID
	Count     int
	OldestAt  time.Time
}

// WatchlistHit reports a published record matching watchlist terms. The
// record itself is untouched: the watch observes the medium, it never
// rewrites what recipients receive.
type WatchlistHit struct {
	MessageID uuid.UUID
	GroupID   domain.GroupID
	SenderID  domain.ChatterID
	Terms     []string
	Language  string
}
