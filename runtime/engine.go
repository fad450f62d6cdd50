package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"chatter-hub/contract"
	"chatter-hub/domain"
	"chatter-hub/domain/event"
	"chatter-hub/errors"
	"chatter-hub/observability"
)

// DefaultSeenSize bounds the per-recipient duplicate tracking window.
const DefaultSeenSize = 1024

// Engine applies the distribution rules. On the way in it validates and
// publishes records to the medium; on the way out it decides, per recipient,
// which records land in the inbox: only messages for groups the recipient
// currently belongs to, never the recipient's own, and each at most once.
type Engine struct {
	mu       sync.Mutex
	registry *Registry
	medium   contract.Medium
	stats    *observability.DeliveryStats
	events   chan<- event.Event
	log      *slog.Logger
	seen     map[domain.ChatterID]*seenSet
	seenSize int
}

func NewEngine(registry *Registry, medium contract.Medium,
	stats *observability.DeliveryStats, seenSize int,
	events chan<- event.Event, log *slog.Logger) *Engine {
	if seenSize <= 0 {
		seenSize = DefaultSeenSize
	}
	return &Engine{
		registry: registry,
		medium:   medium,
		stats:    stats,
		events:   events,
		log:      log,
		seen:     make(map[domain.ChatterID]*seenSet),
		seenSize: seenSize,
	}
}

// Publish validates the sender and group, then appends the record to the
// medium. The sender does not have to be a member of the group it posts to.
func (e *Engine) Publish(ctx context.Context, sender domain.ChatterID,
	group domain.GroupID, body string) (domain.Message, error) {
	if !e.registry.ChatterExists(sender) {
		return domain.Message{}, errors.ErrChatterNotFound
	}
	if !e.registry.GroupExists(group) {
		return domain.Message{}, errors.ErrGroupNotFound
	}
	msg := domain.NewMessage(sender, group, body)
	if err := e.medium.Publish(ctx, msg); err != nil {
		return domain.Message{}, fmt.Errorf("publishing to medium: %w", err)
	}
	e.stats.IncrPublished()
	e.log.Debug("Message published", "id", msg.ID, "sender", sender, "group", group)
	event.Emit(e.events, event.New(event.MessagePublishedType, event.MessagePublished{
		ID:       msg.ID,
		GroupID:  msg.GroupID,
		SenderID: msg.SenderID,
		Body:     msg.Body,
		At:       msg.At,
	}))
	return msg, nil
}

// FilterForRecipient keeps the records a recipient should receive, in
// order. Membership is evaluated against the current snapshot, so a record
// published while the recipient was a member is still dropped if the
// recipient already left. A removed recipient gets nothing.
func (e *Engine) FilterForRecipient(recipient domain.ChatterID,
	records []domain.Message) []domain.InboxEntry {
	if len(records) == 0 {
		return nil
	}
	groups, ok := e.registry.MembershipOf(recipient)
	if !ok {
		return nil
	}
	seen := e.seenFor(recipient)

	var entries []domain.InboxEntry
	var rejected, duplicates int
	for _, record := range records {
		if record.SenderID == recipient {
			rejected++
			continue
		}
		if _, member := groups[record.GroupID]; !member {
			rejected++
			continue
		}
		if !seen.remember(record.ID) {
			duplicates++
			continue
		}
		entries = append(entries, domain.EntryFromMessage(record))
	}
	e.stats.AddFilteredOut(rejected)
	e.stats.AddDuplicates(duplicates)
	return entries
}

// ReleaseRecipient forgets the duplicate tracking state of a removed
// chatter. Chatter ids are never reused, so dropping the set is safe.
func (e *Engine) ReleaseRecipient(recipient domain.ChatterID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.seen, recipient)
}

// seenFor returns the recipient's duplicate tracking set, creating it on
// first use. The set itself is only touched by the recipient's own loop.
func (e *Engine) seenFor(recipient domain.ChatterID) *seenSet {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.seen[recipient]
	if !ok {
		s = newSeenSet(e.seenSize)
		e.seen[recipient] = s
	}
	return s
}

// seenSet is a fixed-size ring of message ids. Remembering a new id may
// evict the oldest one; a medium that replays records older than the window
// can therefore deliver them again, which is the accepted trade-off for a
// bounded memory footprint.
type seenSet struct {
	ids  map[uuid.UUID]struct{}
	ring []uuid.UUID
	next int
}

func newSeenSet(size int) *seenSet {
	return &seenSet{
		ids:  make(map[uuid.UUID]struct{}, size),
		ring: make([]uuid.UUID, size),
	}
}

// remember reports whether the id was new, recording it if so.
func (s *seenSet) remember(id uuid.UUID) bool {
	if _, ok := s.ids[id]; ok {
		return false
	}
	if old := s.ring[s.next]; old != uuid.Nil {
		delete(s.ids, old)
	}
	s.ring[s.next] = id
	s.next = (s.next + 1) % len(s.ring)
	s.ids[id] = struct{}{}
	return true
}
