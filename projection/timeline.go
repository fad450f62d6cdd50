// Package projection builds local read models from observed events.
// Projections are best-effort operator views: they are rebuilt from the
// stream on every boot and never feed back into distribution.
package projection

import (
	"sync"
	"time"

	"chatter-hub/domain"
	"chatter-hub/domain/event"
)

// DefaultDepth bounds how many recent messages a group timeline keeps.
const DefaultDepth = 50

// PostedMessage is one timeline entry, as observed at publish time.
type PostedMessage struct {
	GroupID  domain.GroupID
	SenderID domain.ChatterID
	Body     string
	At       time.Time
}

// Timeline keeps the most recent published messages per group. It sees
// events from the fanout goroutine and is read from the shell, hence the
// lock.
type Timeline struct {
	mu      sync.RWMutex
	depth   int
	byGroup map[domain.GroupID][]PostedMessage
}

func NewTimeline(depth int) *Timeline {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Timeline{
		depth:   depth,
		byGroup: make(map[domain.GroupID][]PostedMessage),
	}
}

func (t *Timeline) Handle(e event.Event) {
	if e.Type != event.MessagePublishedType {
		return
	}
	payload, ok := e.Payload.(event.MessagePublished)
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	messages := append(t.byGroup[payload.GroupID], PostedMessage{
		GroupID:  payload.GroupID,
		SenderID: payload.SenderID,
		Body:     payload.Body,
		At:       payload.At,
	})
	if len(messages) > t.depth {
		messages = messages[len(messages)-t.depth:]
	}
	t.byGroup[payload.GroupID] = messages
}

// RecentInGroup returns the kept messages for a group, oldest first.
func (t *Timeline) RecentInGroup(id domain.GroupID) []PostedMessage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	messages := t.byGroup[id]
	out := make([]PostedMessage, len(messages))
	copy(out, messages)
	return out
}
