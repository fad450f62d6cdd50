package event

import (
	"chatter-hub/errors"
	"log/slog"
	"sync"
)

// WatchlistHandler tallies watchlist matches observed on the medium,
// per term, so an operator can see which terms actually fire.
type WatchlistHandler struct {
	mu      sync.Mutex
	log     *slog.Logger
	counter uint64
	hit     map[string]uint64
}

func NewWatchlistHandler(log *slog.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		log: log,
		hit: make(map[string]uint64),
	}
}

func (h *WatchlistHandler) Handle(event Event) {
	if event.Type != WatchlistHitType {
		return
	}
	payload, ok := event.Payload.(WatchlistHit)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error())
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.counter++
	for _, term := range payload.Terms {
		h.hit[term]++
	}
}

// Hits returns a copy of the per-term tallies.
func (h *WatchlistHandler) Hits() map[string]uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[string]uint64, len(h.hit))
	for term, n := range h.hit {
		out[term] = n
	}
	return out
}
