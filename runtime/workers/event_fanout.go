package workers

import (
	"context"
	"log/slog"

	"chatter-hub/domain/event"
)

// EventFanout drains the observability stream and hands each event to every
// registered handler.
//
// It provides best-effort dispatch with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker.
//
// It is intended for observability and side effects (logs, metrics,
// projections), not for core distribution logic.
type EventFanout struct {
	log      *slog.Logger
	events   chan event.Event
	handlers []event.Handler
}

func NewEventFanout(log *slog.Logger, events chan event.Event) *EventFanout {
	return &EventFanout{log: log, events: events}
}

// Add registers handlers. Not safe to call once the worker runs.
func (w *EventFanout) Add(handlers ...event.Handler) *EventFanout {
	w.handlers = append(w.handlers, handlers...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		case evt := <-w.events:
			w.fanout(evt)
		}
	}
}

// fanout One handler chain for each event
func (w *EventFanout) fanout(evt event.Event) {
	for _, h := range w.handlers {
		h.Handle(evt)
	}
}
