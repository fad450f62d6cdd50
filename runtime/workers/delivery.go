package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chatter-hub/contract"
	"chatter-hub/domain"
	"chatter-hub/domain/event"
	"chatter-hub/observability"
)

// DefaultPollInterval is how often a delivery loop drains its medium cursor
// when no interval is configured.
const DefaultPollInterval = 300 * time.Millisecond

// DeliveryWorker runs one recipient's polling loop: each tick it reads the
// records published since the last tick, filters them for the recipient,
// and appends the survivors to the recipient's inbox. The loop retires
// itself once the recipient is no longer registered.
type DeliveryWorker struct {
	recipient domain.ChatterID
	reader    contract.MediumReader
	filter    contract.RecipientFilter
	presence  contract.Presence
	inbox     contract.InboxAppender
	index     contract.InboxIndexer
	stats     *observability.DeliveryStats
	events    chan<- event.Event
	interval  time.Duration
	log       *slog.Logger
}

func NewDeliveryWorker(recipient domain.ChatterID, reader contract.MediumReader,
	filter contract.RecipientFilter, presence contract.Presence,
	inbox contract.InboxAppender, index contract.InboxIndexer,
	stats *observability.DeliveryStats, events chan<- event.Event,
	interval time.Duration, log *slog.Logger) *DeliveryWorker {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &DeliveryWorker{
		recipient: recipient,
		reader:    reader,
		filter:    filter,
		presence:  presence,
		inbox:     inbox,
		index:     index,
		stats:     stats,
		events:    events,
		interval:  interval,
		log:       log,
	}
}

func (w *DeliveryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Debug("Delivery loop started", "recipient", w.recipient, "interval", w.interval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !w.presence.ChatterExists(w.recipient) {
				w.log.Info("Recipient gone, retiring delivery loop", "recipient", w.recipient)
				return nil
			}
			if err := w.deliverOnce(ctx); err != nil {
				// Transient failure: log and try again next tick.
				w.log.Warn("Delivery cycle failed", "recipient", w.recipient, "error", err)
			}
		}
	}
}

func (w *DeliveryWorker) deliverOnce(ctx context.Context) error {
	records, err := w.reader.ReadNew(ctx)
	if err != nil {
		w.stats.IncrReadErrors()
		return fmt.Errorf("reading medium: %w", err)
	}
	if len(records) == 0 {
		return nil
	}
	entries := w.filter.FilterForRecipient(w.recipient, records)
	if len(entries) == 0 {
		return nil
	}
	if err := w.inbox.Append(w.recipient, entries); err != nil {
		return fmt.Errorf("appending inbox: %w", err)
	}
	if w.index != nil {
		if err := w.index.Add(w.recipient, entries); err != nil {
			// The entries are already delivered; a lagging index
			// must not fail the cycle.
			w.log.Warn("Indexing delivered entries failed", "recipient", w.recipient, "error", err)
		}
	}
	w.stats.AddDelivered(len(entries))
	event.Emit(w.events, event.New(event.EntriesDeliveredType, event.EntriesDelivered{
		Recipient: w.recipient,
		Count:     len(entries),
		OldestAt:  records[0].At,
	}))
	return nil
}
