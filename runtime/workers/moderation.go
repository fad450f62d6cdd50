package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"

	"chatter-hub/contract"
	"chatter-hub/domain"
	"chatter-hub/domain/event"
	"chatter-hub/moderation"
	"chatter-hub/observability"
)

// ModerationWorker tails the broadcast medium with its own cursor and scans
// every published record against the watchlist. Matches are counted and
// reported on the event stream; the records themselves are never altered,
// so recipients still receive exactly what the sender published.
type ModerationWorker struct {
	reader    contract.MediumReader
	moderator moderation.Moderator
	stats     *observability.DeliveryStats
	events    chan<- event.Event
	interval  time.Duration
	log       *slog.Logger
}

func NewModerationWorker(reader contract.MediumReader, moderator moderation.Moderator,
	stats *observability.DeliveryStats, events chan<- event.Event,
	interval time.Duration, log *slog.Logger) *ModerationWorker {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &ModerationWorker{
		reader:    reader,
		moderator: moderator,
		stats:     stats,
		events:    events,
		interval:  interval,
		log:       log,
	}
}

func (w *ModerationWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Debug("Watchlist scan started", "interval", w.interval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			records, err := w.reader.ReadNew(ctx)
			if err != nil {
				w.log.Warn("Watchlist scan read failed", "error", err)
				continue
			}
			for _, record := range records {
				w.scan(record)
			}
		}
	}
}

func (w *ModerationWorker) scan(record domain.Message) {
	terms := w.moderator.Scan(record.Body)
	if len(terms) == 0 {
		return
	}
	info := whatlanggo.Detect(record.Body)
	langCode := info.Lang.Iso6391()

	w.stats.IncrFlagged()
	w.log.Warn("Watchlist hit",
		"message_id", record.ID,
		"group", record.GroupID,
		"sender", record.SenderID,
		"terms", terms,
		"lang", langCode,
	)
	event.Emit(w.events, event.New(event.WatchlistHitType, event.WatchlistHit{
		MessageID: record.ID,
		GroupID:   record.GroupID,
		SenderID:  record.SenderID,
		Terms:     terms,
		Language:  langCode,
	}))
}
