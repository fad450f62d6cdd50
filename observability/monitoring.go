package observability

import (
	"sync/atomic"
	"time"
)

// DeliveryStats aggregates distribution counters across the publish path and
// every delivery loop. Counters are atomic so loops update them concurrently
// without coordination.
type DeliveryStats struct {
	Published   uint64
	Delivered   uint64
	Duplicates  uint64
	FilteredOut uint64
	ReadErrors  uint64
	Flagged     uint64

	startedAt time.Time
}

func NewDeliveryStats() *DeliveryStats {
	return &DeliveryStats{startedAt: time.Now()}
}

// IncrPublished counts one message accepted for distribution.
func (ds *DeliveryStats) IncrPublished() {
	atomic.AddUint64(&ds.Published, 1)
}

// AddDelivered counts entries appended to recipient inboxes.
func (ds *DeliveryStats) AddDelivered(n int) {
	atomic.AddUint64(&ds.Delivered, uint64(n))
}

// AddDuplicates counts records suppressed by per-recipient duplicate tracking.
func (ds *DeliveryStats) AddDuplicates(n int) {
	atomic.AddUint64(&ds.Duplicates, uint64(n))
}

// AddFilteredOut counts records rejected by the membership and sender rules.
func (ds *DeliveryStats) AddFilteredOut(n int) {
	atomic.AddUint64(&ds.FilteredOut, uint64(n))
}

// IncrReadErrors counts failed medium reads.
func (ds *DeliveryStats) IncrReadErrors() {
	atomic.AddUint64(&ds.ReadErrors, 1)
}

// IncrFlagged counts published records matching the watchlist.
func (ds *DeliveryStats) IncrFlagged() {
	atomic.AddUint64(&ds.Flagged, 1)
}

// StatsSnapshot is a point-in-time copy safe to render or log.
type StatsSnapshot struct {
	Published   uint64        `json:"published"`
	Delivered   uint64        `json:"delivered"`
	Duplicates  uint64        `json:"duplicates"`
	FilteredOut uint64        `json:"filtered_out"`
	ReadErrors  uint64        `json:"read_errors"`
	Flagged     uint64        `json:"flagged"`
	Uptime      time.Duration `json:"uptime"`
}

func (ds *DeliveryStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Published:   atomic.LoadUint64(&ds.Published),
		Delivered:   atomic.LoadUint64(&ds.Delivered),
		Duplicates:  atomic.LoadUint64(&ds.Duplicates),
		FilteredOut: atomic.LoadUint64(&ds.FilteredOut),
		ReadErrors:  atomic.LoadUint64(&ds.ReadErrors),
		Flagged:     atomic.LoadUint64(&ds.Flagged),
		Uptime:      time.Since(ds.startedAt),
	}
}
