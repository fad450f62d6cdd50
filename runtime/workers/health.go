package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"chatter-hub/observability"
)

// DefaultHealthInterval is how often the health worker reports when no
// interval is configured.
const DefaultHealthInterval = 5 * time.Second

// HealthWorker periodically logs process health (CPU, RAM, OS status)
// together with the distribution counters, one line per interval.
type HealthWorker struct {
	log      *slog.Logger
	stats    *observability.DeliveryStats
	interval time.Duration
}

func NewHealthWorker(stats *observability.DeliveryStats, interval time.Duration, log *slog.Logger) *HealthWorker {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}
	return &HealthWorker{log: log, stats: stats, interval: interval}
}

func (w *HealthWorker) Run(ctx context.Context) error {
	w.log.Info("Starting health worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			snap := w.stats.Snapshot()
			w.log.Info("Hub health",
				"pid", os.Getpid(),
				"pid_status", status,
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"published", snap.Published,
				"delivered", snap.Delivered,
				"duplicates", snap.Duplicates,
				"filtered_out", snap.FilteredOut,
				"flagged", snap.Flagged,
				"read_errors", snap.ReadErrors,
				"uptime", snap.Uptime,
			)
		}
	}
}

// selfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
