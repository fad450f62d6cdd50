package event

import (
	"chatter-hub/errors"
	"log/slog"
	"time"
)

// LatencyHandler measures distribution lead time: how long the oldest
// record of a delivered batch waited between publish and inbox append.
type LatencyHandler struct {
	log              *slog.Logger
	latencyThreshold time.Duration
}

func NewLatencyHandler(log *slog.Logger, latencyThreshold time.Duration) *LatencyHandler {
	return &LatencyHandler{log: log, latencyThreshold: latencyThreshold}
}

func (h *LatencyHandler) Handle(e Event) {
	if e.Type != EntriesDeliveredType {
		return
	}
	payload, ok := e.Payload.(EntriesDelivered)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error())
		return
	}
	leadTime := time.Since(payload.OldestAt)

	h.log.Debug("telemetry: distribution lead time",
		"recipient", payload.Recipient,
		"entries", payload.Count,
		"lead_time_ms", leadTime.Milliseconds(),
	)

	if leadTime > h.latencyThreshold {
		h.log.Warn("high delivery latency detected",
			"recipient", payload.Recipient, "lead_time", leadTime)
	}
}
