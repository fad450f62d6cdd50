package workers

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"chatter-hub/domain/event"
)

// recordingHandler keeps every event it sees, for assertions.
type recordingHandler struct {
	mu     sync.Mutex
	events []event.Event
}

func (h *recordingHandler) Handle(e event.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.events)
}

func TestEventFanout_DispatchesToEveryHandler(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	events := make(chan event.Event, 8)
	first := &recordingHandler{}
	second := &recordingHandler{}
	worker := NewEventFanout(log, events).Add(first, second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// Given two events on the stream
	event.Emit(events, event.New(event.MessagePublishedType, event.MessagePublished{Body: "hello"}))
	event.Emit(events, event.New(event.ChannelCapacityType, event.ChannelCapacity{ChannelName: "events"}))

	// Then each handler sees both
	req.Eventually(func() bool {
		return first.count() == 2 && second.count() == 2
	}, time.Second, 5*time.Millisecond)

	// And the worker stops cleanly on cancellation
	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("fanout did not stop on context cancellation")
	}
}

func TestChannelCapacityWorker_SamplesRegisteredChannels(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	watched := make(chan int, 10)
	watched <- 1
	watched <- 2

	events := make(chan event.Event, 8)
	worker := NewChannelCapacityWorker(log, []NamedChannel{
		{Name: "watched", Channel: watched},
		{Name: "broken", Channel: "not a channel"},
	}, events, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	// Then a sample for the real channel shows up with its usage
	select {
	case evt := <-events:
		req.Equal(event.ChannelCapacityType, evt.Type)
		payload, ok := evt.Payload.(event.ChannelCapacity)
		req.True(ok)
		req.Equal("watched", payload.ChannelName)
		req.Equal(10, payload.Capacity)
		req.Equal(2, payload.Length)
	case <-time.After(time.Second):
		req.Fail("no capacity sample received")
	}
}
