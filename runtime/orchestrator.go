// Package runtime wires chatters, groups, and delivery loops together.
// It orchestrates distribution without containing transport or UI logic.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chatter-hub/contract"
	"chatter-hub/domain"
	"chatter-hub/domain/event"
	"chatter-hub/moderation"
	"chatter-hub/observability"
	"chatter-hub/repositories"
	"chatter-hub/runtime/workers"
)

// deliveryHandle tracks what the orchestrator owns for one running loop:
// the cancellation trigger and the medium cursor. The worker itself never
// closes the reader, otherwise a supervised restart would resume on a
// closed cursor.
type deliveryHandle struct {
	cancel context.CancelFunc
	reader contract.MediumReader
}

type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	supervisor     contract.ISupervisor
	registry       *Registry
	engine         *Engine
	medium         contract.Medium
	inbox          repositories.IInboxRepository
	index          contract.InboxIndexer
	stats          *observability.DeliveryStats
	pollInterval   time.Duration
	healthInterval time.Duration
	loops          map[domain.ChatterID]*deliveryHandle
	baseCtx        context.Context
	cancel         context.CancelFunc

	// Optional observability pipeline, enabled through WithEvents/WithWatch.
	events         chan event.Event
	handlers       []event.Handler
	metricInterval time.Duration
	moderator      *moderation.Moderator
	watchReader    contract.MediumReader
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry *Registry, engine *Engine, medium contract.Medium,
	inbox repositories.IInboxRepository, index contract.InboxIndexer,
	stats *observability.DeliveryStats,
	pollInterval, healthInterval time.Duration) *Orchestrator {
	return &Orchestrator{
		log:            log,
		supervisor:     supervisor,
		registry:       registry,
		engine:         engine,
		medium:         medium,
		inbox:          inbox,
		index:          index,
		stats:          stats,
		pollInterval:   pollInterval,
		healthInterval: healthInterval,
		loops:          make(map[domain.ChatterID]*deliveryHandle),
	}
}

// WithEvents attaches the observability stream: publish, delivery, and
// watch reports flow through it to the given handlers, and the stream's
// own occupancy is sampled every metricInterval.
func (o *Orchestrator) WithEvents(events chan event.Event,
	metricInterval time.Duration, handlers ...event.Handler) *Orchestrator {
	o.events = events
	o.metricInterval = metricInterval
	o.handlers = handlers
	return o
}

// WithWatch tails the medium with the given moderator and reports
// watchlist hits. Records are never altered.
func (o *Orchestrator) WithWatch(moderator moderation.Moderator) *Orchestrator {
	o.moderator = &moderator
	return o
}

// Start launches the supervision tree and returns. Long-lived workers are
// registered up front: they run for the whole lifetime of the hub, which
// keeps the supervisor's WaitGroup busy while delivery loops come and go.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.baseCtx != nil {
		return fmt.Errorf("orchestrator already started")
	}
	baseCtx, cancel := context.WithCancel(ctx)

	o.supervisor.Add(workers.NewHealthWorker(o.stats, o.healthInterval, o.log))

	if o.events != nil {
		fanout := workers.NewEventFanout(o.log, o.events).Add(o.handlers...)
		capacity := workers.NewChannelCapacityWorker(o.log,
			[]workers.NamedChannel{{Name: "events", Channel: o.events}},
			o.events, o.metricInterval)
		o.supervisor.Add(fanout, capacity)
	}

	if o.moderator != nil {
		reader, err := o.medium.NewReader(baseCtx)
		if err != nil {
			cancel()
			return fmt.Errorf("opening watch cursor: %w", err)
		}
		o.watchReader = reader
		o.supervisor.Add(workers.NewModerationWorker(reader, *o.moderator,
			o.stats, o.events, o.pollInterval, o.log))
	}
	o.baseCtx, o.cancel = baseCtx, cancel

	o.log.Info("Starting orchestrator and all supervised workers")
	go o.supervisor.Run(o.baseCtx)
	return nil
}

// CreateChatter registers a chatter and spins up its delivery loop. The
// medium cursor is created first thing, so the chatter only ever receives
// what is published from now on.
func (o *Orchestrator) CreateChatter(ctx context.Context, name string) (domain.Chatter, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.baseCtx == nil {
		return domain.Chatter{}, fmt.Errorf("orchestrator not started")
	}

	chatter := o.registry.CreateChatter(name)

	reader, err := o.medium.NewReader(ctx)
	if err != nil {
		// No loop means no deliveries: undo the registration.
		_ = o.registry.RemoveChatter(chatter.ID)
		return domain.Chatter{}, fmt.Errorf("opening medium cursor: %w", err)
	}

	worker := workers.NewDeliveryWorker(chatter.ID, reader, o.engine, o.registry,
		o.inbox, o.index, o.stats, o.events, o.pollInterval, o.log)

	loopCtx, cancel := context.WithCancel(o.baseCtx)
	o.supervisor.Start(loopCtx, worker)
	o.loops[chatter.ID] = &deliveryHandle{cancel: cancel, reader: reader}

	o.log.Info("Chatter registered", "id", chatter.ID, "name", chatter.Name)
	return chatter, nil
}

func (o *Orchestrator) CreateGroup(name string) domain.Group {
	group := o.registry.CreateGroup(name)
	o.log.Info("Group registered", "id", group.ID, "name", group.Name)
	return group
}

func (o *Orchestrator) AddChatterToGroup(chatterID domain.ChatterID, groupID domain.GroupID) error {
	return o.registry.AddChatterToGroup(chatterID, groupID)
}

// RemoveChatter detaches the chatter everywhere and tears its loop down.
// The inbox is left alone: delivered entries outlive their owner.
func (o *Orchestrator) RemoveChatter(id domain.ChatterID) error {
	if err := o.registry.RemoveChatter(id); err != nil {
		return err
	}

	o.mu.Lock()
	handle, ok := o.loops[id]
	if ok {
		delete(o.loops, id)
	}
	o.mu.Unlock()

	if ok {
		handle.cancel()
		if err := handle.reader.Close(); err != nil {
			o.log.Warn("Closing medium cursor failed", "chatter", id, "error", err)
		}
	}
	o.engine.ReleaseRecipient(id)
	o.log.Info("Chatter removed", "id", id)
	return nil
}

func (o *Orchestrator) RemoveGroup(id domain.GroupID) error {
	if err := o.registry.RemoveGroup(id); err != nil {
		return err
	}
	o.log.Info("Group removed", "id", id)
	return nil
}

// SendMessage publishes a record to the medium. Delivery happens later,
// when each recipient's loop polls its cursor.
func (o *Orchestrator) SendMessage(ctx context.Context, sender domain.ChatterID,
	group domain.GroupID, body string) (domain.Message, error) {
	return o.engine.Publish(ctx, sender, group, body)
}

// ReceivedMessages returns everything delivered to a chatter so far, in
// delivery order. Unknown chatters simply have an empty history.
func (o *Orchestrator) ReceivedMessages(id domain.ChatterID) ([]domain.InboxEntry, error) {
	return o.inbox.Entries(id)
}

func (o *Orchestrator) GroupsOf(id domain.ChatterID) (map[domain.GroupID]string, error) {
	return o.registry.GroupsOf(id)
}

func (o *Orchestrator) MembersOf(id domain.GroupID) (map[domain.ChatterID]string, error) {
	return o.registry.MembersOf(id)
}

func (o *Orchestrator) Chatters() []ChatterSnapshot {
	return o.registry.Chatters()
}

func (o *Orchestrator) Groups() []GroupSnapshot {
	return o.registry.Groups()
}

func (o *Orchestrator) Stats() observability.StatsSnapshot {
	return o.stats.Snapshot()
}

// Stop initiates a graceful shutdown: every delivery loop is cancelled,
// cursors are released, and the supervision tree winds down.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")

	o.mu.Lock()
	handles := make([]*deliveryHandle, 0, len(o.loops))
	for id, handle := range o.loops {
		handles = append(handles, handle)
		delete(o.loops, id)
	}
	if o.cancel != nil {
		o.cancel()
	}
	o.mu.Unlock()

	for _, handle := range handles {
		handle.cancel()
		_ = handle.reader.Close()
	}
	if o.watchReader != nil {
		_ = o.watchReader.Close()
	}
	o.supervisor.Stop()
}
