package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"chatter-hub/contract"
	"chatter-hub/domain"
	"chatter-hub/domain/event"
	"chatter-hub/export"
	"chatter-hub/medium"
	"chatter-hub/moderation"
	"chatter-hub/observability"
	"chatter-hub/projection"
	"chatter-hub/repositories"
	"chatter-hub/runtime"
	"chatter-hub/runtime/workers"
	"chatter-hub/search"
	"chatter-hub/services"
)

// BaseHubSuite boots a complete hub for scenario tests: badger inbox on a
// temp dir, bluge index, and either the in-process medium or a real Redis
// stream when E2E_REDIS_URL is set.
type BaseHubSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseHubSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// Step prints a colorized header so scenario phases stand out in logs
func (s *BaseHubSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// BootHub wires every component and returns the user-facing service.
// Cleanup is registered on the test, newest first.
func (s *BaseHubSuite) BootHub() services.IChatterService {
	return s.boot(nil)
}

// BootHubWithWatch additionally tails the medium with a moderation watch
// over the given terms.
func (s *BaseHubSuite) BootHubWithWatch(terms ...string) services.IChatterService {
	return s.boot(terms)
}

func (s *BaseHubSuite) boot(watchlist []string) services.IChatterService {
	t := s.T()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	s.Require().NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	s.Require().NoError(err)
	t.Cleanup(func() { _ = writer.Close() })

	med := s.buildMedium(log)
	t.Cleanup(func() { _ = med.Close() })

	registry := runtime.NewRegistry()
	stats := observability.NewDeliveryStats()
	events := make(chan event.Event, 256)
	engine := runtime.NewEngine(registry, med, stats, 0, events, log)
	inboxRepository := repositories.NewInboxRepository(db, log)
	index := search.NewInboxIndex(writer, log)
	supervisor := workers.NewSupervisor(log).WithEvents(events)
	timeline := projection.NewTimeline(0)

	orchestrator := runtime.NewOrchestrator(log, supervisor, registry, engine,
		med, inboxRepository, index, stats, s.Config.PollInterval, time.Hour).
		WithEvents(events, time.Hour, timeline)
	if len(watchlist) > 0 {
		moderator, err := moderation.NewModerator(watchlist)
		s.Require().NoError(err)
		orchestrator = orchestrator.WithWatch(moderator)
	}
	s.Require().NoError(orchestrator.Start(context.Background()))
	t.Cleanup(orchestrator.Stop)

	return services.NewChatterService(orchestrator, index, timeline, export.NewTranscriptWriter(log))
}

// buildMedium picks the transport for the scenario. An unreachable Redis
// skips the suite rather than failing it, mirroring how the medium's own
// integration tests behave.
func (s *BaseHubSuite) buildMedium(log *slog.Logger) contract.Medium {
	if s.Config.RedisURL == "" {
		return medium.NewMemory(log)
	}

	opts, err := redis.ParseURL(s.Config.RedisURL)
	s.Require().NoError(err)
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		s.T().Skipf("redis not reachable at %s: %v", s.Config.RedisURL, err)
	}

	stream := fmt.Sprintf("chatter:e2e:%d", time.Now().UnixNano())
	// The medium owns its client, so the throwaway stream is deleted
	// through a dedicated one.
	s.T().Cleanup(func() {
		cleaner := redis.NewClient(opts)
		defer cleaner.Close()
		_ = cleaner.Del(context.Background(), stream).Err()
	})
	return medium.NewRedis(client, stream, log)
}

// WaitForInbox polls a chatter's inbox until it holds the wanted number of
// entries, then returns them.
func (s *BaseHubSuite) WaitForInbox(svc services.IChatterService, id domain.ChatterID, count int) []domain.InboxEntry {
	var entries []domain.InboxEntry
	s.Require().Eventually(func() bool {
		var err error
		entries, err = svc.ReceivedMessages(id)
		return err == nil && len(entries) == count
	}, s.Config.WaitTimeout, s.Config.PollInterval)
	return entries
}
