package main

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/redis/go-redis/v9"

	"chatter-hub/contract"
	"chatter-hub/domain/event"
	"chatter-hub/export"
	"chatter-hub/internal"
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

//go:embed watchlist/*
var watchlistFolder embed.FS

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hub terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the shell lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Inbox store (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Search index (Bluge)
	blugeWriter, err := bluge.OpenWriter(buildBlugeConfig(config))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 4. Broadcast medium
	med, err := buildMedium(config, log)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		log.Info("Closing medium...")
		_ = med.Close()
	}()

	// 5. Moderation watchlist
	// Heavy lifting (file parsing, Aho-Corasick build) happens before anything runs.
	moderator, err := buildModerator(log)
	if err != nil {
		return exitRuntime, fmt.Errorf("building moderator: %w", err)
	}

	// 6. Observability pipeline
	events := make(chan event.Event, config.EventBuffer)
	counter := event.NewCounter()
	timeline := projection.NewTimeline(config.TimelineDepth)
	handlers := []event.Handler{
		timeline,
		event.NewPublishedHandler(log, counter),
		event.NewLatencyHandler(log, config.LatencyThreshold),
		event.NewWatchlistHandler(log),
		event.NewWorkerRestartedAfterPanicHandler(log, counter),
		event.NewChannelCapacityHandler(log, config.LowCapacityThreshold),
	}

	// 7. Setup Supervision & Orchestration
	sup := workers.NewSupervisor(log).WithEvents(events)
	registry := runtime.NewRegistry()
	stats := observability.NewDeliveryStats()
	engine := runtime.NewEngine(registry, med, stats, config.SeenWindow, events, log)
	inboxRepository := repositories.NewInboxRepository(db, log)
	index := search.NewInboxIndex(blugeWriter, log)

	orchestrator := runtime.NewOrchestrator(log, sup, registry, engine, med,
		inboxRepository, index, stats, config.PollInterval, config.HealthInterval).
		WithEvents(events, config.MetricInterval, handlers...).
		WithWatch(moderator)

	// 8. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 9. Start the Engine
	if err := orchestrator.Start(ctx); err != nil {
		return exitRuntime, fmt.Errorf("orchestrator failed to start: %w", err)
	}

	// 10. Optional HTTP inspect page over the inbox store
	service := services.NewChatterService(orchestrator, index, timeline, export.NewTranscriptWriter(log))
	if config.DebugPort > 0 {
		internal.StartDebugServer(db, config.DebugPort, "/inspect", internal.InboxMapper, func() map[string]any {
			snap := service.Stats()
			return map[string]any{
				"Published":  snap.Published,
				"Delivered":  snap.Delivered,
				"Duplicates": snap.Duplicates,
				"Flagged":    snap.Flagged,
				"Uptime":     snap.Uptime.Round(time.Second).String(),
			}
		})
		log.Info("Inspect page available", "url", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))
	}

	// 11. Interactive shell (blocks until exit, EOF, or signal)
	shell := NewShell(service, log)
	shellErr := shell.Run(ctx)

	// 12. Final Cleanup (Graceful Shutdown)
	log.Info("Shutting down gracefully...")
	orchestrator.Stop()
	if shellErr != nil {
		return exitRuntime, fmt.Errorf("shell error: %w", shellErr)
	}
	log.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config Config) badger.Options {
	if config.BadgerFilepath == "" {
		// Inboxes live as long as the session.
		return badger.DefaultOptions("").
			WithInMemory(true).
			WithLoggingLevel(badger.WARNING)
	}
	return badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO)
}

func buildBlugeConfig(config Config) bluge.Config {
	if config.BlugeFilepath == "" {
		return bluge.InMemoryOnlyConfig()
	}
	return bluge.DefaultConfig(config.BlugeFilepath)
}

func buildMedium(config Config, log *slog.Logger) (contract.Medium, error) {
	if config.RedisURL == "" {
		return medium.NewMemory(log), nil
	}
	opts, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	return medium.NewRedis(redis.NewClient(opts), config.RedisStream, log), nil
}

// buildModerator loads the embedded dictionaries and compiles the watchlist automaton.
func buildModerator(log *slog.Logger) (moderation.Moderator, error) {
	loader := moderation.NewWatchlistLoader(watchlistFolder)
	data, err := loader.LoadAll("watchlist")
	if err != nil {
		return moderation.Moderator{}, err
	}

	log.Info(fmt.Sprintf("%d watchlist files loaded [%s]",
		len(data.Languages), strings.Join(data.Languages, ",")))
	log.Info(fmt.Sprintf("%d unique watchlisted terms loaded", len(data.Terms)))

	return moderation.NewModerator(data.Terms)
}
