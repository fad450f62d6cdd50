package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"chatter-hub/internal"
)

// Config keeps the viewer independent from the hub's own configuration:
// it only needs to know where the inboxes live and where to serve.
type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	DebugPort      int    `env:"DEBUG_PORT,default=8089"`
}

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	// Note: BypassLockGuard allows opening if another process (the hub) holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// 3. Serve the inspect page until interrupted
	// The stats block is static since no orchestrator runs here
	staticStats := func() map[string]any {
		return map[string]any{
			"Status": "Viewer Mode (Read-Only)",
			"Time":   time.Now().Format(time.RFC822),
		}
	}
	internal.StartDebugServer(db, config.DebugPort, "/inspect", internal.InboxMapper, staticStats)
	fmt.Printf("🌐 Viewer started at http://localhost:%d/inspect\n", config.DebugPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	fmt.Println("\nViewer stopped")
}
