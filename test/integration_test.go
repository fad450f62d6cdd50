package test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chatter-hub/domain"
	"chatter-hub/medium"
	"chatter-hub/mocks"
	"chatter-hub/observability"
	"chatter-hub/repositories"
	"chatter-hub/runtime"
	"chatter-hub/runtime/workers"
)

func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)

	// 1. Create channel to wait for a signal once delivery happened
	done := make(chan struct{})
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	med := medium.NewMemory(log)
	supervisor := workers.NewSupervisor(log)
	registry := runtime.NewRegistry()
	stats := observability.NewDeliveryStats()
	engine := runtime.NewEngine(registry, med, stats, 0, nil, log)
	inboxRepository := repositories.NewInboxRepository(db, log)

	// The index add runs after the inbox append, which makes it a natural
	// probe for "the entry went all the way through".
	ctrl := gomock.NewController(t)
	mockIndex := mocks.NewMockInboxIndexer(ctrl)
	mockIndex.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Do(func(domain.ChatterID, []domain.InboxEntry) {
			close(done) // Signaling an entry has been delivered
		}).
		Return(nil).
		Times(1)

	orchestrator := runtime.NewOrchestrator(log, supervisor, registry, engine,
		med, inboxRepository, mockIndex, stats, 10*time.Millisecond, time.Hour)
	req.NoError(orchestrator.Start(ctx))

	// Clean everything at the end of the test
	t.Cleanup(func() {
		orchestrator.Stop()
		_ = med.Close()
		_ = db.Close()
	})

	// 2. Two chatters share a group
	alice, err := orchestrator.CreateChatter(ctx, "alice")
	req.NoError(err)
	bob, err := orchestrator.CreateChatter(ctx, "bob")
	req.NoError(err)
	group := orchestrator.CreateGroup("integration")
	req.NoError(orchestrator.AddChatterToGroup(alice.ID, group.ID))
	req.NoError(orchestrator.AddChatterToGroup(bob.ID, group.ID))

	// When a message is published
	content := "this message will self destruct in 5 seconds"
	msg, err := orchestrator.SendMessage(ctx, alice.ID, group.ID, content)
	req.NoError(err)
	req.Equal(alice.ID, msg.SenderID)

	// And wait time for channels & goroutines
	select {
	case <-done:
		// Then the entry has reached the recipient's inbox
	case <-time.After(2 * time.Second):
		req.Fail("Timeout: entry has never reached the inbox")
	}

	entries, err := orchestrator.ReceivedMessages(bob.ID)
	req.NoError(err)
	req.Len(entries, 1)
	req.Equal(domain.InboxEntry{GroupID: group.ID, SenderID: alice.ID, Body: content}, entries[0])

	// The sender never hears itself, even as a member of the group
	own, err := orchestrator.ReceivedMessages(alice.ID)
	req.NoError(err)
	req.Empty(own)
}
