package medium

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"chatter-hub/domain"
	"chatter-hub/errors"
)

func TestMemory_ReaderSeesOnlyRecordsAfterCreation(t *testing.T) {
	require := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx := context.Background()

	// Given a record published before the reader exists
	m := NewMemory(log)
	require.NoError(m.Publish(ctx, domain.NewMessage("alice", "g1", "before")))

	reader, err := m.NewReader(ctx)
	require.NoError(err)

	// When more records arrive after creation
	require.NoError(m.Publish(ctx, domain.NewMessage("alice", "g1", "first")))
	require.NoError(m.Publish(ctx, domain.NewMessage("bob", "g1", "second")))

	// Then only the newer records are returned, in publish order
	batch, err := reader.ReadNew(ctx)
	require.NoError(err)
	require.Len(batch, 2)
	require.Equal("first", batch[0].Body)
	require.Equal("second", batch[1].Body)

	// And the cursor advanced past them
	batch, err = reader.ReadNew(ctx)
	require.NoError(err)
	require.Empty(batch)
}

func TestMemory_ReadersKeepIndependentCursors(t *testing.T) {
	require := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx := context.Background()

	m := NewMemory(log)
	early, err := m.NewReader(ctx)
	require.NoError(err)

	require.NoError(m.Publish(ctx, domain.NewMessage("alice", "g1", "one")))

	late, err := m.NewReader(ctx)
	require.NoError(err)

	require.NoError(m.Publish(ctx, domain.NewMessage("alice", "g1", "two")))

	earlyBatch, err := early.ReadNew(ctx)
	require.NoError(err)
	lateBatch, err := late.ReadNew(ctx)
	require.NoError(err)

	require.Len(earlyBatch, 2)
	require.Len(lateBatch, 1)
	require.Equal("two", lateBatch[0].Body)
}

func TestMemory_CompactionNeverLosesUnreadRecords(t *testing.T) {
	require := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	ctx := context.Background()

	m := NewMemory(log)
	reader, err := m.NewReader(ctx)
	require.NoError(err)

	total := compactThreshold + 100
	for i := 0; i < total; i++ {
		require.NoError(m.Publish(ctx, domain.NewMessage("alice", "g1", "bulk")))
	}

	batch, err := reader.ReadNew(ctx)
	require.NoError(err)
	require.Len(batch, total)

	// The consumed prefix was dropped; new records still flow
	require.NoError(m.Publish(ctx, domain.NewMessage("alice", "g1", "after-compact")))
	batch, err = reader.ReadNew(ctx)
	require.NoError(err)
	require.Len(batch, 1)
	require.Equal("after-compact", batch[0].Body)
}

func TestMemory_ClosedMediumRejectsOperations(t *testing.T) {
	require := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx := context.Background()

	m := NewMemory(log)
	reader, err := m.NewReader(ctx)
	require.NoError(err)
	require.NoError(m.Close())

	err = m.Publish(ctx, domain.NewMessage("alice", "g1", "too late"))
	require.ErrorIs(err, errors.ErrMediumClosed)

	_, err = m.NewReader(ctx)
	require.ErrorIs(err, errors.ErrMediumClosed)

	_, err = reader.ReadNew(ctx)
	require.ErrorIs(err, errors.ErrMediumClosed)
}

func TestMemory_ClosedReaderStopsReading(t *testing.T) {
	require := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx := context.Background()

	m := NewMemory(log)
	reader, err := m.NewReader(ctx)
	require.NoError(err)
	require.NoError(reader.Close())
	require.NoError(reader.Close())

	_, err = reader.ReadNew(ctx)
	require.ErrorIs(err, errors.ErrReaderClosed)
}

func TestMemory_ConcurrentPublishersReachOneReader(t *testing.T) {
	require := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	ctx := context.Background()

	m := NewMemory(log)
	reader, err := m.NewReader(ctx)
	require.NoError(err)

	const publishers = 4
	const perPublisher = 250

	var wg sync.WaitGroup
	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perPublisher; j++ {
				_ = m.Publish(ctx, domain.NewMessage("writer", "g1", "load"))
			}
		}()
	}
	wg.Wait()

	seen := make(map[uuid.UUID]struct{})
	deadline := time.Now().Add(2 * time.Second)
	for len(seen) < publishers*perPublisher && time.Now().Before(deadline) {
		batch, err := reader.ReadNew(ctx)
		require.NoError(err)
		for _, msg := range batch {
			_, dup := seen[msg.ID]
			require.False(dup, "record read twice")
			seen[msg.ID] = struct{}{}
		}
	}
	require.Len(seen, publishers*perPublisher)
}
