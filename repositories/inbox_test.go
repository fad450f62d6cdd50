package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"chatter-hub/domain"
)

func TestInboxRepository_AppendAndReadBackInOrder(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewInboxRepository(db, slog.Default())
	bob := domain.ChatterID("bob")
	batch := []domain.InboxEntry{
		{GroupID: "dev", SenderID: "alice", Body: "first"},
		{GroupID: "ops", SenderID: "carol", Body: "second"},
		{GroupID: "dev", SenderID: "alice", Body: "third"},
	}

	req.NoError(repository.Append(bob, batch))

	entries, err := repository.Entries(bob)
	req.NoError(err)
	req.Equal(batch, entries)
}

func TestInboxRepository_UnknownRecipientHasEmptyInbox(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewInboxRepository(db, slog.Default())

	entries, err := repository.Entries("ghost")
	req.NoError(err)
	req.Empty(entries)
}

func TestInboxRepository_BatchesStayInDeliveryOrder(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewInboxRepository(db, slog.Default())
	bob := domain.ChatterID("bob")

	req.NoError(repository.Append(bob, []domain.InboxEntry{
		{GroupID: "dev", SenderID: "alice", Body: "batch one"},
	}))
	time.Sleep(time.Millisecond)
	req.NoError(repository.Append(bob, []domain.InboxEntry{
		{GroupID: "dev", SenderID: "alice", Body: "batch two"},
	}))

	entries, err := repository.Entries(bob)
	req.NoError(err)
	req.Len(entries, 2)
	req.Equal("batch one", entries[0].Body)
	req.Equal("batch two", entries[1].Body)
}

func TestInboxRepository_RecipientsAreIsolated(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewInboxRepository(db, slog.Default())

	// "bob" is a key prefix of "bobby"; the scans must not bleed
	req.NoError(repository.Append("bob", []domain.InboxEntry{
		{GroupID: "dev", SenderID: "alice", Body: "for bob"},
	}))
	req.NoError(repository.Append("bobby", []domain.InboxEntry{
		{GroupID: "dev", SenderID: "alice", Body: "for bobby"},
	}))

	entries, err := repository.Entries("bob")
	req.NoError(err)
	req.Len(entries, 1)
	req.Equal("for bob", entries[0].Body)

	entries, err = repository.Entries("bobby")
	req.NoError(err)
	req.Len(entries, 1)
	req.Equal("for bobby", entries[0].Body)
}

func TestInboxRepository_EmptyBatchIsNoOp(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewInboxRepository(db, slog.Default())
	req.NoError(repository.Append("bob", nil))

	entries, err := repository.Entries("bob")
	req.NoError(err)
	req.Empty(entries)
}
