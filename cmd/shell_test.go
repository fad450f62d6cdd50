package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"chatter-hub/domain"
	"chatter-hub/domain/event"
	"chatter-hub/export"
	"chatter-hub/medium"
	"chatter-hub/observability"
	"chatter-hub/projection"
	"chatter-hub/repositories"
	"chatter-hub/runtime"
	"chatter-hub/runtime/workers"
	"chatter-hub/search"
	"chatter-hub/services"
)

const testInterval = 10 * time.Millisecond

// newShellHarness wires a real in-memory hub behind the shell and captures
// its output, so tests can assert the exact lines a user would see.
func newShellHarness(t *testing.T) (*Shell, services.IChatterService, *bytes.Buffer) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })

	med := medium.NewMemory(log)
	t.Cleanup(func() { _ = med.Close() })

	registry := runtime.NewRegistry()
	stats := observability.NewDeliveryStats()
	events := make(chan event.Event, 64)
	engine := runtime.NewEngine(registry, med, stats, 0, events, log)
	repo := repositories.NewInboxRepository(db, log)
	index := search.NewInboxIndex(writer, log)
	supervisor := workers.NewSupervisor(log).WithEvents(events)
	timeline := projection.NewTimeline(0)

	orchestrator := runtime.NewOrchestrator(log, supervisor, registry, engine,
		med, repo, index, stats, testInterval, time.Hour).
		WithEvents(events, time.Hour, timeline)
	require.NoError(t, orchestrator.Start(context.Background()))
	t.Cleanup(orchestrator.Stop)

	service := services.NewChatterService(orchestrator, index, timeline, export.NewTranscriptWriter(log))
	shell := NewShell(service, log)
	out := &bytes.Buffer{}
	shell.out = out
	return shell, service, out
}

func TestShell_CreateAndMembershipLines(t *testing.T) {
	req := require.New(t)
	shell, svc, out := newShellHarness(t)
	ctx := context.Background()

	shell.handleLine(ctx, "create_user alice")
	req.Contains(out.String(), "USER alice CREATED SUCCESSFULLY WITH ID: ")

	shell.handleLine(ctx, "create_group dev team")
	req.Contains(out.String(), "GROUP dev team CREATED SUCCESSFULLY WITH ID: ")

	chatter := svc.ListChatters()[0]
	group := svc.ListGroups()[0]

	out.Reset()
	shell.handleLine(ctx, "add_user_to_group "+string(chatter.ID)+" "+string(group.ID))
	req.Contains(out.String(), "USER WITH ID "+string(chatter.ID)+
		" ADDED TO GROUP WITH ID "+string(group.ID)+" SUCCESSFULLY.")

	out.Reset()
	shell.handleLine(ctx, "list_users")
	req.Contains(out.String(), "USER ID "+string(chatter.ID)+" WITH NAME alice")

	out.Reset()
	shell.handleLine(ctx, "get_groups "+string(chatter.ID))
	req.Contains(out.String(), "USER WITH ID "+string(chatter.ID)+" IS IN THE FOLLOWING GROUPS: ")
	req.Contains(out.String(), "GROUP WITH ID "+string(group.ID)+" AND NAME dev team")

	out.Reset()
	shell.handleLine(ctx, "get_users "+string(group.ID))
	req.Contains(out.String(), "GROUP WITH ID "+string(group.ID)+" HAS THE FOLLOWING USERS: ")
	req.Contains(out.String(), "USER WITH ID "+string(chatter.ID)+" AND NAME alice")
}

func TestShell_UnknownIdsPrintStatusLines(t *testing.T) {
	req := require.New(t)
	shell, svc, out := newShellHarness(t)
	ctx := context.Background()

	// The user is checked before the group
	shell.handleLine(ctx, "add_user_to_group ghost nowhere")
	req.Contains(out.String(), "USER WITH ID ghost DOES NOT EXIST. CHECK USERS OR HELP FOR MORE DETAILS.")

	alice, err := svc.CreateChatter(ctx, "alice")
	req.NoError(err)

	out.Reset()
	shell.handleLine(ctx, "add_user_to_group "+string(alice.ID)+" nowhere")
	req.Contains(out.String(), "GROUP WITH ID nowhere DOES NOT EXIST. CHECK GROUPS OR HELP FOR MORE DETAILS.")

	out.Reset()
	shell.handleLine(ctx, "remove_user ghost")
	req.Contains(out.String(), "USER WITH ID ghost DOES NOT EXIST. CHECK USERS OR HELP FOR MORE DETAILS.")

	out.Reset()
	shell.handleLine(ctx, "send_message nowhere ghost hi")
	req.Contains(out.String(), "USER WITH ID ghost DOES NOT EXIST. CHECK USERS OR HELP FOR MORE DETAILS.")

	out.Reset()
	shell.handleLine(ctx, "bogus")
	req.Contains(out.String(), "UNKNOWN COMMAND bogus. CHECK HELP FOR MORE DETAILS.")
}

func TestShell_SendAndReadMessages(t *testing.T) {
	req := require.New(t)
	shell, svc, out := newShellHarness(t)
	ctx := context.Background()

	alice, err := svc.CreateChatter(ctx, "alice")
	req.NoError(err)
	bob, err := svc.CreateChatter(ctx, "bob")
	req.NoError(err)
	group, err := svc.CreateGroup("devs")
	req.NoError(err)
	req.NoError(svc.AddChatterToGroup(alice.ID, group.ID))
	req.NoError(svc.AddChatterToGroup(bob.ID, group.ID))

	shell.handleLine(ctx, "send_message "+string(group.ID)+" "+string(alice.ID)+" hello there friends")
	req.Contains(out.String(), "USER WITH ID "+string(alice.ID)+
		" SENT MESSAGE TO GROUP WITH ID "+string(group.ID)+" SUCCESSFULLY.")

	// The body keeps its spacing all the way to the inbox
	var entries []domain.InboxEntry
	req.Eventually(func() bool {
		entries, err = svc.ReceivedMessages(bob.ID)
		return err == nil && len(entries) == 1
	}, 2*time.Second, testInterval)
	req.Equal("hello there friends", entries[0].Body)

	out.Reset()
	shell.handleLine(ctx, "messages "+string(bob.ID))
	req.Contains(out.String(), "hello there friends")

	out.Reset()
	shell.handleLine(ctx, "stats")
	req.Contains(out.String(), "PUBLISHED")
}

func TestShell_RecentAndExportLines(t *testing.T) {
	req := require.New(t)
	shell, svc, out := newShellHarness(t)
	ctx := context.Background()

	shell.handleLine(ctx, "recent nowhere")
	req.Contains(out.String(), "GROUP WITH ID nowhere DOES NOT EXIST. CHECK GROUPS OR HELP FOR MORE DETAILS.")

	out.Reset()
	shell.handleLine(ctx, "export ghost "+filepath.Join(t.TempDir(), "ghost.pdf"))
	req.Contains(out.String(), "USER WITH ID ghost DOES NOT EXIST. CHECK USERS OR HELP FOR MORE DETAILS.")

	alice, err := svc.CreateChatter(ctx, "alice")
	req.NoError(err)
	bob, err := svc.CreateChatter(ctx, "bob")
	req.NoError(err)
	group, err := svc.CreateGroup("devs")
	req.NoError(err)
	req.NoError(svc.AddChatterToGroup(alice.ID, group.ID))
	req.NoError(svc.AddChatterToGroup(bob.ID, group.ID))

	shell.handleLine(ctx, "send_message "+string(group.ID)+" "+string(alice.ID)+" release is out")
	req.Eventually(func() bool {
		entries, err := svc.ReceivedMessages(bob.ID)
		return err == nil && len(entries) == 1
	}, 2*time.Second, testInterval)

	// The timeline fills asynchronously through the event stream
	req.Eventually(func() bool {
		posted, err := svc.RecentInGroup(group.ID)
		return err == nil && len(posted) == 1
	}, 2*time.Second, testInterval)

	out.Reset()
	shell.handleLine(ctx, "recent "+string(group.ID))
	req.Contains(out.String(), "release is out")

	path := filepath.Join(t.TempDir(), "bob.pdf")
	out.Reset()
	shell.handleLine(ctx, "export "+string(bob.ID)+" "+path)
	req.Contains(out.String(), "EXPORTED 1 MESSAGES FOR USER WITH ID "+string(bob.ID)+" TO "+path+".")

	data, err := os.ReadFile(path)
	req.NoError(err)
	req.Equal("%PDF", string(data[:4]))
}

func TestShell_FieldsNKeepsBodySpacing(t *testing.T) {
	req := require.New(t)

	tokens, rest := fieldsN("send_message g1 u1 two  inner  spaces", 3)
	req.Equal([]string{"send_message", "g1", "u1"}, tokens)
	req.Equal("two  inner  spaces", rest)

	tokens, rest = fieldsN("   list_users   ", 1)
	req.Equal([]string{"list_users"}, tokens)
	req.Empty(rest)

	tokens, rest = fieldsN("create_user", 1)
	req.Equal([]string{"create_user"}, tokens)
	req.Empty(rest)
}
