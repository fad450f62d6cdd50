package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"chatter-hub/domain"
	"chatter-hub/errors"
	"chatter-hub/services"
)

// Shell is the interactive command surface of the hub. Commands and their
// output lines follow the historical wire shell, so existing transcripts
// and muscle memory keep working.
type Shell struct {
	service services.IChatterService
	log     *slog.Logger
	out     io.Writer
}

func NewShell(service services.IChatterService, log *slog.Logger) *Shell {
	return &Shell{service: service, log: log, out: os.Stdout}
}

// Run reads commands until exit, EOF, or context cancellation.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, color.New(color.BgBlack, color.FgGreen).
		Render("Chatter Hub. Type help to list commands."))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".chatter_hub_history"),
		HistoryLimit:    100,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return fmt.Errorf("initializing readline: %w", err)
	}
	defer rl.Close()

	// A cancelled context (signal) unblocks the pending Readline.
	go func() {
		<-ctx.Done()
		_ = rl.Close()
	}()

	for {
		line, err := rl.Readline()
		if err != nil {
			if stderrors.Is(err, readline.ErrInterrupt) || stderrors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
		if s.handleLine(ctx, strings.TrimSpace(line)) {
			return nil
		}
	}
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("create_group"),
		readline.PcItem("create_user"),
		readline.PcItem("add_user_to_group"),
		readline.PcItem("remove_group"),
		readline.PcItem("remove_user"),
		readline.PcItem("send_message"),
		readline.PcItem("get_groups"),
		readline.PcItem("get_users"),
		readline.PcItem("list_groups"),
		readline.PcItem("list_users"),
		readline.PcItem("messages"),
		readline.PcItem("search"),
		readline.PcItem("recent"),
		readline.PcItem("export"),
		readline.PcItem("stats"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

// handleLine dispatches one command. It reports whether the shell should
// terminate.
func (s *Shell) handleLine(ctx context.Context, line string) bool {
	if line == "" {
		return false
	}
	tokens, rest := fieldsN(line, 1)
	switch tokens[0] {
	case "exit", "quit":
		return true
	case "help", "h":
		s.printHelp()
	case "create_group":
		s.createGroup(rest)
	case "create_user":
		s.createUser(ctx, rest)
	case "add_user_to_group":
		s.addUserToGroup(line)
	case "remove_group":
		s.removeGroup(rest)
	case "remove_user":
		s.removeUser(rest)
	case "send_message":
		s.sendMessage(ctx, line)
	case "get_groups":
		s.getGroups(rest)
	case "get_users":
		s.getUsers(rest)
	case "list_groups":
		s.listGroups()
	case "list_users":
		s.listUsers()
	case "messages":
		s.messages(rest)
	case "search":
		s.search(ctx, line)
	case "recent":
		s.recent(rest)
	case "export":
		s.export(line)
	case "stats":
		s.stats()
	default:
		fmt.Fprintf(s.out, "UNKNOWN COMMAND %s. CHECK HELP FOR MORE DETAILS.\n\n", tokens[0])
	}
	return false
}

// fieldsN splits off the first n whitespace separated tokens and returns
// them together with the trimmed remainder of the line. Message bodies and
// names keep their inner spacing this way.
func fieldsN(line string, n int) ([]string, string) {
	tokens := make([]string, 0, n)
	rest := strings.TrimSpace(line)
	for i := 0; i < n; i++ {
		cut := strings.IndexFunc(rest, unicode.IsSpace)
		if cut < 0 {
			if rest != "" {
				tokens = append(tokens, rest)
				rest = ""
			}
			break
		}
		tokens = append(tokens, rest[:cut])
		rest = strings.TrimSpace(rest[cut:])
	}
	return tokens, rest
}

func (s *Shell) createGroup(name string) {
	group, err := s.service.CreateGroup(name)
	if err != nil {
		s.printInvalid(err)
		return
	}
	fmt.Fprintf(s.out, "GROUP %s CREATED SUCCESSFULLY WITH ID: %s\n\n", group.Name, group.ID)
}

func (s *Shell) createUser(ctx context.Context, name string) {
	chatter, err := s.service.CreateChatter(ctx, name)
	if err != nil {
		s.printInvalid(err)
		return
	}
	fmt.Fprintf(s.out, "USER %s CREATED SUCCESSFULLY WITH ID: %s\n\n", chatter.Name, chatter.ID)
}

func (s *Shell) addUserToGroup(line string) {
	tokens, _ := fieldsN(line, 3)
	if len(tokens) < 3 {
		fmt.Fprintf(s.out, "USAGE: add_user_to_group <user_id> <group_id>\n\n")
		return
	}
	userID, groupID := domain.ChatterID(tokens[1]), domain.GroupID(tokens[2])

	err := s.service.AddChatterToGroup(userID, groupID)
	switch errors.Code(err, true) {
	case errors.StatusChatterNotFound:
		fmt.Fprintf(s.out, "USER WITH ID %s DOES NOT EXIST. CHECK USERS OR HELP FOR MORE DETAILS.\n\n", userID)
	case errors.StatusNotFound:
		fmt.Fprintf(s.out, "GROUP WITH ID %s DOES NOT EXIST. CHECK GROUPS OR HELP FOR MORE DETAILS.\n\n", groupID)
	case errors.StatusOK:
		fmt.Fprintf(s.out, "USER WITH ID %s ADDED TO GROUP WITH ID %s SUCCESSFULLY.\n\n", userID, groupID)
	}
}

func (s *Shell) removeGroup(id string) {
	err := s.service.RemoveGroup(domain.GroupID(id))
	if errors.Code(err, false) == errors.StatusNotFound {
		fmt.Fprintf(s.out, "GROUP WITH ID %s DOES NOT EXIST. CHECK GROUPS OR HELP FOR MORE DETAILS.\n\n", id)
		return
	}
	fmt.Fprintf(s.out, "GROUP WITH ID %s DELETED SUCCESSFULLY.\n\n", id)
}

func (s *Shell) removeUser(id string) {
	err := s.service.RemoveChatter(domain.ChatterID(id))
	if errors.Code(err, false) == errors.StatusNotFound {
		fmt.Fprintf(s.out, "USER WITH ID %s DOES NOT EXIST. CHECK USERS OR HELP FOR MORE DETAILS.\n\n", id)
		return
	}
	fmt.Fprintf(s.out, "USER WITH ID %s DELETED SUCCESSFULLY.\n\n", id)
}

func (s *Shell) sendMessage(ctx context.Context, line string) {
	tokens, body := fieldsN(line, 3)
	if len(tokens) < 3 || body == "" {
		fmt.Fprintf(s.out, "USAGE: send_message <group_id> <user_id> <msg>\n\n")
		return
	}
	groupID, userID := domain.GroupID(tokens[1]), domain.ChatterID(tokens[2])

	_, err := s.service.SendMessage(ctx, groupID, userID, body)
	if stderrors.Is(err, errors.ErrValidation) {
		s.printInvalid(err)
		return
	}
	switch errors.Code(err, true) {
	case errors.StatusChatterNotFound:
		fmt.Fprintf(s.out, "USER WITH ID %s DOES NOT EXIST. CHECK USERS OR HELP FOR MORE DETAILS.\n\n", userID)
	case errors.StatusNotFound:
		fmt.Fprintf(s.out, "GROUP WITH ID %s DOES NOT EXIST. CHECK GROUPS OR HELP FOR MORE DETAILS.\n\n", groupID)
	case errors.StatusOK:
		fmt.Fprintf(s.out, "USER WITH ID %s SENT MESSAGE TO GROUP WITH ID %s SUCCESSFULLY.\n\n", userID, groupID)
	}
}

func (s *Shell) getGroups(id string) {
	groups, err := s.service.GroupsOfChatter(domain.ChatterID(id))
	if err != nil {
		fmt.Fprintf(s.out, "USER WITH ID %s DOES NOT EXIST. CHECK USERS OR HELP FOR MORE DETAILS.\n\n", id)
		return
	}
	fmt.Fprintf(s.out, "USER WITH ID %s IS IN THE FOLLOWING GROUPS: \n", id)
	for groupID, name := range groups {
		fmt.Fprintf(s.out, "GROUP WITH ID %s AND NAME %s\n", groupID, name)
	}
	fmt.Fprintln(s.out)
}

func (s *Shell) getUsers(id string) {
	members, err := s.service.ChattersOfGroup(domain.GroupID(id))
	if err != nil {
		fmt.Fprintf(s.out, "GROUP WITH ID %s DOES NOT EXIST. CHECK GROUPS OR HELP FOR MORE DETAILS.\n\n", id)
		return
	}
	fmt.Fprintf(s.out, "GROUP WITH ID %s HAS THE FOLLOWING USERS: \n", id)
	for userID, name := range members {
		fmt.Fprintf(s.out, "USER WITH ID %s AND NAME %s\n", userID, name)
	}
	fmt.Fprintln(s.out)
}

func (s *Shell) listGroups() {
	for _, group := range s.service.ListGroups() {
		fmt.Fprintf(s.out, "GROUP ID %s WITH NAME %s AND MEMBERS [%s]\n",
			group.ID, group.Name, joinIDs(group.MemberIDs))
	}
	fmt.Fprintln(s.out)
}

func (s *Shell) listUsers() {
	for _, chatter := range s.service.ListChatters() {
		fmt.Fprintf(s.out, "USER ID %s WITH NAME %s IN GROUPS [%s]\n",
			chatter.ID, chatter.Name, joinIDs(chatter.GroupIDs))
	}
	fmt.Fprintln(s.out)
}

// joinIDs renders a slice of typed ids as a comma separated list.
func joinIDs[T ~string](ids []T) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ",")
}

func (s *Shell) messages(id string) {
	entries, err := s.service.ReceivedMessages(domain.ChatterID(id))
	if err != nil {
		fmt.Fprintf(s.out, "COULD NOT READ MESSAGES: %v\n\n", err)
		return
	}
	table := s.newTable([]string{"Group", "Sender", "Message"})
	for _, entry := range entries {
		table.Append([]string{string(entry.GroupID), string(entry.SenderID), entry.Body})
	}
	table.Render()
	fmt.Fprintln(s.out)
}

func (s *Shell) search(ctx context.Context, line string) {
	tokens, query := fieldsN(line, 2)
	if len(tokens) < 2 || query == "" {
		fmt.Fprintf(s.out, "USAGE: search <user_id> <query>\n\n")
		return
	}
	hits, err := s.service.SearchReceived(ctx, domain.ChatterID(tokens[1]), query)
	if err != nil {
		fmt.Fprintf(s.out, "SEARCH FAILED: %v\n\n", err)
		return
	}
	table := s.newTable([]string{"Group", "Sender", "Message"})
	for _, hit := range hits {
		table.Append([]string{string(hit.GroupID), string(hit.SenderID), hit.Body})
	}
	table.Render()
	fmt.Fprintln(s.out)
}

func (s *Shell) recent(id string) {
	posted, err := s.service.RecentInGroup(domain.GroupID(id))
	if err != nil {
		fmt.Fprintf(s.out, "GROUP WITH ID %s DOES NOT EXIST. CHECK GROUPS OR HELP FOR MORE DETAILS.\n\n", id)
		return
	}
	table := s.newTable([]string{"Posted at", "Sender", "Message"})
	for _, msg := range posted {
		table.Append([]string{msg.At.Format("15:04:05"), string(msg.SenderID), msg.Body})
	}
	table.Render()
	fmt.Fprintln(s.out)
}

func (s *Shell) export(line string) {
	tokens, _ := fieldsN(line, 3)
	if len(tokens) < 3 {
		fmt.Fprintf(s.out, "USAGE: export <user_id> <path>\n\n")
		return
	}
	userID, path := domain.ChatterID(tokens[1]), tokens[2]

	count, err := s.service.ExportReceived(path, userID)
	if stderrors.Is(err, errors.ErrChatterNotFound) {
		fmt.Fprintf(s.out, "USER WITH ID %s DOES NOT EXIST. CHECK USERS OR HELP FOR MORE DETAILS.\n\n", userID)
		return
	}
	if err != nil {
		fmt.Fprintf(s.out, "EXPORT FAILED: %v\n\n", err)
		return
	}
	fmt.Fprintf(s.out, "EXPORTED %d MESSAGES FOR USER WITH ID %s TO %s.\n\n", count, userID, path)
}

func (s *Shell) stats() {
	snap := s.service.Stats()
	table := s.newTable([]string{"Published", "Delivered", "Duplicates", "Filtered out", "Flagged", "Read errors", "Uptime"})
	table.Append([]string{
		fmt.Sprintf("%d", snap.Published),
		fmt.Sprintf("%d", snap.Delivered),
		fmt.Sprintf("%d", snap.Duplicates),
		fmt.Sprintf("%d", snap.FilteredOut),
		fmt.Sprintf("%d", snap.Flagged),
		fmt.Sprintf("%d", snap.ReadErrors),
		snap.Uptime.Round(time.Second).String(),
	})
	table.Render()
	fmt.Fprintln(s.out)
}

func (s *Shell) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(s.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func (s *Shell) printInvalid(err error) {
	s.log.Debug("Rejected input", "error", err)
	fmt.Fprintf(s.out, "INVALID INPUT. CHECK HELP FOR MORE DETAILS.\n\n")
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, "\nWelcome to the Chatter Hub shell! Manage users, groups, and messages in real time.")
	fmt.Fprintln(s.out, "\nAvailable commands:")
	fmt.Fprintln(s.out, `
  create_group <group_name>
      Create a new group with the specified name.

  create_user <user_name>
      Create a new user/chatter with the specified name.

  add_user_to_group <user_id> <group_id>
      Add an existing user to an existing group.

  remove_group <group_id>
      Delete a group by its ID.

  remove_user <user_id>
      Delete a user by their ID.

  send_message <group_id> <user_id> <msg>
      Send a message from a user to a group.

  get_groups <user_id>
      Get all the group IDs and names of a given user.

  get_users <group_id>
      Get all the user IDs and names of a given group.

  list_groups
      List all groups with their IDs and names.

  list_users
      List all users with their IDs and names.

  messages <user_id>
      Show every message delivered to a user so far.

  search <user_id> <query> [--group <group_id>] [--limit <n>]
      Full-text search over a user's delivered messages.

  recent <group_id>
      Show the latest messages posted to a group.

  export <user_id> <path>
      Write a user's delivered messages to a PDF transcript.

  stats
      Show distribution counters and uptime.

  help
      Show this help message.

  exit
      Leave the shell.`)
	fmt.Fprintln(s.out)
}
