// Package services exposes the hub to its boundaries. The service is a
// synchronous façade: it validates input, delegates to the orchestrator,
// and returns sentinel errors the boundary can map to status codes.
package services

import (
	"context"
	"fmt"

	"chatter-hub/domain"
	"chatter-hub/errors"
	"chatter-hub/export"
	"chatter-hub/observability"
	"chatter-hub/projection"
	"chatter-hub/runtime"
	"chatter-hub/search"
)

type IChatterService interface {
	CreateChatter(ctx context.Context, name string) (domain.Chatter, error)
	CreateGroup(name string) (domain.Group, error)
	AddChatterToGroup(chatterID domain.ChatterID, groupID domain.GroupID) error
	RemoveChatter(id domain.ChatterID) error
	RemoveGroup(id domain.GroupID) error
	SendMessage(ctx context.Context, groupID domain.GroupID, senderID domain.ChatterID, body string) (domain.Message, error)
	GroupsOfChatter(id domain.ChatterID) (map[domain.GroupID]string, error)
	ChattersOfGroup(id domain.GroupID) (map[domain.ChatterID]string, error)
	ListChatters() []runtime.ChatterSnapshot
	ListGroups() []runtime.GroupSnapshot
	ReceivedMessages(id domain.ChatterID) ([]domain.InboxEntry, error)
	SearchReceived(ctx context.Context, id domain.ChatterID, query string) ([]search.Hit, error)
	RecentInGroup(id domain.GroupID) ([]projection.PostedMessage, error)
	ExportReceived(path string, id domain.ChatterID) (int, error)
	Stats() observability.StatsSnapshot
}

type ChatterService struct {
	orchestrator *runtime.Orchestrator
	index        *search.InboxIndex
	timeline     *projection.Timeline
	transcripts  *export.TranscriptWriter
}

// NewChatterService builds the façade. Index, timeline, and transcripts
// are optional: a nil collaborator disables the matching operation.
func NewChatterService(o *runtime.Orchestrator, index *search.InboxIndex,
	timeline *projection.Timeline, transcripts *export.TranscriptWriter) IChatterService {
	return &ChatterService{orchestrator: o, index: index, timeline: timeline, transcripts: transcripts}
}

func (s *ChatterService) CreateChatter(ctx context.Context, name string) (domain.Chatter, error) {
	if err := validateRequest(CreateChatterRequest{Name: name}); err != nil {
		return domain.Chatter{}, err
	}
	return s.orchestrator.CreateChatter(ctx, name)
}

func (s *ChatterService) CreateGroup(name string) (domain.Group, error) {
	if err := validateRequest(CreateGroupRequest{Name: name}); err != nil {
		return domain.Group{}, err
	}
	return s.orchestrator.CreateGroup(name), nil
}

func (s *ChatterService) AddChatterToGroup(chatterID domain.ChatterID, groupID domain.GroupID) error {
	return s.orchestrator.AddChatterToGroup(chatterID, groupID)
}

func (s *ChatterService) RemoveChatter(id domain.ChatterID) error {
	return s.orchestrator.RemoveChatter(id)
}

func (s *ChatterService) RemoveGroup(id domain.GroupID) error {
	return s.orchestrator.RemoveGroup(id)
}

// SendMessage keeps the caller-facing argument order of the original
// command surface: group first, then the sender.
func (s *ChatterService) SendMessage(ctx context.Context, groupID domain.GroupID,
	senderID domain.ChatterID, body string) (domain.Message, error) {
	if err := validateRequest(SendMessageRequest{Body: body}); err != nil {
		return domain.Message{}, err
	}
	return s.orchestrator.SendMessage(ctx, senderID, groupID, body)
}

func (s *ChatterService) GroupsOfChatter(id domain.ChatterID) (map[domain.GroupID]string, error) {
	return s.orchestrator.GroupsOf(id)
}

func (s *ChatterService) ChattersOfGroup(id domain.GroupID) (map[domain.ChatterID]string, error) {
	return s.orchestrator.MembersOf(id)
}

func (s *ChatterService) ListChatters() []runtime.ChatterSnapshot {
	return s.orchestrator.Chatters()
}

func (s *ChatterService) ListGroups() []runtime.GroupSnapshot {
	return s.orchestrator.Groups()
}

func (s *ChatterService) ReceivedMessages(id domain.ChatterID) ([]domain.InboxEntry, error) {
	return s.orchestrator.ReceivedMessages(id)
}

// SearchReceived runs a raw shell query against the recipient's indexed
// history. Flags like --group and --limit are parsed out of the input.
func (s *ChatterService) SearchReceived(ctx context.Context, id domain.ChatterID,
	query string) ([]search.Hit, error) {
	if s.index == nil {
		return nil, fmt.Errorf("search index not configured")
	}
	return s.index.Search(ctx, id, search.ParseQuery(query))
}

// RecentInGroup returns the projected timeline of a live group. The group
// must still exist: history of removed groups is only in inboxes.
func (s *ChatterService) RecentInGroup(id domain.GroupID) ([]projection.PostedMessage, error) {
	if s.timeline == nil {
		return nil, fmt.Errorf("timeline not configured")
	}
	if _, err := s.orchestrator.MembersOf(id); err != nil {
		return nil, err
	}
	return s.timeline.RecentInGroup(id), nil
}

// ExportReceived writes the chatter's delivered history to a PDF at path
// and reports how many entries it contains.
func (s *ChatterService) ExportReceived(path string, id domain.ChatterID) (int, error) {
	if s.transcripts == nil {
		return 0, fmt.Errorf("transcript export not configured")
	}
	chatter, ok := s.chatterByID(id)
	if !ok {
		return 0, errors.ErrChatterNotFound
	}
	entries, err := s.orchestrator.ReceivedMessages(id)
	if err != nil {
		return 0, err
	}
	if err := s.transcripts.WritePDF(path, chatter, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (s *ChatterService) chatterByID(id domain.ChatterID) (domain.Chatter, bool) {
	for _, snapshot := range s.orchestrator.Chatters() {
		if snapshot.ID == id {
			return snapshot.Chatter, true
		}
	}
	return domain.Chatter{}, false
}

func (s *ChatterService) Stats() observability.StatsSnapshot {
	return s.orchestrator.Stats()
}
