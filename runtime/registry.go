package runtime

import (
	"sync"

	"github.com/samber/lo"

	"chatter-hub/domain"
	"chatter-hub/errors"
)

type Set map[domain.GroupID]struct{}

type MemberSet map[domain.ChatterID]struct{}

// Registry is the authoritative directory of chatters, groups, and their
// memberships. Both sides of the membership relation are kept as sets and
// updated together under one lock, so they can never drift apart.
type Registry struct {
	mu            sync.RWMutex
	chatters      map[domain.ChatterID]domain.Chatter
	groups        map[domain.GroupID]domain.Group
	chatterGroups map[domain.ChatterID]Set
	groupMembers  map[domain.GroupID]MemberSet
}

func NewRegistry() *Registry {
	return &Registry{
		chatters:      make(map[domain.ChatterID]domain.Chatter),
		groups:        make(map[domain.GroupID]domain.Group),
		chatterGroups: make(map[domain.ChatterID]Set),
		groupMembers:  make(map[domain.GroupID]MemberSet),
	}
}

// CreateChatter mints a new chatter and registers it. Ids are fresh UUIDs,
// collisions are not a concern.
func (r *Registry) CreateChatter(name string) domain.Chatter {
	chatter := domain.NewChatter(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chatters[chatter.ID] = chatter
	return chatter
}

func (r *Registry) CreateGroup(name string) domain.Group {
	group := domain.NewGroup(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups[group.ID] = group
	return group
}

// RemoveChatter deletes a chatter and detaches it from every group it
// belonged to. Entries already delivered to its inbox are untouched.
func (r *Registry) RemoveChatter(id domain.ChatterID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.chatters[id]; !ok {
		return errors.ErrChatterNotFound
	}
	delete(r.chatters, id)
	for groupID := range r.chatterGroups[id] {
		r.dropMemberLocked(groupID, id)
	}
	delete(r.chatterGroups, id)
	return nil
}

// RemoveGroup deletes a group and detaches all its members.
func (r *Registry) RemoveGroup(id domain.GroupID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groups[id]; !ok {
		return errors.ErrGroupNotFound
	}
	delete(r.groups, id)
	for chatterID := range r.groupMembers[id] {
		r.dropGroupLocked(chatterID, id)
	}
	delete(r.groupMembers, id)
	return nil
}

func (r *Registry) ChatterExists(id domain.ChatterID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.chatters[id]
	return ok
}

func (r *Registry) GroupExists(id domain.GroupID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.groups[id]
	return ok
}

// ChatterSnapshot is a chatter together with the groups it belonged to
// at read time.
type ChatterSnapshot struct {
	domain.Chatter
	GroupIDs []domain.GroupID
}

// GroupSnapshot is a group together with its members at read time.
type GroupSnapshot struct {
	domain.Group
	MemberIDs []domain.ChatterID
}

// Chatters returns a snapshot of all registered chatters and their
// memberships.
func (r *Registry) Chatters() []ChatterSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshots := make([]ChatterSnapshot, 0, len(r.chatters))
	for id, chatter := range r.chatters {
		snapshots = append(snapshots, ChatterSnapshot{
			Chatter:  chatter,
			GroupIDs: lo.Keys(r.chatterGroups[id]),
		})
	}
	return snapshots
}

// Groups returns a snapshot of all registered groups and their members.
func (r *Registry) Groups() []GroupSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshots := make([]GroupSnapshot, 0, len(r.groups))
	for id, group := range r.groups {
		snapshots = append(snapshots, GroupSnapshot{
			Group:     group,
			MemberIDs: lo.Keys(r.groupMembers[id]),
		})
	}
	return snapshots
}

// dropMemberLocked removes one membership edge on the group side.
// Empty sets are deleted so the maps don't accumulate dead keys.
func (r *Registry) dropMemberLocked(groupID domain.GroupID, chatterID domain.ChatterID) {
	if members, ok := r.groupMembers[groupID]; ok {
		delete(members, chatterID)
		if len(members) == 0 {
			delete(r.groupMembers, groupID)
		}
	}
}

// dropGroupLocked removes one membership edge on the chatter side.
func (r *Registry) dropGroupLocked(chatterID domain.ChatterID, groupID domain.GroupID) {
	if groups, ok := r.chatterGroups[chatterID]; ok {
		delete(groups, groupID)
		if len(groups) == 0 {
			delete(r.chatterGroups, chatterID)
		}
	}
}
