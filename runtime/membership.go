package runtime

import (
	"chatter-hub/domain"
	"chatter-hub/errors"
)

// AddChatterToGroup links both sides of the membership relation. The
// chatter is checked before the group because callers report a missing
// chatter with a dedicated status. Adding an existing member is a no-op:
// memberships are sets.
func (r *Registry) AddChatterToGroup(chatterID domain.ChatterID, groupID domain.GroupID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.chatters[chatterID]; !ok {
		return errors.ErrChatterNotFound
	}
	if _, ok := r.groups[groupID]; !ok {
		return errors.ErrGroupNotFound
	}
	if _, ok := r.chatterGroups[chatterID]; !ok {
		r.chatterGroups[chatterID] = make(Set)
	}
	r.chatterGroups[chatterID][groupID] = struct{}{}
	if _, ok := r.groupMembers[groupID]; !ok {
		r.groupMembers[groupID] = make(MemberSet)
	}
	r.groupMembers[groupID][chatterID] = struct{}{}
	return nil
}

// GroupsOf returns {group id: group name} for one chatter.
func (r *Registry) GroupsOf(chatterID domain.ChatterID) (map[domain.GroupID]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.chatters[chatterID]; !ok {
		return nil, errors.ErrChatterNotFound
	}
	res := make(map[domain.GroupID]string, len(r.chatterGroups[chatterID]))
	for groupID := range r.chatterGroups[chatterID] {
		res[groupID] = r.groups[groupID].Name
	}
	return res, nil
}

// MembersOf returns {chatter id: chatter name} for one group.
func (r *Registry) MembersOf(groupID domain.GroupID) (map[domain.ChatterID]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.groups[groupID]; !ok {
		return nil, errors.ErrGroupNotFound
	}
	res := make(map[domain.ChatterID]string, len(r.groupMembers[groupID]))
	for chatterID := range r.groupMembers[groupID] {
		res[chatterID] = r.chatters[chatterID].Name
	}
	return res, nil
}

// MembershipOf returns a defensive copy of the groups a chatter belongs to,
// or false if the chatter is gone. Delivery filtering works against this
// snapshot, one lock acquisition per poll cycle.
func (r *Registry) MembershipOf(chatterID domain.ChatterID) (Set, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.chatters[chatterID]; !ok {
		return nil, false
	}
	snapshot := make(Set, len(r.chatterGroups[chatterID]))
	for groupID := range r.chatterGroups[chatterID] {
		snapshot[groupID] = struct{}{}
	}
	return snapshot, true
}
