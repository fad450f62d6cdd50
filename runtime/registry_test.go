package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chatter-hub/domain"
	"chatter-hub/errors"
)

func TestRegistry_CreateChatterAndGroup(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given an empty registry
	req.Empty(registry.Chatters())
	req.Empty(registry.Groups())

	// When a chatter and a group are created
	alice := registry.CreateChatter("Alice")
	dev := registry.CreateGroup("dev")

	// Then both are registered under fresh ids
	req.True(registry.ChatterExists(alice.ID))
	req.True(registry.GroupExists(dev.ID))
	req.Len(registry.Chatters(), 1)
	req.Len(registry.Groups(), 1)
	req.Equal("Alice", registry.Chatters()[0].Name)
}

func TestRegistry_AddChatterToGroup_LinksBothSides(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	alice := registry.CreateChatter("Alice")
	dev := registry.CreateGroup("dev")

	// When the chatter joins the group twice
	req.NoError(registry.AddChatterToGroup(alice.ID, dev.ID))
	req.NoError(registry.AddChatterToGroup(alice.ID, dev.ID))

	// Then the membership appears exactly once on both sides
	groups, err := registry.GroupsOf(alice.ID)
	req.NoError(err)
	req.Len(groups, 1)
	req.Equal("dev", groups[dev.ID])

	members, err := registry.MembersOf(dev.ID)
	req.NoError(err)
	req.Len(members, 1)
	req.Equal("Alice", members[alice.ID])
}

func TestRegistry_Snapshots_CarryMemberships(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	alice := registry.CreateChatter("Alice")
	dev := registry.CreateGroup("dev")
	req.NoError(registry.AddChatterToGroup(alice.ID, dev.ID))

	chatters := registry.Chatters()
	req.Len(chatters, 1)
	req.Equal([]domain.GroupID{dev.ID}, chatters[0].GroupIDs)

	groups := registry.Groups()
	req.Len(groups, 1)
	req.Equal([]domain.ChatterID{alice.ID}, groups[0].MemberIDs)
}

func TestRegistry_AddChatterToGroup_ChecksChatterFirst(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	dev := registry.CreateGroup("dev")

	// Unknown chatter wins over unknown group
	err := registry.AddChatterToGroup("ghost", "no-such-group")
	req.ErrorIs(err, errors.ErrChatterNotFound)

	err = registry.AddChatterToGroup("ghost", dev.ID)
	req.ErrorIs(err, errors.ErrChatterNotFound)

	alice := registry.CreateChatter("Alice")
	err = registry.AddChatterToGroup(alice.ID, "no-such-group")
	req.ErrorIs(err, errors.ErrGroupNotFound)
}

func TestRegistry_RemoveChatter_CascadesOutOfGroups(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	alice := registry.CreateChatter("Alice")
	bob := registry.CreateChatter("Bob")
	dev := registry.CreateGroup("dev")
	ops := registry.CreateGroup("ops")
	req.NoError(registry.AddChatterToGroup(alice.ID, dev.ID))
	req.NoError(registry.AddChatterToGroup(alice.ID, ops.ID))
	req.NoError(registry.AddChatterToGroup(bob.ID, dev.ID))

	// When Alice is removed
	req.NoError(registry.RemoveChatter(alice.ID))

	// Then she is gone from the directory and from every member list
	req.False(registry.ChatterExists(alice.ID))
	members, err := registry.MembersOf(dev.ID)
	req.NoError(err)
	req.Len(members, 1)
	req.Contains(members, bob.ID)

	members, err = registry.MembersOf(ops.ID)
	req.NoError(err)
	req.Empty(members)

	// And removing her again reports the missing chatter
	req.ErrorIs(registry.RemoveChatter(alice.ID), errors.ErrChatterNotFound)
}

func TestRegistry_RemoveGroup_CascadesOutOfMemberships(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	alice := registry.CreateChatter("Alice")
	bob := registry.CreateChatter("Bob")
	dev := registry.CreateGroup("dev")
	ops := registry.CreateGroup("ops")
	req.NoError(registry.AddChatterToGroup(alice.ID, dev.ID))
	req.NoError(registry.AddChatterToGroup(bob.ID, dev.ID))
	req.NoError(registry.AddChatterToGroup(alice.ID, ops.ID))

	// When the dev group is removed
	req.NoError(registry.RemoveGroup(dev.ID))

	// Then no chatter references it anymore
	req.False(registry.GroupExists(dev.ID))
	groups, err := registry.GroupsOf(alice.ID)
	req.NoError(err)
	req.Len(groups, 1)
	req.Contains(groups, ops.ID)

	groups, err = registry.GroupsOf(bob.ID)
	req.NoError(err)
	req.Empty(groups)

	req.ErrorIs(registry.RemoveGroup(dev.ID), errors.ErrGroupNotFound)
}

func TestRegistry_LookupsReportMissingEntities(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	_, err := registry.GroupsOf("ghost")
	req.ErrorIs(err, errors.ErrChatterNotFound)

	_, err = registry.MembersOf("no-such-group")
	req.ErrorIs(err, errors.ErrGroupNotFound)

	_, ok := registry.MembershipOf("ghost")
	req.False(ok)
}

func TestRegistry_MembershipOf_ReturnsDefensiveCopy(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	alice := registry.CreateChatter("Alice")
	dev := registry.CreateGroup("dev")
	req.NoError(registry.AddChatterToGroup(alice.ID, dev.ID))

	snapshot, ok := registry.MembershipOf(alice.ID)
	req.True(ok)
	req.Len(snapshot, 1)

	// Mutating the snapshot must not touch the registry
	delete(snapshot, dev.ID)
	snapshot[domain.GroupID("injected")] = struct{}{}

	fresh, ok := registry.MembershipOf(alice.ID)
	req.True(ok)
	req.Len(fresh, 1)
	req.Contains(fresh, dev.ID)
}
