package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewChatter_MintsUniqueIDs(t *testing.T) {
	alice := NewChatter("Alice")
	bob := NewChatter("Bob")

	require.Equal(t, "Alice", alice.Name)
	require.Equal(t, "Bob", bob.Name)
	require.NotEmpty(t, alice.ID)
	require.NotEqual(t, alice.ID, bob.ID)
}

func TestNewGroup_MintsUniqueIDs(t *testing.T) {
	dev := NewGroup("dev")
	ops := NewGroup("ops")

	require.Equal(t, "dev", dev.Name)
	require.NotEmpty(t, dev.ID)
	require.NotEqual(t, dev.ID, ops.ID)
}
