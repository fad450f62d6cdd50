// Package domain contains core concepts of the group messaging system.
// This file defines Chatter entities and related invariants.
// No runtime, storage, or UI logic should be added here.
package domain

import (
	"github.com/google/uuid"
)

// MaxNameLength bounds chatter and group display names.
const MaxNameLength = 64

type ChatterID string

// Chatter is a registered participant. It can publish to groups it belongs
// to and receives messages for those groups in its inbox.
type Chatter struct {
	ID   ChatterID
	Name string
}

// NewChatter mints a chatter with a fresh identifier.
func NewChatter(name string) Chatter {
	return Chatter{
		ID:   ChatterID(uuid.NewString()),
		Name: name,
	}
}
