package domain

import (
	"github.com/google/uuid"
)

type GroupID string

// Group is a named distribution scope. Messages are addressed to a group
// and fan out to its current members.
type Group struct {
	ID   GroupID
	Name string
}

func NewGroup(name string) Group {
	return Group{
		ID:   GroupID(uuid.NewString()),
		Name: name,
	}
}
