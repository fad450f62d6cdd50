// Package domain contains core concepts of the group messaging system.
// This file defines Message records and related rules.
// Messages are immutable once published.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxBodyLength bounds the payload of a single message.
const MaxBodyLength = 2048

// Message is the record published on the broadcast medium. Every reader
// sees every message; recipients filter by group membership and sender.
type Message struct {
	ID       uuid.UUID // unique identifier, used for duplicate suppression
	SenderID ChatterID
	GroupID  GroupID
	Body     string
	At       time.Time
}

// NewMessage stamps a message with a fresh identifier and publish time.
func NewMessage(sender ChatterID, group GroupID, body string) Message {
	return Message{
		ID:       uuid.New(),
		SenderID: sender,
		GroupID:  group,
		Body:     body,
		At:       time.Now().UTC(),
	}
}
