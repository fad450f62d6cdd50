package domain

// InboxEntry is one delivered message as seen by a recipient. Entries are
// append-only: removing a chatter from a group, or removing the sender,
// never retracts what was already delivered.
type InboxEntry struct {
	GroupID  GroupID
	SenderID ChatterID
	Body     string
}

// EntryFromMessage projects a published message onto a recipient inbox.
func EntryFromMessage(msg Message) InboxEntry {
	return InboxEntry{
		GroupID:  msg.GroupID,
		SenderID: msg.SenderID,
		Body:     msg.Body,
	}
}
