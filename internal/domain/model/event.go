package model

// Source identifies which part of the tracker raised an event.
type Source string

const (
	SourceTicket     Source = "ticket"
	SourceWiki       Source = "wiki"
	SourceRepository Source = "repository"
)

// Actions reported in notifications. Ticket status changes use the new
// status value instead, e.g. "closed" or "reopened".
const (
	ActionCreated  = "created"
	ActionChanged  = "changed"
	ActionDeleted  = "deleted"
	ActionAdded    = "added"
	ActionModified = "modified"
	ActionClosed   = "closed"
)
