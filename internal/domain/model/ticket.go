package model

// Ticket is a snapshot of a tracker ticket. Values holds every ticket field
// (summary, reporter, status, type, component, custom fields, ...).
type Ticket struct {
	ID     int
	Values map[string]string
}

// Field returns the value of a ticket field, or "" when the field is unset.
func (t Ticket) Field(name string) string {
	return t.Values[name]
}

// TicketChange describes an update applied to a ticket. OldValues holds the
// previous value of every field that changed.
type TicketChange struct {
	Ticket    Ticket
	Comment   string
	Author    string
	OldValues map[string]string
}

// Changed reports whether field is among the changed fields.
func (c TicketChange) Changed(field string) bool {
	_, ok := c.OldValues[field]
	return ok
}
