package usecase

import (
	"context"
	"fmt"
	"strings"

	"tracslack/internal/domain/model"
	"tracslack/internal/domain/ports"
)

// TicketNotifier posts ticket creations and changes.
type TicketNotifier struct {
	dispatcher *Dispatcher
	resolver   ports.AuthorResolver
	logger     ports.Logger
	project    Project
	fields     []string
}

// TicketConfig lists the ticket fields surfaced in Attributes and Changes.
type TicketConfig struct {
	Project Project
	Fields  []string
}

var _ ports.TicketListener = (*TicketNotifier)(nil)

// NewTicketNotifier constructs a TicketNotifier.
func NewTicketNotifier(dispatcher *Dispatcher, resolver ports.AuthorResolver, logger ports.Logger, cfg TicketConfig) *TicketNotifier {
	return &TicketNotifier{
		dispatcher: dispatcher,
		resolver:   resolver,
		logger:     logger,
		project:    cfg.Project,
		fields:     cfg.Fields,
	}
}

// TicketCreated notifies about a new ticket on behalf of its reporter.
func (n *TicketNotifier) TicketCreated(ctx context.Context, ticket model.Ticket) {
	guard(ctx, n.logger, "ticket_created", func() {
		note := n.prepare(ticket, model.ActionCreated)
		note.Author = n.resolver.Resolve(ctx, ticket.Field("reporter"))
		note.Description = ticket.Field("description")
		note.Attributes = n.attributes(ticket)

		text, attachments := FormatTicket(note)
		n.dispatcher.Dispatch(ctx, text, attachments)
	})
}

// TicketChanged notifies about an update. A status change is reported as the
// new status instead of "changed".
func (n *TicketNotifier) TicketChanged(ctx context.Context, change model.TicketChange) {
	guard(ctx, n.logger, "ticket_changed", func() {
		ticket := change.Ticket
		note := n.prepare(ticket, ticketAction(change))
		note.Author = n.resolver.Resolve(ctx, change.Author)
		note.Comment = change.Comment
		if change.Changed("description") {
			note.Description = ticket.Field("description")
		}
		note.Attributes = n.attributes(ticket)
		note.Changes = n.changes(change)

		text, attachments := FormatTicket(note)
		n.dispatcher.Dispatch(ctx, text, attachments)
	})
}

// TicketDeleted is a no-op; deletions are not announced.
func (n *TicketNotifier) TicketDeleted(context.Context, model.Ticket) {}

func (n *TicketNotifier) prepare(ticket model.Ticket, action string) model.TicketNotification {
	return model.TicketNotification{
		Project: n.project.Name,
		URL:     n.project.TicketURL(ticket.ID),
		ID:      fmt.Sprintf("#%d", ticket.ID),
		Type:    ticket.Field("type"),
		Summary: ticket.Field("summary"),
		Action:  action,
	}
}

func ticketAction(change model.TicketChange) string {
	old, changed := change.OldValues["status"]
	current, ok := change.Ticket.Values["status"]
	if changed && ok && current != old {
		return current
	}
	return model.ActionChanged
}

func (n *TicketNotifier) attributes(ticket model.Ticket) string {
	lines := make([]string, 0, len(n.fields))
	for _, field := range n.fields {
		if value := ticket.Field(field); value != "" {
			lines = append(lines, fmt.Sprintf("• %s: %s", field, value))
		}
	}
	return strings.Join(lines, "\n")
}

func (n *TicketNotifier) changes(change model.TicketChange) string {
	lines := make([]string, 0, len(n.fields))
	for _, field := range n.fields {
		old, ok := change.OldValues[field]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("• %s: %s → %s", field, old, change.Ticket.Field(field)))
	}
	return strings.Join(lines, "\n")
}
