package ports

import (
	"context"

	"tracslack/internal/domain/model"
)

// TicketListener receives ticket lifecycle events from the tracker.
type TicketListener interface {
	TicketCreated(ctx context.Context, ticket model.Ticket)
	TicketChanged(ctx context.Context, change model.TicketChange)
	TicketDeleted(ctx context.Context, ticket model.Ticket)
}

// WikiListener receives wiki page events from the tracker.
type WikiListener interface {
	WikiPageAdded(ctx context.Context, page model.WikiPage)
	WikiPageChanged(ctx context.Context, change model.WikiChange)
	WikiPageDeleted(ctx context.Context, page model.WikiPage)
	WikiPageVersionDeleted(ctx context.Context, page model.WikiPage)
}

// RepositoryListener receives changeset events from the tracker.
type RepositoryListener interface {
	ChangesetAdded(ctx context.Context, repo model.Repository, cs model.Changeset)
	ChangesetModified(ctx context.Context, repo model.Repository, cs model.Changeset, old *model.Changeset)
}
