package ports

import "context"

// AuthorResolver maps a tracker author identifier to its chat display form.
type AuthorResolver interface {
	Resolve(ctx context.Context, author string) string
}
