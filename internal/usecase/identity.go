package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"tracslack/internal/domain/ports"
)

var emailSuffix = regexp.MustCompile(` <.*`)

// IdentityResolver maps tracker authors to chat display strings using an
// author map of the form "user:Name,@HANDLE,email;user2:...".
type IdentityResolver struct {
	entries []identityEntry
	logger  ports.Logger
}

type identityEntry struct {
	raw     string
	user    string
	name    string
	handle  string
	email   string
	skip    bool
	invalid bool
}

var _ ports.AuthorResolver = (*IdentityResolver)(nil)

// NewIdentityResolver parses authMap once. Malformed entries are kept and
// reported when a lookup reaches them.
func NewIdentityResolver(authMap string, logger ports.Logger) *IdentityResolver {
	return &IdentityResolver{
		entries: parseAuthMap(authMap),
		logger:  logger,
	}
}

func parseAuthMap(authMap string) []identityEntry {
	authMap = strings.TrimSpace(authMap)
	if authMap == "" {
		return nil
	}

	var entries []identityEntry
	for _, raw := range strings.Split(authMap, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		parts := strings.Split(raw, ":")
		if len(parts) != 2 {
			entries = append(entries, identityEntry{raw: raw, invalid: true})
			continue
		}

		entry := identityEntry{raw: raw, user: strings.TrimSpace(parts[0])}
		value := strings.TrimSpace(parts[1])
		if entry.user == "" || value == "" {
			entry.skip = true
			entries = append(entries, entry)
			continue
		}

		fields := strings.Split(value, ",")
		entry.name = fieldAt(fields, 0)
		entry.handle = fieldAt(fields, 1)
		entry.email = fieldAt(fields, 2)
		entries = append(entries, entry)
	}
	return entries
}

func fieldAt(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

// Resolve returns the chat form of author: a mention when a handle is mapped,
// otherwise the mapped name (or the author itself), wrapped in a mailto link
// when an email is mapped.
func (r *IdentityResolver) Resolve(ctx context.Context, author string) string {
	author = NormalizeAuthor(author)
	if author == "" || len(r.entries) == 0 {
		return author
	}

	for _, entry := range r.entries {
		if entry.invalid {
			if r.logger != nil {
				r.logger.Warn(ctx, "failed to map author",
					"author", author,
					"error", fmt.Errorf("malformed authmap entry %q", entry.raw))
			}
			return author
		}
		if entry.skip || entry.user != author {
			continue
		}
		return entry.display(author)
	}
	return author
}

func (e identityEntry) display(author string) string {
	if e.handle != "" {
		return "<@" + strings.TrimPrefix(e.handle, "@") + ">"
	}

	base := author
	if e.name != "" {
		base = e.name
	}
	if e.email != "" {
		return fmt.Sprintf("<mailto:%s|%s>", e.email, base)
	}
	return base
}

// NormalizeAuthor strips a trailing " <email>" suffix from a tracker author.
func NormalizeAuthor(author string) string {
	return emailSuffix.ReplaceAllString(author, "")
}
