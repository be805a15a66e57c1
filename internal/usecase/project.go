package usecase

import (
	"net/url"
	"strconv"
	"strings"
)

// Project describes the tracker instance events originate from.
type Project struct {
	Name    string
	BaseURL string
}

// TicketURL returns the absolute link to a ticket.
func (p Project) TicketURL(id int) string {
	return p.href("ticket", strconv.Itoa(id))
}

// WikiURL returns the absolute link to a wiki page. Hierarchical page names
// keep their slashes.
func (p Project) WikiURL(page string) string {
	segments := strings.Split(page, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return p.href("wiki", strings.Join(segments, "/"))
}

// ChangesetURL returns the absolute link to a changeset.
func (p Project) ChangesetURL(rev string) string {
	return p.href("changeset", url.PathEscape(rev))
}

func (p Project) href(parts ...string) string {
	return strings.TrimRight(p.BaseURL, "/") + "/" + strings.Join(parts, "/")
}
