package usecase

import (
	"context"
	"regexp"

	"tracslack/internal/domain/model"
	"tracslack/internal/domain/ports"
)

// WikiNotifier posts wiki page additions, changes and deletions.
type WikiNotifier struct {
	dispatcher   *Dispatcher
	resolver     ports.AuthorResolver
	logger       ports.Logger
	project      Project
	notifyAdd    bool
	notifyDelete bool
	notifyChange bool
	pages        *regexp.Regexp
}

// WikiConfig gates each wiki action. Pages restricts change notifications to
// page names matching at their start; nil matches every page.
type WikiConfig struct {
	Project      Project
	NotifyAdd    bool
	NotifyDelete bool
	NotifyChange bool
	Pages        *regexp.Regexp
}

var _ ports.WikiListener = (*WikiNotifier)(nil)

// NewWikiNotifier constructs a WikiNotifier.
func NewWikiNotifier(dispatcher *Dispatcher, resolver ports.AuthorResolver, logger ports.Logger, cfg WikiConfig) *WikiNotifier {
	return &WikiNotifier{
		dispatcher:   dispatcher,
		resolver:     resolver,
		logger:       logger,
		project:      cfg.Project,
		notifyAdd:    cfg.NotifyAdd,
		notifyDelete: cfg.NotifyDelete,
		notifyChange: cfg.NotifyChange,
		pages:        cfg.Pages,
	}
}

// WikiPageAdded notifies about a new page.
func (n *WikiNotifier) WikiPageAdded(ctx context.Context, page model.WikiPage) {
	if !n.notifyAdd {
		return
	}
	guard(ctx, n.logger, "wiki_page_added", func() {
		note := n.prepare(page.Name, model.ActionAdded)
		note.Author = n.resolver.Resolve(ctx, page.Author)
		note.Comment = page.Comment
		n.send(ctx, note)
	})
}

// WikiPageChanged notifies about a new version of a page whose name matches
// the configured pattern.
func (n *WikiNotifier) WikiPageChanged(ctx context.Context, change model.WikiChange) {
	if !n.notifyChange || !n.matches(change.Page.Name) {
		return
	}
	guard(ctx, n.logger, "wiki_page_changed", func() {
		note := n.prepare(change.Page.Name, model.ActionChanged)
		note.Author = n.resolver.Resolve(ctx, change.Author)
		note.Comment = change.Comment
		n.send(ctx, note)
	})
}

// WikiPageDeleted notifies about a removed page. The author is usually
// unknown at this point and is never shown.
func (n *WikiNotifier) WikiPageDeleted(ctx context.Context, page model.WikiPage) {
	if !n.notifyDelete {
		return
	}
	guard(ctx, n.logger, "wiki_page_deleted", func() {
		n.send(ctx, n.prepare(page.Name, model.ActionDeleted))
	})
}

// WikiPageVersionDeleted is a no-op.
func (n *WikiNotifier) WikiPageVersionDeleted(context.Context, model.WikiPage) {}

func (n *WikiNotifier) matches(name string) bool {
	return n.pages == nil || n.pages.MatchString(name)
}

func (n *WikiNotifier) prepare(name, action string) model.WikiNotification {
	return model.WikiNotification{
		Project:  n.project.Name,
		PageName: name,
		URL:      n.project.WikiURL(name),
		Action:   action,
	}
}

func (n *WikiNotifier) send(ctx context.Context, note model.WikiNotification) {
	text, attachments := FormatWiki(note)
	n.dispatcher.Dispatch(ctx, text, attachments)
}
