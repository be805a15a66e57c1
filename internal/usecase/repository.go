package usecase

import (
	"context"

	"tracslack/internal/domain/model"
	"tracslack/internal/domain/ports"
)

const changesetDateLayout = "2006-01-02 15:04:05-07:00"

// RepositoryNotifier posts changesets added to or modified in a repository.
type RepositoryNotifier struct {
	dispatcher   *Dispatcher
	resolver     ports.AuthorResolver
	logger       ports.Logger
	project      Project
	notifyAdd    bool
	notifyModify bool
}

// RepositoryConfig gates each changeset action.
type RepositoryConfig struct {
	Project      Project
	NotifyAdd    bool
	NotifyModify bool
}

var _ ports.RepositoryListener = (*RepositoryNotifier)(nil)

// NewRepositoryNotifier constructs a RepositoryNotifier.
func NewRepositoryNotifier(dispatcher *Dispatcher, resolver ports.AuthorResolver, logger ports.Logger, cfg RepositoryConfig) *RepositoryNotifier {
	return &RepositoryNotifier{
		dispatcher:   dispatcher,
		resolver:     resolver,
		logger:       logger,
		project:      cfg.Project,
		notifyAdd:    cfg.NotifyAdd,
		notifyModify: cfg.NotifyModify,
	}
}

// ChangesetAdded notifies about a new changeset.
func (n *RepositoryNotifier) ChangesetAdded(ctx context.Context, repo model.Repository, cs model.Changeset) {
	if !n.notifyAdd {
		return
	}
	guard(ctx, n.logger, "changeset_added", func() {
		n.notify(ctx, repo, cs, model.ActionAdded)
	})
}

// ChangesetModified notifies about a changeset whose metadata was edited.
// The previous metadata is accepted for interface completeness and unused.
func (n *RepositoryNotifier) ChangesetModified(ctx context.Context, repo model.Repository, cs model.Changeset, _ *model.Changeset) {
	if !n.notifyModify {
		return
	}
	guard(ctx, n.logger, "changeset_modified", func() {
		n.notify(ctx, repo, cs, model.ActionModified)
	})
}

func (n *RepositoryNotifier) notify(ctx context.Context, repo model.Repository, cs model.Changeset, action string) {
	note := model.ChangesetNotification{
		Project:  n.project.Name,
		Rev:      cs.Rev,
		RevURL:   n.project.ChangesetURL(cs.Rev),
		Action:   action,
		Author:   n.resolver.Resolve(ctx, cs.Author),
		Message:  cs.Message,
		Date:     formatChangesetDate(cs),
		RepoName: repo.RepoName,
		Repos:    cs.Repos,
	}
	if note.Repos == "" {
		note.Repos = repo.Name
	}

	text, attachments := FormatChangeset(note)
	n.dispatcher.Dispatch(ctx, text, attachments)
}

func formatChangesetDate(cs model.Changeset) string {
	if cs.Date.IsZero() {
		return ""
	}
	return cs.Date.Format(changesetDateLayout)
}
