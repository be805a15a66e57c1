package usecase

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracslack/internal/domain/model"
)

func newTestWikiNotifier(n *fakeNotifier, logger *recordingLogger, cfg WikiConfig) *WikiNotifier {
	cfg.Project = testProject
	return NewWikiNotifier(
		newTestDispatcher(n, logger, model.SourceWiki),
		staticResolver{"alice": "Alice"},
		logger,
		cfg,
	)
}

func allWikiActions() WikiConfig {
	return WikiConfig{NotifyAdd: true, NotifyDelete: true, NotifyChange: true}
}

func TestWikiNotifier_Added(t *testing.T) {
	n := &fakeNotifier{}
	newTestWikiNotifier(n, &recordingLogger{}, allWikiActions()).
		WikiPageAdded(context.Background(), model.WikiPage{Name: "NewPage", Author: "alice", Comment: "first"})

	require.Len(t, n.sent, 1)
	assert.Equal(t, "#wiki", n.sent[0].Channel)
	assert.Equal(t, "_Demo_ :incoming_envelope:\n<https://trac.example.com/wiki/NewPage|NewPage> was *added* by Alice", n.sent[0].Text)
	assert.Empty(t, n.sent[0].Attachments)
}

func TestWikiNotifier_ChangedWithComment(t *testing.T) {
	n := &fakeNotifier{}
	newTestWikiNotifier(n, &recordingLogger{}, allWikiActions()).
		WikiPageChanged(context.Background(), model.WikiChange{
			Page:    model.WikiPage{Name: "Guide"},
			Version: 3,
			Time:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			Comment: "clarify install",
			Author:  "alice",
		})

	require.Len(t, n.sent, 1)
	assert.Contains(t, n.sent[0].Text, "was *changed* by Alice")
	assert.Equal(t, []model.Attachment{{Title: TitleComment, Text: "clarify install"}}, n.sent[0].Attachments)
}

func TestWikiNotifier_DeletedOmitsAuthor(t *testing.T) {
	n := &fakeNotifier{}
	newTestWikiNotifier(n, &recordingLogger{}, allWikiActions()).
		WikiPageDeleted(context.Background(), model.WikiPage{Name: "OldPage", Author: "alice", Comment: "bye"})

	require.Len(t, n.sent, 1)
	assert.Equal(t, "_Demo_ :x:\n<https://trac.example.com/wiki/OldPage|OldPage> was *deleted*", n.sent[0].Text)
	assert.NotContains(t, n.sent[0].Text, "Alice")
	assert.Empty(t, n.sent[0].Attachments)
}

func TestWikiNotifier_FlagsGateDispatch(t *testing.T) {
	n := &fakeNotifier{}
	w := newTestWikiNotifier(n, &recordingLogger{}, WikiConfig{})
	ctx := context.Background()

	w.WikiPageAdded(ctx, model.WikiPage{Name: "A"})
	w.WikiPageDeleted(ctx, model.WikiPage{Name: "A"})
	w.WikiPageChanged(ctx, model.WikiChange{Page: model.WikiPage{Name: "A"}})

	assert.Empty(t, n.sent)
}

func TestWikiNotifier_ChangeFilteredByPagePattern(t *testing.T) {
	n := &fakeNotifier{}
	cfg := allWikiActions()
	cfg.Pages = regexp.MustCompile(`^(?:Release)`)
	w := newTestWikiNotifier(n, &recordingLogger{}, cfg)
	ctx := context.Background()

	w.WikiPageChanged(ctx, model.WikiChange{Page: model.WikiPage{Name: "ReleaseNotes"}})
	w.WikiPageChanged(ctx, model.WikiChange{Page: model.WikiPage{Name: "PreReleaseNotes"}})

	require.Len(t, n.sent, 1)
	assert.Contains(t, n.sent[0].Text, "ReleaseNotes")
	assert.NotContains(t, n.sent[0].Text, "PreRelease")
}

func TestWikiNotifier_PatternDoesNotGateAddOrDelete(t *testing.T) {
	n := &fakeNotifier{}
	cfg := allWikiActions()
	cfg.Pages = regexp.MustCompile(`^(?:Release)`)
	w := newTestWikiNotifier(n, &recordingLogger{}, cfg)
	ctx := context.Background()

	w.WikiPageAdded(ctx, model.WikiPage{Name: "Other"})
	w.WikiPageDeleted(ctx, model.WikiPage{Name: "Other"})

	assert.Len(t, n.sent, 2)
}

func TestWikiNotifier_VersionDeletedIsNoop(t *testing.T) {
	n := &fakeNotifier{}
	newTestWikiNotifier(n, &recordingLogger{}, allWikiActions()).
		WikiPageVersionDeleted(context.Background(), model.WikiPage{Name: "A"})
	assert.Empty(t, n.sent)
}

func TestWikiNotifier_DeliveryFailureIsSwallowed(t *testing.T) {
	n := &fakeNotifier{err: errTransport}
	logger := &recordingLogger{}

	assert.NotPanics(t, func() {
		newTestWikiNotifier(n, logger, allWikiActions()).
			WikiPageAdded(context.Background(), model.WikiPage{Name: "A"})
	})
	assert.Equal(t, 1, logger.count("error"))
}
