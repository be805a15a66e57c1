package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracslack/internal/adapter/slack"
	"tracslack/internal/di"
	"tracslack/internal/domain/model"
	"tracslack/internal/usecase"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

// useTestListeners points the CLI at a webhook test server and returns the
// payloads it receives.
func useTestListeners(t *testing.T, modify bool) *[]string {
	t.Helper()

	var (
		mu       sync.Mutex
		payloads []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		mu.Lock()
		payloads = append(payloads, r.PostForm.Get("payload"))
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	webhook, err := slack.NewWebhook(srv.URL, time.Second, nopLogger{})
	require.NoError(t, err)

	logger := nopLogger{}
	resolver := usecase.NewIdentityResolver("alice:Alice,@A1,", logger)
	dispatcher := usecase.NewDispatcher(webhook, logger, usecase.DispatcherConfig{
		Source: model.SourceRepository, Channel: "#Trac", Username: "Trac-Bot",
	})
	listeners := &di.Listeners{
		Repository: usecase.NewRepositoryNotifier(dispatcher, resolver, logger, usecase.RepositoryConfig{
			Project:      usecase.Project{Name: "Demo", BaseURL: "https://trac.example.com"},
			NotifyAdd:    true,
			NotifyModify: modify,
		}),
		Resolver: resolver,
		Logger:   logger,
	}

	prev := loadListeners
	loadListeners = func() (*di.Listeners, error) { return listeners, nil }
	t.Cleanup(func() { loadListeners = prev })

	return &payloads
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestChangesetAdded_PostsNotification(t *testing.T) {
	payloads := useTestListeners(t, false)

	_, err := run(t, "Fix #42\n\nLonger body.\n",
		"changeset", "added", "--rev", "1234", "--author", "alice", "--message", "-",
		"--reponame", "core", "--repo-name", "repos:core", "--date", "2024-05-01T10:00:00Z")
	require.NoError(t, err)

	require.Len(t, *payloads, 1)
	body := (*payloads)[0]
	assert.Contains(t, body, `<https://trac.example.com/changeset/1234|r1234> was *added* by <@A1>`)
	assert.Contains(t, body, `"text":"Fix #42\n\nLonger body."`)
	assert.Contains(t, body, `"text":"2024-05-01 10:00:00+00:00"`)
	assert.Contains(t, body, `"text":"repos:core"`)
}

func TestChangesetModified_DisabledByDefault(t *testing.T) {
	payloads := useTestListeners(t, false)

	_, err := run(t, "", "changeset", "modified", "--rev", "1234")
	require.NoError(t, err)
	assert.Empty(t, *payloads)
}

func TestChangesetModified_Enabled(t *testing.T) {
	payloads := useTestListeners(t, true)

	_, err := run(t, "", "changeset", "modified", "--rev", "1234", "--author", "bob")
	require.NoError(t, err)
	require.Len(t, *payloads, 1)
	assert.Contains(t, (*payloads)[0], "was *modified* by bob")
}

func TestChangeset_RequiresRev(t *testing.T) {
	useTestListeners(t, false)

	_, err := run(t, "", "changeset", "added")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rev")
}

func TestChangeset_InvalidDate(t *testing.T) {
	payloads := useTestListeners(t, false)

	_, err := run(t, "", "changeset", "added", "--rev", "1", "--date", "yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --date")
	assert.Empty(t, *payloads)
}

func TestResolve_PrintsMappedAuthors(t *testing.T) {
	useTestListeners(t, false)

	out, err := run(t, "", "resolve", "alice <alice@example.com>", "bob")
	require.NoError(t, err)
	assert.Equal(t, "alice <alice@example.com>\t<@A1>\nbob\tbob\n", out)
}

func TestChangesetFlags_BuildDefaultsDateToNow(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	f := changesetFlags{rev: "9", name: "repos:core", repoName: "core"}

	repo, cs, err := f.build(strings.NewReader(""), func() time.Time { return now })
	require.NoError(t, err)
	assert.Equal(t, model.Repository{Name: "repos:core", RepoName: "core"}, repo)
	assert.Equal(t, now, cs.Date)
	assert.Equal(t, "9", cs.Rev)
}
