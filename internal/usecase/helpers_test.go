package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tracslack/internal/domain/model"
)

type logEntry struct {
	level string
	msg   string
	args  []any
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) Info(_ context.Context, msg string, args ...any) {
	l.record("info", msg, args)
}

func (l *recordingLogger) Warn(_ context.Context, msg string, args ...any) {
	l.record("warn", msg, args)
}

func (l *recordingLogger) Error(_ context.Context, msg string, args ...any) {
	l.record("error", msg, args)
}

func (l *recordingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *recordingLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

type fakeNotifier struct {
	sent  []model.Message
	err   error
	panic bool
}

func (f *fakeNotifier) Send(_ context.Context, msg model.Message) error {
	if f.panic {
		panic("boom")
	}
	f.sent = append(f.sent, msg)
	return f.err
}

var errTransport = errors.New("dial tcp: connection refused")

// staticResolver resolves every author through a fixed table.
type staticResolver map[string]string

func (r staticResolver) Resolve(_ context.Context, author string) string {
	author = NormalizeAuthor(author)
	if v, ok := r[author]; ok {
		return v
	}
	return author
}

var testProject = Project{Name: "Demo", BaseURL: "https://trac.example.com/"}

func newTestDispatcher(n *fakeNotifier, logger *recordingLogger, source model.Source) *Dispatcher {
	return NewDispatcher(n, logger, DispatcherConfig{
		Source:   source,
		Channel:  fmt.Sprintf("#%s", source),
		Username: "Trac-Bot",
	})
}
