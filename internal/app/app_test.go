package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type fakeReceiver struct {
	listenErr error
	stop      chan struct{}
	shutdowns int
}

func (f *fakeReceiver) ListenAndServe() error {
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stop
	return nil
}

func (f *fakeReceiver) Shutdown(context.Context) error {
	f.shutdowns++
	close(f.stop)
	return nil
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	r := &fakeReceiver{stop: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- New(r, nopLogger{}).Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.Equal(t, 1, r.shutdowns)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestApp_RunReturnsListenError(t *testing.T) {
	listenErr := errors.New("listen on :8080: address already in use")
	r := &fakeReceiver{listenErr: listenErr, stop: make(chan struct{})}

	err := New(r, nopLogger{}).Run(context.Background())
	assert.ErrorIs(t, err, listenErr)
	assert.Zero(t, r.shutdowns)
}
