package app

import (
	"context"
	"errors"
	"time"

	"tracslack/internal/domain/ports"
)

const shutdownTimeout = 5 * time.Second

// Receiver is the inbound event surface the App runs.
type Receiver interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// App manages the lifecycle of the event receiver.
type App struct {
	receiver Receiver
	logger   ports.Logger
}

// New constructs an App instance.
func New(receiver Receiver, logger ports.Logger) *App {
	return &App{
		receiver: receiver,
		logger:   logger,
	}
}

// Run serves events until ctx is cancelled or the receiver fails.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.receiver.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error(ctx, "event receiver failed", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info(context.Background(), "shutting down event receiver")
	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.receiver.Shutdown(stopCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if err := <-errCh; err != nil {
		return err
	}
	a.logger.Info(context.Background(), "event receiver stopped")
	return nil
}
