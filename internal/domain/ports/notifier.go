package ports

import (
	"context"

	"tracslack/internal/domain/model"
)

// Notifier sends messages to downstream chat channels (e.g. a Slack incoming webhook).
type Notifier interface {
	Send(ctx context.Context, msg model.Message) error
}
