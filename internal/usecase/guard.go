package usecase

import (
	"context"
	"fmt"
	"runtime/debug"

	"tracslack/internal/domain/ports"
)

// guard runs fn and logs any panic instead of propagating it, so a failed
// notification never disturbs the tracker operation that triggered it.
func guard(ctx context.Context, logger ports.Logger, event string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "failed to notify",
				"event", event,
				"error", fmt.Errorf("panic: %v", r),
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}
