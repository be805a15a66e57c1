package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"tracslack/internal/domain/model"
	"tracslack/internal/domain/ports"
)

// Dispatcher delivers formatted messages to one chat channel. Delivery is
// best-effort: failures are logged and reported as false, never retried.
type Dispatcher struct {
	notifier ports.Notifier
	logger   ports.Logger
	source   model.Source
	channel  string
	username string
}

// DispatcherConfig names the channel and bot identity messages are posted as.
type DispatcherConfig struct {
	Source   model.Source
	Channel  string
	Username string
}

// NewDispatcher constructs a Dispatcher.
func NewDispatcher(notifier ports.Notifier, logger ports.Logger, cfg DispatcherConfig) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		logger:   logger,
		source:   cfg.Source,
		channel:  cfg.Channel,
		username: cfg.Username,
	}
}

// Dispatch sends text and attachments and reports whether delivery succeeded.
func (d *Dispatcher) Dispatch(ctx context.Context, text string, attachments []model.Attachment) bool {
	start := time.Now()
	deliveryID := uuid.NewString()

	msg := model.Message{
		Channel:     d.channel,
		Username:    d.username,
		Text:        strings.TrimSpace(strings.ToValidUTF8(text, "\uFFFD")),
		Attachments: attachments,
	}

	if err := d.notifier.Send(ctx, msg); err != nil {
		d.logger.Error(ctx, "failed to post notification",
			"delivery_id", deliveryID,
			"source", d.source,
			"channel", d.channel,
			"error", err)
		return false
	}

	d.logger.Info(ctx, "notification posted",
		"delivery_id", deliveryID,
		"source", d.source,
		"channel", d.channel,
		"attachments", len(attachments),
		"duration", time.Since(start))
	return true
}
