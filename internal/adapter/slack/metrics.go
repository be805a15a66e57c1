package slack

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess  = "success"
	statusRejected = "rejected"
	statusError    = "error"
)

var (
	webhookSendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracslack_webhook_send_total",
			Help: "Total Slack webhook send attempts by status.",
		},
		[]string{"status"},
	)
	webhookSendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracslack_webhook_send_duration_seconds",
			Help:    "Duration of Slack webhook HTTP requests.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"status"},
	)
)

func observeSend(status string, start time.Time) {
	webhookSendTotal.WithLabelValues(status).Inc()
	webhookSendDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
}
