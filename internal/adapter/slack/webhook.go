package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tracslack/internal/domain/model"
	"tracslack/internal/domain/ports"
)

const userAgent = "tracslack/1"

// Webhook is a Slack incoming-webhook notifier.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Notifier = (*Webhook)(nil)

type payload struct {
	Channel     string       `json:"channel"`
	Username    string       `json:"username"`
	Text        string       `json:"text"`
	Attachments []attachment `json:"attachments"`
}

type attachment struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// NewWebhook creates a Slack webhook notifier. A zero timeout leaves the
// transport default in place. Returns an error if the URL is invalid.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) (*Webhook, error) {
	if webhookURL == "" {
		return nil, fmt.Errorf("webhook URL is required")
	}
	u, err := url.Parse(webhookURL)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("webhook URL must use http or https scheme, got %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("webhook URL must include a host")
	}

	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Send posts the message as the form field "payload", the encoding Slack
// incoming webhooks accept alongside raw JSON.
func (w *Webhook) Send(ctx context.Context, msg model.Message) error {
	start := time.Now()

	body, err := encodePayload(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		observeSend(statusError, start)
		return fmt.Errorf("perform request to %s: %w", RedactURL(w.webhookURL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		observeSend(statusRejected, start)
		return fmt.Errorf("slack webhook returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	observeSend(statusSuccess, start)
	if w.logger != nil {
		w.logger.Info(ctx, "notification sent to slack", "url", RedactURL(w.webhookURL), "channel", msg.Channel)
	}
	return nil
}

func encodePayload(msg model.Message) (string, error) {
	p := payload{
		Channel:     msg.Channel,
		Username:    msg.Username,
		Text:        msg.Text,
		Attachments: make([]attachment, 0, len(msg.Attachments)),
	}
	for _, a := range msg.Attachments {
		p.Attachments = append(p.Attachments, attachment{Title: a.Title, Text: a.Text})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	data := strings.TrimSuffix(buf.String(), "\n")
	return url.Values{"payload": {data}}.Encode(), nil
}

// RedactURL hides credentials embedded in a webhook URL before logging:
// userinfo passwords, query values and every path segment after the first
// (Slack webhooks carry their secret in the path).
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid-url>"
	}
	if u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
		}
	}
	if u.RawQuery != "" {
		q := u.Query()
		for key := range q {
			q.Set(key, "REDACTED")
		}
		u.RawQuery = q.Encode()
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) > 1 {
		u.Path = "/" + segments[0] + "/REDACTED"
		u.RawPath = ""
	}
	return u.String()
}
