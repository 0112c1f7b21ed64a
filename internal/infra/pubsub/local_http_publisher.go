package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"workhours/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/workhours-session-events"
	localPublishTimeout = 10 * time.Second
)

// localHTTPPublisher posts events straight to the worker in the envelope Cloud Pub/Sub
// uses for push subscriptions, so the worker runs the same code path in development.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage is the push subscription envelope.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher that pushes to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
	}
}

// PublishSessionEvent delivers event synchronously. A non-2xx answer from the worker is an
// error, matching a push subscription that would redeliver.
func (p *localHTTPPublisher) PublishSessionEvent(ctx context.Context, event *service.SessionEvent) error {
	msg, err := encodeSessionEvent(event)
	if err != nil {
		return err
	}

	var envelope PubSubPushMessage
	envelope.Subscription = localSubscription
	envelope.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	envelope.Message.Attributes = msg.attributes
	envelope.Message.MessageID = msg.id
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.Wrap(err, "encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s", msg.id)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Session event pushed", msg.logAttrs()...)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
