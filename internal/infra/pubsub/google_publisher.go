package pubsub

import (
	"context"
	"log/slog"

	"workhours/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher sends session events to a Cloud Pub/Sub topic whose push
// subscription targets the worker.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "session event topic %s", topic)
	}

	logger.Info("Publishing session events to Google Pub/Sub", slog.String("topic", topic))

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishSessionEvent blocks until the server acknowledges the message or ctx ends.
func (p *googlePubSubPublisher) PublishSessionEvent(ctx context.Context, event *service.SessionEvent) error {
	msg, err := encodeSessionEvent(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       msg.data,
		Attributes: msg.attributes,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s to %s", msg.id, p.topic)
	}

	p.logger.DebugContext(ctx, "Session event published",
		append(msg.logAttrs(), "server_id", serverID)...)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
