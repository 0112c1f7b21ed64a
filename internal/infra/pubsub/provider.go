package pubsub

import (
	"context"
	"log/slog"

	"workhours/config"
	"workhours/internal/domain/constants"
	"workhours/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events. Clock transitions never depend on delivery, so running
// without a broker is a supported setup.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishSessionEvent(ctx context.Context, event *service.SessionEvent) error {
	p.logger.DebugContext(ctx, "Session event not published, Pub/Sub disabled",
		slog.String("type", event.Type),
		slog.String("session_id", event.SessionID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher named by pubsub.provider and closes it on stop.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Pub/Sub not configured, session events are dropped")

		return &noopPublisher{logger: params.Logger}, nil
	}

	if err := checkPubSubConfig(cfg); err != nil {
		return nil, err
	}

	publisher, err := openPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("Closing session event publisher", slog.String("provider", cfg.Provider))

		return publisher.Close()
	}))

	return publisher, nil
}

func checkPubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("local endpoint is required for local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("topic ID is required for google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("Pushing session events to local worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
