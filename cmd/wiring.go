package cmd

import (
	"context"
	"fmt"

	"trending-ingest/domain/repository"
	youtubeclient "trending-ingest/infrastructure/clients/youtube"
	"trending-ingest/infrastructure/configuration"
	"trending-ingest/infrastructure/logger"
	"trending-ingest/infrastructure/pubsub"
	"trending-ingest/infrastructure/servicebus"
	"trending-ingest/infrastructure/storage"
	"trending-ingest/usecase"

	"github.com/sirupsen/logrus"
)

// newTrendingUsecase builds the pipeline from c. The returned cleanup must be
// called once the usecase is no longer needed.
func newTrendingUsecase(ctx context.Context, c *configuration.Config) (*usecase.TrendingUsecase, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if err := c.Validate(); err != nil {
		return nil, cleanup, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.GetLogger().WithFields(logrus.Fields{
		"hasAPIKey":   c.YouTube.APIKey != "",
		"hasOAuth":    c.YouTube.HasOAuth(),
		"storage":     c.Storage.Provider,
		"bucket":      c.Storage.Bucket,
		"notify":      c.Notify.Provider,
		"maxResults":  c.Trending.MaxResults,
		"archiveRoot": c.Storage.Prefix,
	}).Info("Loaded trending configuration state")

	source, err := youtubeclient.NewYouTubeClient(ctx, &youtubeclient.Config{
		APIKey:       c.YouTube.APIKey,
		ClientID:     c.YouTube.ClientID,
		ClientSecret: c.YouTube.ClientSecret,
		AccessToken:  c.YouTube.AccessToken,
		RefreshToken: c.YouTube.RefreshToken,
		Endpoint:     c.YouTube.Endpoint,
		Timeout:      c.YouTube.RequestTimeout,
	})
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to initialize youtube client: %w", err)
	}

	store, err := storage.NewArchiveStore(ctx, c.Storage)
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to initialize archive store: %w", err)
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		closers = append(closers, func() { _ = closer.Close() })
	}

	uc := usecase.NewTrendingUsecase(source, store, usecase.TrendingOptions{
		Query:          c.Trending.Query,
		MaxResults:     c.Trending.MaxResults,
		Bucket:         c.Storage.Bucket,
		Prefix:         c.Storage.Prefix,
		Source:         c.Trending.Source,
		StorageTimeout: c.Storage.Timeout,
		NotifyTimeout:  c.Notify.Timeout,
	})

	notifier, closeNotifier := newNotifier(ctx, c.Notify)
	if notifier != nil {
		uc.WithNotifier(notifier)
		closers = append(closers, closeNotifier)
	}
	return uc, cleanup, nil
}

// newNotifier returns nil when notifications are disabled or the client
// cannot be created; the run then archives without notifying.
func newNotifier(ctx context.Context, n configuration.Notify) (repository.IArchiveNotifier, func()) {
	switch n.Provider {
	case configuration.NotifyPubsub:
		client, err := pubsub.NewPubSub(ctx, n.Pubsub.ProjectID)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("PubSub not available - continuing without archive notifications")
			return nil, nil
		}
		return pubsub.NewArchivePubSub(client, n.Pubsub.Topic), func() { _ = client.Close() }
	case configuration.NotifyServiceBus:
		client, err := servicebus.NewServiceBus(n.ServiceBus.Namespace)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - continuing without archive notifications")
			return nil, nil
		}
		return servicebus.NewArchiveServiceBus(client, n.ServiceBus.Queue), func() { _ = client.Close(context.Background()) }
	default:
		return nil, nil
	}
}
