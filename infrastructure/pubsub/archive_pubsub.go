package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"trending-ingest/domain/model"
	"trending-ingest/domain/repository"
	"trending-ingest/infrastructure/logger"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// NewPubSub creates a Pub/Sub client for projectID.
func NewPubSub(ctx context.Context, projectID string, opts ...option.ClientOption) (*pubsub.Client, error) {
	if projectID == "" {
		return nil, errors.New("pubsub project id is required")
	}
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	return client, nil
}

type ArchivePubSub struct {
	PubSubClient *pubsub.Client
	TopicName    string
}

func NewArchivePubSub(pubSubClient *pubsub.Client, topicName string) repository.IArchiveNotifier {
	return &ArchivePubSub{
		PubSubClient: pubSubClient,
		TopicName:    topicName,
	}
}

// Notify publishes event as JSON and waits for the server id.
func (p *ArchivePubSub) Notify(ctx context.Context, event *model.ArchiveEvent) error {
	if p.PubSubClient == nil {
		return errors.New("pubsub client not initialized")
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode archive event: %w", err)
	}

	topic := p.PubSubClient.Topic(p.TopicName)
	defer topic.Stop()

	// Create the topic if it doesn't exist.
	exists, err := topic.Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check topic %s: %w", p.TopicName, err)
	}
	if !exists {
		logger.GetLogger().WithField("topic", p.TopicName).Info("Topic doesn't exist - creating it")
		if _, err = p.PubSubClient.CreateTopic(ctx, p.TopicName); err != nil {
			return fmt.Errorf("failed to create topic %s: %w", p.TopicName, err)
		}
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"bucket": event.Bucket,
			"key":    event.Key,
			"runId":  event.RunID,
		},
	}).Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to publish archive event: %w", err)
	}

	logger.GetLogger().WithField("server ID", serverID).Info("Message published")
	return nil
}
