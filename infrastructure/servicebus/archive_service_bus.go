package servicebus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"trending-ingest/domain/model"
	"trending-ingest/domain/repository"
	"trending-ingest/infrastructure/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
)

const namespaceSuffix = ".servicebus.windows.net"

// NewServiceBus connects to namespace with DefaultAzureCredential. A bare
// namespace name is expanded to its fully qualified host.
func NewServiceBus(namespace string) (*azservicebus.Client, error) {
	if namespace == "" {
		return nil, errors.New("service bus namespace is required")
	}
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain azure credential: %w", err)
	}
	client, err := azservicebus.NewClient(FullyQualifiedNamespace(namespace), credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create service bus client: %w", err)
	}
	return client, nil
}

func FullyQualifiedNamespace(namespace string) string {
	if strings.Contains(namespace, ".") {
		return namespace
	}
	return namespace + namespaceSuffix
}

type ArchiveServiceBus struct {
	AzservicebusClient *azservicebus.Client
	Queue              string
}

func NewArchiveServiceBus(azServiceBusClient *azservicebus.Client, queue string) repository.IArchiveNotifier {
	return &ArchiveServiceBus{AzservicebusClient: azServiceBusClient, Queue: queue}
}

// Notify sends event as one JSON message on the queue.
func (s *ArchiveServiceBus) Notify(ctx context.Context, event *model.ArchiveEvent) error {
	if s.AzservicebusClient == nil {
		return errors.New("service bus client not initialized")
	}
	message, err := NewArchiveMessage(event)
	if err != nil {
		return err
	}

	sender, err := s.AzservicebusClient.NewSender(s.Queue, nil)
	if err != nil {
		logger.GetLogger().
			WithField("error", err).
			Error("Error while making new sender service bus.")
		return err
	}
	defer func(sender *azservicebus.Sender) {
		if err := sender.Close(context.Background()); err != nil {
			logger.GetLogger().
				WithField("error", err).
				Error("Error while closing sender.")
		}
	}(sender)

	if err = sender.SendMessage(ctx, message, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while sending message.")
		return err
	}
	return nil
}

// NewArchiveMessage builds the queue message for event. The run id doubles
// as the message id so duplicate detection can drop retries.
func NewArchiveMessage(event *model.ArchiveEvent) (*azservicebus.Message, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode archive event: %w", err)
	}
	contentType := "application/json"
	messageID := event.RunID
	subject := "trending.archived"
	return &azservicebus.Message{
		Body:        body,
		ContentType: &contentType,
		MessageID:   &messageID,
		Subject:     &subject,
		ApplicationProperties: map[string]any{
			"bucket": event.Bucket,
			"key":    event.Key,
		},
	}, nil
}
