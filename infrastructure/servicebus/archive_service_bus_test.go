package servicebus_test

import (
	"context"
	"encoding/json"
	"testing"

	"trending-ingest/domain/model"
	"trending-ingest/infrastructure/servicebus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewArchiveServiceBus tests the creation of a new ArchiveServiceBus
func TestNewArchiveServiceBus(t *testing.T) {
	notifier := servicebus.NewArchiveServiceBus(nil, "archives")
	assert.NotNil(t, notifier)
}

func TestArchiveServiceBus_NilClient(t *testing.T) {
	err := servicebus.NewArchiveServiceBus(nil, "archives").Notify(context.Background(), &model.ArchiveEvent{})
	assert.Error(t, err)
}

func TestNewServiceBus_RequiresNamespace(t *testing.T) {
	_, err := servicebus.NewServiceBus("")
	assert.Error(t, err)
}

func TestFullyQualifiedNamespace(t *testing.T) {
	assert.Equal(t, "ingest.servicebus.windows.net", servicebus.FullyQualifiedNamespace("ingest"))
	assert.Equal(t, "ingest.servicebus.windows.net", servicebus.FullyQualifiedNamespace("ingest.servicebus.windows.net"))
}

func TestNewArchiveMessage(t *testing.T) {
	event := &model.ArchiveEvent{RunID: "run-1", Bucket: "archive-bucket", Key: "raw-data/k.json", ItemCount: 3}

	message, err := servicebus.NewArchiveMessage(event)
	require.NoError(t, err)

	require.NotNil(t, message.MessageID)
	assert.Equal(t, "run-1", *message.MessageID)
	assert.Equal(t, "application/json", *message.ContentType)
	assert.Equal(t, "raw-data/k.json", message.ApplicationProperties["key"])

	var got model.ArchiveEvent
	require.NoError(t, json.Unmarshal(message.Body, &got))
	assert.Equal(t, 3, got.ItemCount)
}
