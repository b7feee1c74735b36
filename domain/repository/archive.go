package repository

import (
	"context"

	"trending-ingest/domain/model"
)

// IArchiveStore writes one object to a bucket
type IArchiveStore interface {
	PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error
}

// IArchiveNotifier announces a written archive object to downstream systems
type IArchiveNotifier interface {
	Notify(ctx context.Context, event *model.ArchiveEvent) error
}
