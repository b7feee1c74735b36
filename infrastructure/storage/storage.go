package storage

import (
	"context"
	"fmt"

	"trending-ingest/domain/repository"
	"trending-ingest/infrastructure/configuration"
)

// NewArchiveStore returns the object store selected by cfg.Provider.
func NewArchiveStore(ctx context.Context, cfg configuration.Storage) (repository.IArchiveStore, error) {
	switch cfg.Provider {
	case configuration.StorageS3, "":
		return NewS3Store(cfg.S3)
	case configuration.StorageGCS:
		return NewGCSStore(ctx, cfg.GCS)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}
