package storage

import (
	"context"
	"fmt"

	"trending-ingest/domain/repository"
	"trending-ingest/infrastructure/configuration"
	"trending-ingest/infrastructure/logger"

	gcs "cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GCSStore writes archive objects to a Google Cloud Storage bucket.
type GCSStore struct {
	client *gcs.Client
}

// NewGCSStore uses the credentials file when set, otherwise Application
// Default Credentials.
func NewGCSStore(ctx context.Context, cfg configuration.GCS, opts ...option.ClientOption) (*GCSStore, error) {
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcs client: %w", err)
	}
	logger.GetLogger().WithField("credentialsFile", cfg.CredentialsFile != "").Info("GCS archive store initialized")
	return &GCSStore{client: client}, nil
}

// PutObject writes body and commits it on Close.
func (s *GCSStore) PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	w := s.client.Bucket(bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.ChunkSize = 0

	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write gs://%s/%s: %w", bucket, key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to commit gs://%s/%s: %w", bucket, key, err)
	}

	logger.GetLogger().WithFields(logrus.Fields{
		"bucket": bucket,
		"key":    key,
		"size":   len(body),
	}).Debug("GCS object written")
	return nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}

var _ repository.IArchiveStore = (*GCSStore)(nil)
