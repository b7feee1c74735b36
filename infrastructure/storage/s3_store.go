package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"trending-ingest/domain/repository"
	"trending-ingest/infrastructure/configuration"
	"trending-ingest/infrastructure/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// S3Store writes archive objects to AWS S3 or any S3-compatible endpoint.
type S3Store struct {
	client *minio.Client
}

// NewS3Store builds a minio client for cfg.Endpoint. Static keys are used when
// both are configured, otherwise credentials come from the environment or the
// instance role. Region is always sent so no bucket-location lookup happens.
func NewS3Store(cfg configuration.S3) (*S3Store, error) {
	endpoint := cfg.Endpoint
	secure := !strings.HasPrefix(endpoint, "http://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  s3Credentials(cfg),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	logger.GetLogger().WithFields(logrus.Fields{
		"endpoint":   endpoint,
		"region":     cfg.Region,
		"secure":     secure,
		"staticKeys": cfg.AccessKey != "" && cfg.SecretKey != "",
	}).Info("S3 archive store initialized")

	return &S3Store{client: client}, nil
}

func s3Credentials(cfg configuration.S3) *credentials.Credentials {
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		return credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, "")
	}
	return credentials.NewChainCredentials([]credentials.Provider{
		&credentials.EnvAWS{},
		&credentials.EnvMinio{},
		&credentials.IAM{Client: &http.Client{Transport: http.DefaultTransport}},
	})
}

// PutObject uploads body in a single request.
func (s *S3Store) PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	info, err := s.client.PutObject(ctx, bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put s3://%s/%s: %w", bucket, key, err)
	}

	logger.GetLogger().WithFields(logrus.Fields{
		"bucket": bucket,
		"key":    key,
		"size":   info.Size,
		"etag":   info.ETag,
	}).Debug("S3 object written")
	return nil
}

var _ repository.IArchiveStore = (*S3Store)(nil)
