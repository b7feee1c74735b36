package repository

import (
	"context"

	"trending-ingest/domain/dto"
)

// ITrendingSource defines the YouTube Data API calls the ingestion needs
type ITrendingSource interface {
	// SearchVideoIDs returns the video ids of one bounded search page.
	// An empty slice means the platform reported no matches.
	SearchVideoIDs(ctx context.Context, query string, maxResults int64) ([]string, error)
	// ListVideoDetails fetches snippet and statistics for ids in one request.
	ListVideoDetails(ctx context.Context, ids []string) (*dto.VideoListResponse, error)
}
