package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"trending-ingest/domain/dto"
	"trending-ingest/domain/model"
	"trending-ingest/domain/repository"
	"trending-ingest/infrastructure/logger"

	"github.com/google/go-querystring/query"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	DefaultEndpoint = "https://www.googleapis.com/"
	DefaultTimeout  = 10 * time.Second

	videosPath = "youtube/v3/videos"
)

// Client represents YouTube API client
type Client struct {
	service    *youtube.Service
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
}

// Config represents YouTube API configuration
type Config struct {
	APIKey       string
	ClientID     string
	ClientSecret string
	AccessToken  string
	RefreshToken string
	// Endpoint is the API root, e.g. https://www.googleapis.com/
	Endpoint string
	// Timeout bounds every outbound request.
	Timeout time.Duration
}

// videosListQuery is the query string of GET youtube/v3/videos
type videosListQuery struct {
	Part string `url:"part"`
	ID   string `url:"id"`
}

// NewYouTubeClient creates a new YouTube API client. A refresh token with
// client credentials selects OAuth mode; otherwise the API key is used.
func NewYouTubeClient(ctx context.Context, config *Config) (repository.ITrendingSource, error) {
	return newClient(ctx, config)
}

func newClient(ctx context.Context, config *Config) (*Client, error) {
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var httpClient *http.Client
	switch {
	case config.RefreshToken != "" && config.ClientID != "" && config.ClientSecret != "":
		oauth2Config := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Scopes:       []string{youtube.YoutubeReadonlyScope},
			Endpoint:     google.Endpoint,
		}
		token := &oauth2.Token{
			AccessToken:  config.AccessToken,
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
			Expiry:       time.Now().Add(-1 * time.Minute), // Force refresh on first use
		}
		httpClient = oauth2Config.Client(ctx, token)
		logger.GetLogger().Info("YouTube client using OAuth credentials")
	case config.APIKey != "":
		httpClient = &http.Client{Transport: &transport.APIKey{Key: config.APIKey}}
		logger.GetLogger().Info("YouTube client using API key")
	default:
		return nil, errors.New("youtube client requires an API key or OAuth refresh token")
	}
	httpClient.Timeout = timeout

	service, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient), option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{
		service:    service,
		httpClient: httpClient,
		endpoint:   endpoint,
		timeout:    timeout,
	}, nil
}

// SearchVideoIDs runs search.list for videos matching q and returns their ids
func (c *Client) SearchVideoIDs(ctx context.Context, q string, maxResults int64) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.service.Search.List([]string{"snippet"}).
		Type("video").
		Q(q).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify(model.StageSearch, fmt.Errorf("failed to search videos: %w", err))
	}

	// A decoded "items": [] is non-nil; nil means the key was absent.
	if response.Items == nil {
		return nil, model.NewStageError(model.StageSearch, model.ErrResponseShape, errors.New("search response has no items"))
	}

	videoIDs := make([]string, 0, len(response.Items))
	for i, item := range response.Items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" {
			return nil, model.NewStageError(model.StageSearch, model.ErrResponseShape, fmt.Errorf("search item %d has no id.videoId", i))
		}
		videoIDs = append(videoIDs, item.Id.VideoId)
	}
	return videoIDs, nil
}

// ListVideoDetails runs videos.list for ids. The body is decoded into
// pointer DTOs rather than youtube.Video so absent fields stay absent.
func (c *Client) ListVideoDetails(ctx context.Context, ids []string) (*dto.VideoListResponse, error) {
	if len(ids) == 0 {
		return nil, model.NewStageError(model.StageDetails, model.ErrUpstreamRequest, errors.New("no video ids to fetch"))
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params, err := query.Values(videosListQuery{Part: "snippet,statistics", ID: strings.Join(ids, ",")})
	if err != nil {
		return nil, model.NewStageError(model.StageDetails, model.ErrUpstreamRequest, fmt.Errorf("failed to encode query: %w", err))
	}
	url := googleapi.ResolveRelative(c.endpoint, videosPath) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, model.NewStageError(model.StageDetails, model.ErrUpstreamRequest, fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, model.NewStageError(model.StageDetails, model.ErrUpstreamRequest, fmt.Errorf("failed to get video details: %w", err))
	}
	defer googleapi.CloseBody(res)
	if err := googleapi.CheckResponse(res); err != nil {
		return nil, model.NewStageError(model.StageDetails, model.ErrUpstreamRequest, fmt.Errorf("failed to get video details: %w", err))
	}

	var response dto.VideoListResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, model.NewStageError(model.StageDetails, model.ErrResponseShape, fmt.Errorf("failed to decode video details: %w", err))
	}
	return &response, nil
}

// classify maps a generated-client error to a pipeline error kind.
// Undecodable bodies are shape errors; everything else is upstream.
func classify(stage model.Stage, err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return model.NewStageError(stage, model.ErrResponseShape, err)
	}
	return model.NewStageError(stage, model.ErrUpstreamRequest, err)
}
