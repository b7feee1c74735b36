package dto

// VideoListResponse mirrors the body of GET youtube/v3/videos. Pointer fields
// keep a missing key distinguishable from an empty value.
type VideoListResponse struct {
	Kind     *string          `json:"kind"`
	Etag     *string          `json:"etag"`
	Items    []*VideoResource `json:"items"`
	PageInfo *PageInfo        `json:"pageInfo"`
}

type VideoResource struct {
	Kind       *string          `json:"kind"`
	Etag       *string          `json:"etag"`
	ID         *string          `json:"id"`
	Snippet    *VideoSnippet    `json:"snippet"`
	Statistics *VideoStatistics `json:"statistics"`
}

type VideoSnippet struct {
	PublishedAt          *string               `json:"publishedAt"`
	ChannelID            *string               `json:"channelId"`
	Title                *string               `json:"title"`
	Description          *string               `json:"description"`
	Thumbnails           map[string]*Thumbnail `json:"thumbnails"`
	ChannelTitle         *string               `json:"channelTitle"`
	CategoryID           *string               `json:"categoryId"`
	LiveBroadcastContent *string               `json:"liveBroadcastContent"`
	DefaultLanguage      *string               `json:"defaultLanguage"`
	Localized            *Localized            `json:"localized"`
	DefaultAudioLanguage *string               `json:"defaultAudioLanguage"`
	Tags                 []string              `json:"tags"`
}

type Thumbnail struct {
	URL    *string `json:"url"`
	Width  *int64  `json:"width"`
	Height *int64  `json:"height"`
}

type Localized struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type VideoStatistics struct {
	ViewCount     *string `json:"viewCount"`
	LikeCount     *string `json:"likeCount"`
	FavoriteCount *string `json:"favoriteCount"`
	CommentCount  *string `json:"commentCount"`
}

// PageInfo represents pagination information
type PageInfo struct {
	TotalResults   *int64 `json:"totalResults"`
	ResultsPerPage *int64 `json:"resultsPerPage"`
}

// Res is the error envelope returned by the HTTP middleware.
type Res struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
}
