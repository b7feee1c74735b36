package model

import (
	"bytes"
	"encoding/json"
)

// ArchiveDocument is the envelope written to object storage for one run.
// Field order is the serialized key order.
type ArchiveDocument struct {
	Kind     *string       `json:"kind"`
	Etag     *string       `json:"etag"`
	Items    []VideoRecord `json:"items"`
	PageInfo *PageInfo     `json:"pageInfo"`
}

// VideoRecord represents one archived YouTube video. Every field is always
// serialized; values missing from the API response are written as null.
type VideoRecord struct {
	Kind       *string         `json:"kind"`
	Etag       *string         `json:"etag"`
	ID         *string         `json:"id"`
	Snippet    VideoSnippet    `json:"snippet"`
	Statistics VideoStatistics `json:"statistics"`
}

type VideoSnippet struct {
	PublishedAt          *string    `json:"publishedAt"`
	ChannelID            *string    `json:"channelId"`
	Title                *string    `json:"title"`
	Description          *string    `json:"description"`
	Thumbnails           Thumbnails `json:"thumbnails"`
	ChannelTitle         *string    `json:"channelTitle"`
	CategoryID           *string    `json:"categoryId"`
	LiveBroadcastContent *string    `json:"liveBroadcastContent"`
	DefaultLanguage      *string    `json:"defaultLanguage"`
	Localized            Localized  `json:"localized"`
	DefaultAudioLanguage *string    `json:"defaultAudioLanguage"`
	Tags                 []string   `json:"tags"`
}

type Thumbnails struct {
	Default  *Thumbnail `json:"default"`
	Medium   *Thumbnail `json:"medium"`
	High     *Thumbnail `json:"high"`
	Standard *Thumbnail `json:"standard"`
	Maxres   *Thumbnail `json:"maxres"`
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

// VideoStatistics keeps the counts as the decimal strings the API returns.
// The platform omits counts the owner has hidden.
type VideoStatistics struct {
	ViewCount     *string `json:"viewCount"`
	LikeCount     *string `json:"likeCount"`
	FavoriteCount *string `json:"favoriteCount"`
	CommentCount  *string `json:"commentCount"`
}

type PageInfo struct {
	TotalResults   *int64 `json:"totalResults"`
	ResultsPerPage *int64 `json:"resultsPerPage"`
}

// Encode serializes the document as compact UTF-8 JSON without HTML escaping.
func (d *ArchiveDocument) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
