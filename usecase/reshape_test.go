package usecase

import (
	"encoding/json"
	"testing"

	"trending-ingest/domain/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptyRecordJSON = `{"kind":null,"etag":null,"id":null,"snippet":{"publishedAt":null,"channelId":null,"title":null,"description":null,"thumbnails":{"default":null,"medium":null,"high":null,"standard":null,"maxres":null},"channelTitle":null,"categoryId":null,"liveBroadcastContent":null,"defaultLanguage":null,"localized":{"title":null,"description":null},"defaultAudioLanguage":null,"tags":null},"statistics":{"viewCount":null,"likeCount":null,"favoriteCount":null,"commentCount":null}}`

func sp(s string) *string { return &s }
func ip(i int64) *int64   { return &i }

func TestReshape_EmptyItemIsAllNull(t *testing.T) {
	doc := Reshape(&dto.VideoListResponse{Items: []*dto.VideoResource{{}}})

	body, err := doc.Encode()
	require.NoError(t, err)
	assert.Equal(t, `{"kind":null,"etag":null,"items":[`+emptyRecordJSON+`],"pageInfo":null}`, string(body))
}

func TestReshape_NilItemIsAllNull(t *testing.T) {
	doc := Reshape(&dto.VideoListResponse{Items: []*dto.VideoResource{nil}})

	require.Len(t, doc.Items, 1)
	body, err := json.Marshal(doc.Items[0])
	require.NoError(t, err)
	assert.Equal(t, emptyRecordJSON, string(body))
}

func TestReshape_NilResponse(t *testing.T) {
	doc := Reshape(nil)

	require.NotNil(t, doc.Items)
	body, err := doc.Encode()
	require.NoError(t, err)
	assert.Equal(t, `{"kind":null,"etag":null,"items":[],"pageInfo":null}`, string(body))
}

func TestReshape_CopiesFields(t *testing.T) {
	raw := &dto.VideoListResponse{
		Kind: sp("youtube#videoListResponse"),
		Etag: sp("etag-list"),
		Items: []*dto.VideoResource{{
			Kind: sp("youtube#video"),
			ID:   sp("a1"),
			Snippet: &dto.VideoSnippet{
				PublishedAt: sp("2024-03-07T10:00:00Z"),
				ChannelID:   sp("UC1"),
				Title:       sp("Rock & <Roll>"),
				Thumbnails: map[string]*dto.Thumbnail{
					"high":    {URL: sp("https://i.ytimg.com/hq.jpg"), Width: ip(480), Height: ip(360)},
					"maxres":  nil,
					"unknown": {URL: sp("ignored")},
				},
				Localized: &dto.Localized{Title: sp("Localized")},
				Tags:      []string{"a", "b"},
			},
			Statistics: &dto.VideoStatistics{ViewCount: sp("12345678901234567890")},
		}},
		PageInfo: &dto.PageInfo{TotalResults: ip(1000000), ResultsPerPage: ip(1)},
	}

	doc := Reshape(raw)

	require.Len(t, doc.Items, 1)
	item := doc.Items[0]
	assert.Equal(t, "a1", *item.ID)
	assert.Nil(t, item.Etag)
	assert.Equal(t, "UC1", *item.Snippet.ChannelID)
	require.NotNil(t, item.Snippet.Thumbnails.High)
	assert.Equal(t, int64(480), *item.Snippet.Thumbnails.High.Width)
	assert.Nil(t, item.Snippet.Thumbnails.Default)
	assert.Nil(t, item.Snippet.Thumbnails.Maxres)
	assert.Equal(t, "Localized", *item.Snippet.Localized.Title)
	assert.Nil(t, item.Snippet.Localized.Description)
	assert.Equal(t, []string{"a", "b"}, item.Snippet.Tags)
	assert.Equal(t, "12345678901234567890", *item.Statistics.ViewCount)
	assert.Nil(t, item.Statistics.LikeCount)
	assert.Equal(t, int64(1000000), *doc.PageInfo.TotalResults)

	body, err := doc.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(body), `"title":"Rock & <Roll>"`)
	assert.NotContains(t, string(body), "ignored")
}

func TestReshape_Deterministic(t *testing.T) {
	raw := &dto.VideoListResponse{
		Items: []*dto.VideoResource{
			{ID: sp("b"), Snippet: &dto.VideoSnippet{Thumbnails: map[string]*dto.Thumbnail{
				"default": {URL: sp("d")}, "medium": {URL: sp("m")}, "high": {URL: sp("h")},
			}}},
			{ID: sp("a")},
		},
	}

	first, err := Reshape(raw).Encode()
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Reshape(raw).Encode()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	var decoded struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(first, &decoded))
	require.Len(t, decoded.Items, 2)
	assert.Equal(t, "b", decoded.Items[0].ID)
	assert.Equal(t, "a", decoded.Items[1].ID)
}
