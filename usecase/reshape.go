package usecase

import (
	"trending-ingest/domain/dto"
	"trending-ingest/domain/model"
)

// Reshape converts a raw videos.list response into the archive layout.
// It never fails: any group or field missing from raw becomes null, and a
// nil raw yields an empty document.
func Reshape(raw *dto.VideoListResponse) *model.ArchiveDocument {
	if raw == nil {
		raw = &dto.VideoListResponse{}
	}
	items := make([]model.VideoRecord, 0, len(raw.Items))
	for _, item := range raw.Items {
		items = append(items, reshapeVideo(item))
	}
	return &model.ArchiveDocument{
		Kind:     raw.Kind,
		Etag:     raw.Etag,
		Items:    items,
		PageInfo: reshapePageInfo(raw.PageInfo),
	}
}

func reshapeVideo(item *dto.VideoResource) model.VideoRecord {
	if item == nil {
		item = &dto.VideoResource{}
	}
	return model.VideoRecord{
		Kind:       item.Kind,
		Etag:       item.Etag,
		ID:         item.ID,
		Snippet:    reshapeSnippet(item.Snippet),
		Statistics: reshapeStatistics(item.Statistics),
	}
}

func reshapeSnippet(s *dto.VideoSnippet) model.VideoSnippet {
	if s == nil {
		s = &dto.VideoSnippet{}
	}
	localized := model.Localized{}
	if s.Localized != nil {
		localized.Title = s.Localized.Title
		localized.Description = s.Localized.Description
	}
	return model.VideoSnippet{
		PublishedAt: s.PublishedAt,
		ChannelID:   s.ChannelID,
		Title:       s.Title,
		Description: s.Description,
		Thumbnails: model.Thumbnails{
			Default:  thumbnail(s.Thumbnails, "default"),
			Medium:   thumbnail(s.Thumbnails, "medium"),
			High:     thumbnail(s.Thumbnails, "high"),
			Standard: thumbnail(s.Thumbnails, "standard"),
			Maxres:   thumbnail(s.Thumbnails, "maxres"),
		},
		ChannelTitle:         s.ChannelTitle,
		CategoryID:           s.CategoryID,
		LiveBroadcastContent: s.LiveBroadcastContent,
		DefaultLanguage:      s.DefaultLanguage,
		Localized:            localized,
		DefaultAudioLanguage: s.DefaultAudioLanguage,
		Tags:                 s.Tags,
	}
}

func thumbnail(thumbnails map[string]*dto.Thumbnail, variant string) *model.Thumbnail {
	t, ok := thumbnails[variant]
	if !ok || t == nil {
		return nil
	}
	return &model.Thumbnail{URL: t.URL, Width: t.Width, Height: t.Height}
}

func reshapeStatistics(s *dto.VideoStatistics) model.VideoStatistics {
	if s == nil {
		return model.VideoStatistics{}
	}
	return model.VideoStatistics{
		ViewCount:     s.ViewCount,
		LikeCount:     s.LikeCount,
		FavoriteCount: s.FavoriteCount,
		CommentCount:  s.CommentCount,
	}
}

func reshapePageInfo(p *dto.PageInfo) *model.PageInfo {
	if p == nil {
		return nil
	}
	return &model.PageInfo{TotalResults: p.TotalResults, ResultsPerPage: p.ResultsPerPage}
}
