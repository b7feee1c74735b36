package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trending-ingest/domain/dto"
	"trending-ingest/domain/model"
	"trending-ingest/domain/repository"
	"trending-ingest/infrastructure/logger"
	"trending-ingest/infrastructure/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	contentTypeJSON     = "application/json"
	MessageNoVideos     = "No videos found to process."
	defaultStoreTimeout = 30 * time.Second
	defaultNotifyWait   = 10 * time.Second
)

// ITrendingUsecase runs one trending ingestion
type ITrendingUsecase interface {
	Run(ctx context.Context) model.InvocationResult
}

// TrendingOptions are the per-deployment parameters of a run
type TrendingOptions struct {
	Query          string
	MaxResults     int64
	Bucket         string
	Prefix         string
	Source         string
	StorageTimeout time.Duration
	NotifyTimeout  time.Duration
}

// TrendingUsecase searches, fetches details, reshapes and archives.
type TrendingUsecase struct {
	source   repository.ITrendingSource
	store    repository.IArchiveStore
	notifier repository.IArchiveNotifier // optional
	options  TrendingOptions
	now      func() time.Time
}

func NewTrendingUsecase(source repository.ITrendingSource, store repository.IArchiveStore, options TrendingOptions) *TrendingUsecase {
	if options.StorageTimeout <= 0 {
		options.StorageTimeout = defaultStoreTimeout
	}
	if options.NotifyTimeout <= 0 {
		options.NotifyTimeout = defaultNotifyWait
	}
	return &TrendingUsecase{
		source:  source,
		store:   store,
		options: options,
		now:     utils.GetCurrentTime,
	}
}

// WithNotifier enables archive notifications (fluent)
func (u *TrendingUsecase) WithNotifier(notifier repository.IArchiveNotifier) *TrendingUsecase {
	u.notifier = notifier
	return u
}

// WithClock replaces the wall clock used for archive keys (fluent)
func (u *TrendingUsecase) WithClock(now func() time.Time) *TrendingUsecase {
	u.now = now
	return u
}

// FetchTrendingIDs returns the ids of the current search page.
func (u *TrendingUsecase) FetchTrendingIDs(ctx context.Context) ([]string, error) {
	ids, err := u.source.SearchVideoIDs(ctx, u.options.Query, u.options.MaxResults)
	if err != nil {
		return nil, ensureStage(model.StageSearch, model.ErrUpstreamRequest, err)
	}
	return ids, nil
}

// FetchVideoDetails returns the raw detail document for ids. ids must not be empty.
func (u *TrendingUsecase) FetchVideoDetails(ctx context.Context, ids []string) (*dto.VideoListResponse, error) {
	raw, err := u.source.ListVideoDetails(ctx, ids)
	if err != nil {
		return nil, ensureStage(model.StageDetails, model.ErrUpstreamRequest, err)
	}
	return raw, nil
}

// Archive writes doc under a key derived from the current UTC time and returns the key.
func (u *TrendingUsecase) Archive(ctx context.Context, doc *model.ArchiveDocument) (string, error) {
	return u.archiveAt(ctx, doc, u.now())
}

func (u *TrendingUsecase) archiveAt(ctx context.Context, doc *model.ArchiveDocument, now time.Time) (string, error) {
	body, err := doc.Encode()
	if err != nil {
		return "", model.NewStageError(model.StageReshape, model.ErrResponseShape, fmt.Errorf("failed to encode archive document: %w", err))
	}
	key := BuildArchiveKey(u.options.Prefix, u.options.Source, now)

	ctx, cancel := context.WithTimeout(ctx, u.options.StorageTimeout)
	defer cancel()
	if err := u.store.PutObject(ctx, u.options.Bucket, key, body, contentTypeJSON); err != nil {
		return "", model.NewStageError(model.StageArchive, model.ErrStorageWrite, err)
	}
	return key, nil
}

// Run executes the pipeline once and converts every outcome, including
// panics, into an InvocationResult.
func (u *TrendingUsecase) Run(ctx context.Context) (result model.InvocationResult) {
	runID := uuid.NewString()
	log := logger.GetLogger().WithField("runId", runID)

	defer func() {
		if r := recover(); r != nil {
			result = u.fail(log, fmt.Errorf("ingestion panicked: %v", r))
		}
	}()

	log.WithFields(logrus.Fields{
		"query":      u.options.Query,
		"maxResults": u.options.MaxResults,
	}).Info("Trending ingestion started")

	ids, err := u.FetchTrendingIDs(ctx)
	if err != nil {
		return u.fail(log, err)
	}
	log.WithFields(logrus.Fields{"count": len(ids), "videoIds": ids}).Info("Fetched video IDs")

	if len(ids) == 0 {
		log.Info("No videos found from YouTube search, nothing to archive")
		return model.NewSuccessResult(MessageNoVideos, "", "")
	}

	raw, err := u.FetchVideoDetails(ctx, ids)
	if err != nil {
		return u.fail(log, err)
	}
	doc := Reshape(raw)
	log.WithField("count", len(doc.Items)).Info("Fetched video details")

	archivedAt := u.now().UTC()
	key, err := u.archiveAt(ctx, doc, archivedAt)
	if err != nil {
		return u.fail(log, err)
	}
	log.WithFields(logrus.Fields{"bucket": u.options.Bucket, "key": key}).Info("Archive uploaded")

	u.notify(ctx, log, &model.ArchiveEvent{
		RunID:      runID,
		Bucket:     u.options.Bucket,
		Key:        key,
		ItemCount:  len(doc.Items),
		ArchivedAt: archivedAt,
	})

	return model.NewSuccessResult(fmt.Sprintf("Trending video stats saved to %s as %s", u.options.Bucket, key), u.options.Bucket, key)
}

// notify publishes event when a notifier is configured. Failures are logged
// only; the archive object already exists.
func (u *TrendingUsecase) notify(ctx context.Context, log *logrus.Entry, event *model.ArchiveEvent) {
	if u.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, u.options.NotifyTimeout)
	defer cancel()
	if err := u.notifier.Notify(ctx, event); err != nil {
		log.WithField("error", err).Warn("Archive notification failed")
		return
	}
	log.WithField("key", event.Key).Info("Archive notification published")
}

func (u *TrendingUsecase) fail(log *logrus.Entry, err error) model.InvocationResult {
	log.WithFields(logrus.Fields{
		"stage": model.StageOf(err),
		"error": err,
	}).Error("Trending ingestion failed")
	return model.NewFailureResult(err)
}

// ensureStage tags err with stage unless a source already did.
func ensureStage(stage model.Stage, kind error, err error) error {
	var se *model.StageError
	if errors.As(err, &se) {
		return err
	}
	return model.NewStageError(stage, kind, err)
}
