package service

import (
	"context"
	"net/url"
	"time"

	"PartyHub.com/cmd/catalog/dal/db"
	"PartyHub.com/cmd/model"
	"PartyHub.com/pkg/cache"
	"PartyHub.com/pkg/errno"
	"PartyHub.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

type VideoService struct {
	store    db.Storage
	cache    *cache.VideoCacheManager
	producer *mq.Producer
}

func NewVideoService(store db.Storage, cacheManager *cache.VideoCacheManager, producer *mq.Producer) *VideoService {
	return &VideoService{
		store:    store,
		cache:    cacheManager,
		producer: producer,
	}
}

type CreateVideoParams struct {
	Title        string
	Description  string
	VideoUrl     string
	CoverUrl     string
	TelegramLink string
	Country      string
	EventType    string
	Hashtags     []string
}

// ListVideos serves the unfiltered feed from the cache when possible and
// falls back to the store. Filtered queries always hit the store.
func (s *VideoService) ListVideos(ctx context.Context, filter *model.VideoFilter) ([]*model.Video, error) {
	if filter.IsEmpty() {
		if cached, err := s.cache.GetCachedFeedPage(ctx); err != nil {
			hlog.CtxWarnf(ctx, "feed cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	videos, err := s.store.GetVideos(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.IsEmpty() {
		if err := s.cache.CacheFeedPage(ctx, videos); err != nil {
			hlog.CtxWarnf(ctx, "feed cache write failed: %v", err)
		}
	}
	return videos, nil
}

func (s *VideoService) GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	return s.store.GetVideo(ctx, videoId)
}

// VisitVideo is the read-with-side-effect path behind GET /videos/:id:
// the lookup and the view increment stay separate store operations, the
// existing wire behavior is preserved by calling both here.
func (s *VideoService) VisitVideo(ctx context.Context, videoId int64, userId string) (*model.Video, error) {
	video, err := s.store.GetVideo(ctx, videoId)
	if err != nil {
		return nil, err
	}
	if err := s.store.IncrementViews(ctx, videoId); err != nil {
		return nil, err
	}
	video.VisitCount++
	s.invalidateFeed(ctx)
	s.publishEvent(ctx, mq.EventTypeView, userId, videoId)
	return video, nil
}

func (s *VideoService) CreateVideo(ctx context.Context, userId string, params *CreateVideoParams) (*model.Video, error) {
	if params.Title == "" {
		return nil, errno.ParamErr.WithMessage("title is required")
	}
	if err := validateRequiredURL("videoUrl", params.VideoUrl); err != nil {
		return nil, err
	}
	if err := validateRequiredURL("telegramLink", params.TelegramLink); err != nil {
		return nil, err
	}
	if params.CoverUrl != "" {
		if err := validateRequiredURL("coverUrl", params.CoverUrl); err != nil {
			return nil, err
		}
	}

	video, err := s.store.CreateVideo(ctx, &model.Video{
		UserId:       userId,
		Title:        params.Title,
		Description:  params.Description,
		VideoUrl:     params.VideoUrl,
		CoverUrl:     params.CoverUrl,
		TelegramLink: params.TelegramLink,
		Country:      params.Country,
		EventType:    params.EventType,
		Hashtags:     params.Hashtags,
	})
	if err != nil {
		return nil, err
	}
	s.invalidateFeed(ctx)
	return video, nil
}

// UpdateVideo merges the patch into the record after the owner check.
// Counters and ids never travel through this path.
func (s *VideoService) UpdateVideo(ctx context.Context, videoId int64, userId string, patch *model.VideoPatch) (*model.Video, error) {
	video, err := s.store.GetVideo(ctx, videoId)
	if err != nil {
		return nil, err
	}
	if video.UserId != userId {
		return nil, errno.UnauthorizedErr.WithMessage("Not authorized to update this video")
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, errno.ParamErr.WithMessage("title is required")
	}
	if patch.VideoUrl != nil {
		if err := validateRequiredURL("videoUrl", *patch.VideoUrl); err != nil {
			return nil, err
		}
	}
	if patch.TelegramLink != nil {
		if err := validateRequiredURL("telegramLink", *patch.TelegramLink); err != nil {
			return nil, err
		}
	}

	updated, err := s.store.UpdateVideo(ctx, videoId, patch)
	if err != nil {
		return nil, err
	}
	s.invalidateFeed(ctx)
	return updated, nil
}

func (s *VideoService) DeleteVideo(ctx context.Context, videoId int64, userId string) error {
	video, err := s.store.GetVideo(ctx, videoId)
	if err != nil {
		return err
	}
	if video.UserId != userId {
		return errno.UnauthorizedErr.WithMessage("Not authorized to delete this video")
	}

	removed, err := s.store.DeleteVideo(ctx, videoId)
	if err != nil {
		return err
	}
	if !removed {
		return errno.VideoNotFoundErr
	}
	s.invalidateFeed(ctx)
	return nil
}

// TrackTelegramClick bumps the click-through counter. Missing ids are a
// store-level no-op, mirroring the view counter.
func (s *VideoService) TrackTelegramClick(ctx context.Context, videoId int64, userId string) error {
	if err := s.store.IncrementTelegramClicks(ctx, videoId); err != nil {
		return err
	}
	s.invalidateFeed(ctx)
	s.publishEvent(ctx, mq.EventTypeTelegramClick, userId, videoId)
	return nil
}

func (s *VideoService) invalidateFeed(ctx context.Context) {
	if err := s.cache.InvalidateFeed(ctx); err != nil {
		hlog.CtxWarnf(ctx, "feed cache invalidation failed: %v", err)
	}
}

func (s *VideoService) publishEvent(ctx context.Context, eventType, userId string, videoId int64) {
	event := &mq.EngagementEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		UserID:    userId,
		VideoID:   videoId,
		Timestamp: time.Now().Unix(),
	}
	if err := s.producer.PublishEngagementEvent(ctx, event); err != nil {
		hlog.CtxWarnf(ctx, "failed to publish %s event: %v", eventType, err)
	}
}

func validateRequiredURL(field, value string) error {
	if value == "" {
		return errno.ParamErr.WithMessage(field + " is required")
	}
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errno.ParamErr.WithMessage(field + " must be a valid URL")
	}
	return nil
}
