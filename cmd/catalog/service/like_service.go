package service

import (
	"context"
	"time"

	"PartyHub.com/cmd/catalog/dal/db"
	"PartyHub.com/pkg/cache"
	"PartyHub.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

type LikeService struct {
	store    db.Storage
	cache    *cache.VideoCacheManager
	producer *mq.Producer
}

func NewLikeService(store db.Storage, cacheManager *cache.VideoCacheManager, producer *mq.Producer) *LikeService {
	return &LikeService{
		store:    store,
		cache:    cacheManager,
		producer: producer,
	}
}

// ToggleLike flips the like state for the (user, video) pair and reports
// the new state. The store serializes the check-then-write, so two
// concurrent toggles for the same pair cannot both observe "absent".
func (s *LikeService) ToggleLike(ctx context.Context, videoId int64, userId string) (bool, error) {
	liked, err := s.store.ToggleLike(ctx, videoId, userId)
	if err != nil {
		return false, err
	}

	if err := s.cache.InvalidateFeed(ctx); err != nil {
		hlog.CtxWarnf(ctx, "feed cache invalidation failed: %v", err)
	}

	eventType := mq.EventTypeLike
	if !liked {
		eventType = mq.EventTypeUnlike
	}
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

	return liked, nil
}

func (s *LikeService) GetUserLikes(ctx context.Context, userId string) ([]int64, error) {
	return s.store.GetUserLikes(ctx, userId)
}
