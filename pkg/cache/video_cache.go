package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"PartyHub.com/cmd/model"
	"PartyHub.com/config"
	"github.com/redis/go-redis/v9"
)

// VideoCacheManager keeps a derived copy of the unfiltered feed in Redis.
// The catalog store stays the single source of truth; every mutating
// operation invalidates the cached page. A nil manager or nil client
// turns every method into a no-op, so callers never branch on config.
type VideoCacheManager struct {
	client     *redis.Client
	feedExpire time.Duration
}

const feedPageKey = "video:feed:unfiltered"

func NewVideoCacheManager(client *redis.Client) *VideoCacheManager {
	return &VideoCacheManager{
		client:     client,
		feedExpire: 5 * time.Minute,
	}
}

// NewClient builds a redis client from the config, or nil when no
// address is configured.
func NewClient() *redis.Client {
	if config.ConfigInfo.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})
}

func (vcm *VideoCacheManager) enabled() bool {
	return vcm != nil && vcm.client != nil
}

func (vcm *VideoCacheManager) CacheFeedPage(ctx context.Context, videos []*model.Video) error {
	if !vcm.enabled() {
		return nil
	}
	data, err := json.Marshal(videos)
	if err != nil {
		return fmt.Errorf("failed to marshal feed page: %w", err)
	}
	return vcm.client.Set(ctx, feedPageKey, data, vcm.feedExpire).Err()
}

func (vcm *VideoCacheManager) GetCachedFeedPage(ctx context.Context) ([]*model.Video, error) {
	if !vcm.enabled() {
		return nil, nil
	}
	data, err := vcm.client.Get(ctx, feedPageKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, fmt.Errorf("failed to get cached feed page: %w", err)
	}
	var videos []*model.Video
	if err := json.Unmarshal([]byte(data), &videos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feed page: %w", err)
	}
	return videos, nil
}

func (vcm *VideoCacheManager) InvalidateFeed(ctx context.Context) error {
	if !vcm.enabled() {
		return nil
	}
	return vcm.client.Del(ctx, feedPageKey).Err()
}
