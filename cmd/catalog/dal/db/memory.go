package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"PartyHub.com/cmd/model"
	"PartyHub.com/pkg/errno"
)

// MemoryStorage is the default backend: everything lives in process
// memory behind one RWMutex, so check-then-write sequences such as the
// like toggle serialize against each other. Records handed out are
// copies; callers cannot mutate the collections behind the store's back.
type MemoryStorage struct {
	mu            sync.RWMutex
	users         map[string]*model.User
	videos        map[int64]*model.Video
	comments      map[int64]*model.Comment
	likes         map[string]map[int64]struct{} // userId -> set of videoIds
	nextVideoId   int64
	nextCommentId int64
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:         make(map[string]*model.User),
		videos:        make(map[int64]*model.Video),
		comments:      make(map[int64]*model.Comment),
		likes:         make(map[string]map[int64]struct{}),
		nextVideoId:   1,
		nextCommentId: 1,
	}
}

func cloneVideo(v *model.Video) *model.Video {
	out := *v
	if v.Hashtags != nil {
		out.Hashtags = append([]string(nil), v.Hashtags...)
	}
	return &out
}

func (s *MemoryStorage) GetUser(ctx context.Context, userId string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userId]
	if !ok {
		return nil, errno.UserNotFoundErr
	}
	out := *user
	return &out, nil
}

func (s *MemoryStorage) UpsertUser(ctx context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	stored := *user
	if existing, ok := s.users[user.UserId]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	s.users[user.UserId] = &stored
	out := stored
	return &out, nil
}

func (s *MemoryStorage) GetVideos(ctx context.Context, filter *model.VideoFilter) ([]*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Video, 0, len(s.videos))
	for _, v := range s.videos {
		if filter != nil && !matchVideo(v, filter) {
			continue
		}
		out = append(out, cloneVideo(v))
	}

	// Newest first; the id tiebreak keeps the order deterministic when
	// two videos share a creation timestamp.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].VideoId > out[j].VideoId
	})

	if filter != nil {
		if filter.Offset > 0 {
			if filter.Offset >= len(out) {
				return []*model.Video{}, nil
			}
			out = out[filter.Offset:]
		}
		if filter.Limit > 0 && filter.Limit < len(out) {
			out = out[:filter.Limit]
		}
	}
	return out, nil
}

func matchVideo(v *model.Video, f *model.VideoFilter) bool {
	if f.Country != "" && v.Country != f.Country {
		return false
	}
	if f.EventType != "" && v.EventType != f.EventType {
		return false
	}
	if f.UserId != "" && v.UserId != f.UserId {
		return false
	}
	if len(f.Hashtags) > 0 && !hashtagsIntersect(v.Hashtags, f.Hashtags) {
		return false
	}
	return true
}

func hashtagsIntersect(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (s *MemoryStorage) GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	video, ok := s.videos[videoId]
	if !ok {
		return nil, errno.VideoNotFoundErr
	}
	return cloneVideo(video), nil
}

func (s *MemoryStorage) CreateVideo(ctx context.Context, video *model.Video) (*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	stored := cloneVideo(video)
	stored.VideoId = s.nextVideoId
	s.nextVideoId++
	// Counters always start at zero, whatever the caller put in.
	stored.LikeCount = 0
	stored.VisitCount = 0
	stored.TelegramClicks = 0
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.videos[stored.VideoId] = stored
	return cloneVideo(stored), nil
}

func (s *MemoryStorage) UpdateVideo(ctx context.Context, videoId int64, patch *model.VideoPatch) (*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.videos[videoId]
	if !ok {
		return nil, errno.VideoNotFoundErr
	}
	if patch.Title != nil {
		video.Title = *patch.Title
	}
	if patch.Description != nil {
		video.Description = *patch.Description
	}
	if patch.VideoUrl != nil {
		video.VideoUrl = *patch.VideoUrl
	}
	if patch.CoverUrl != nil {
		video.CoverUrl = *patch.CoverUrl
	}
	if patch.TelegramLink != nil {
		video.TelegramLink = *patch.TelegramLink
	}
	if patch.Country != nil {
		video.Country = *patch.Country
	}
	if patch.EventType != nil {
		video.EventType = *patch.EventType
	}
	if patch.Hashtags != nil {
		video.Hashtags = append([]string(nil), (*patch.Hashtags)...)
	}
	video.UpdatedAt = time.Now()
	return cloneVideo(video), nil
}

// DeleteVideo removes the record together with its comments and every
// like-set entry pointing at it, so no dangling ids survive the delete.
// Deleting an absent id is a no-op and reports false.
func (s *MemoryStorage) DeleteVideo(ctx context.Context, videoId int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[videoId]; !ok {
		return false, nil
	}
	delete(s.videos, videoId)
	for commentId, comment := range s.comments {
		if comment.VideoId == videoId {
			delete(s.comments, commentId)
		}
	}
	for _, set := range s.likes {
		delete(set, videoId)
	}
	return true, nil
}

func (s *MemoryStorage) IncrementViews(ctx context.Context, videoId int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if video, ok := s.videos[videoId]; ok {
		video.VisitCount++
	}
	return nil
}

func (s *MemoryStorage) IncrementTelegramClicks(ctx context.Context, videoId int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if video, ok := s.videos[videoId]; ok {
		video.TelegramClicks++
	}
	return nil
}

// ToggleLike flips the (user, video) membership in the per-user like set
// and keeps the denormalized like count in step. The set is the source
// of truth; the count never goes below zero.
func (s *MemoryStorage) ToggleLike(ctx context.Context, videoId int64, userId string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.videos[videoId]
	if !ok {
		return false, errno.VideoNotFoundErr
	}
	set, ok := s.likes[userId]
	if !ok {
		set = make(map[int64]struct{})
		s.likes[userId] = set
	}

	if _, liked := set[videoId]; liked {
		delete(set, videoId)
		if video.LikeCount > 0 {
			video.LikeCount--
		}
		return false, nil
	}
	set[videoId] = struct{}{}
	video.LikeCount++
	return true, nil
}

func (s *MemoryStorage) GetUserLikes(ctx context.Context, userId string) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := s.likes[userId]
	out := make([]int64, 0, len(set))
	for videoId := range set {
		out = append(out, videoId)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (s *MemoryStorage) GetVideoComments(ctx context.Context, videoId int64) ([]*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Comment, 0)
	for _, comment := range s.comments {
		if comment.VideoId == videoId {
			c := *comment
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CommentId > out[j].CommentId
	})
	return out, nil
}

// CreateComment enforces the video reference at the store boundary; the
// map storage underneath would happily accept an orphan otherwise.
func (s *MemoryStorage) CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[comment.VideoId]; !ok {
		return nil, errno.VideoNotFoundErr
	}
	stored := *comment
	stored.CommentId = s.nextCommentId
	s.nextCommentId++
	stored.CreatedAt = time.Now()
	s.comments[stored.CommentId] = &stored
	out := stored
	return &out, nil
}

func (s *MemoryStorage) GetUserVideoStats(ctx context.Context, userId string) (*model.UserVideoStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &model.UserVideoStats{}
	for _, video := range s.videos {
		if video.UserId != userId {
			continue
		}
		stats.TotalViews += video.VisitCount
		stats.TotalLikes += video.LikeCount
		stats.TotalTelegramClicks += video.TelegramClicks
		stats.VideoCount++
	}
	return stats, nil
}
