package db

import (
	"context"
	"sync"
	"testing"
	"time"

	"PartyHub.com/cmd/model"
	"PartyHub.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVideo(userId, title string) *model.Video {
	return &model.Video{
		UserId:       userId,
		Title:        title,
		VideoUrl:     "http://cdn.example.com/v.mp4",
		TelegramLink: "http://t.me/example",
	}
}

func TestCreateVideoForcesCountersToZero(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	input := newTestVideo("alice", "Test")
	input.LikeCount = 99
	input.VisitCount = 42
	input.TelegramClicks = 7

	video, err := store.CreateVideo(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, int64(1), video.VideoId)
	assert.Zero(t, video.LikeCount)
	assert.Zero(t, video.VisitCount)
	assert.Zero(t, video.TelegramClicks)
	assert.Equal(t, video.CreatedAt, video.UpdatedAt)
}

func TestVideoIdsAreSequential(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	for want := int64(1); want <= 3; want++ {
		video, err := store.CreateVideo(ctx, newTestVideo("alice", "v"))
		require.NoError(t, err)
		assert.Equal(t, want, video.VideoId)
	}

	// Deleting does not free the id for reuse.
	removed, err := store.DeleteVideo(ctx, 3)
	require.NoError(t, err)
	require.True(t, removed)
	video, err := store.CreateVideo(ctx, newTestVideo("alice", "v"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), video.VideoId)
}

func TestToggleLikeParity(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	video, err := store.CreateVideo(ctx, newTestVideo("alice", "Test"))
	require.NoError(t, err)

	liked, err := store.ToggleLike(ctx, video.VideoId, "alice")
	require.NoError(t, err)
	assert.True(t, liked)

	got, err := store.GetVideo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.LikeCount)

	liked, err = store.ToggleLike(ctx, video.VideoId, "alice")
	require.NoError(t, err)
	assert.False(t, liked)

	got, err = store.GetVideo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Zero(t, got.LikeCount)

	likes, err := store.GetUserLikes(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestLikeCountEqualsDistinctLikers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	video, err := store.CreateVideo(ctx, newTestVideo("alice", "Test"))
	require.NoError(t, err)

	for _, userId := range []string{"alice", "bob", "carol"} {
		_, err := store.ToggleLike(ctx, video.VideoId, userId)
		require.NoError(t, err)
	}
	// bob changes his mind.
	_, err = store.ToggleLike(ctx, video.VideoId, "bob")
	require.NoError(t, err)

	got, err := store.GetVideo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.LikeCount)
}

func TestToggleLikeMissingVideo(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	video, err := store.CreateVideo(ctx, newTestVideo("alice", "Test"))
	require.NoError(t, err)

	_, err = store.ToggleLike(ctx, 9999, "alice")
	require.Error(t, err)
	assert.Equal(t, int64(errno.VideoNotFoundCode), errno.ConvertErr(err).ErrCode)

	// Nothing moved.
	got, err := store.GetVideo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Zero(t, got.LikeCount)
	likes, err := store.GetUserLikes(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestCountersAreMonotonic(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	video, err := store.CreateVideo(ctx, newTestVideo("alice", "Test"))
	require.NoError(t, err)

	var last int64
	for i := 0; i < 10; i++ {
		require.NoError(t, store.IncrementViews(ctx, video.VideoId))
		require.NoError(t, store.IncrementTelegramClicks(ctx, video.VideoId))
		got, err := store.GetVideo(ctx, video.VideoId)
		require.NoError(t, err)
		assert.Greater(t, got.VisitCount, last)
		assert.Equal(t, got.VisitCount, got.TelegramClicks)
		last = got.VisitCount
	}

	// Missing ids are a no-op, not an error.
	require.NoError(t, store.IncrementViews(ctx, 9999))
	require.NoError(t, store.IncrementTelegramClicks(ctx, 9999))
}

func TestGetVideosSortedNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	for i := 0; i < 5; i++ {
		_, err := store.CreateVideo(ctx, newTestVideo("alice", "v"))
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	videos, err := store.GetVideos(ctx, nil)
	require.NoError(t, err)
	require.Len(t, videos, 5)
	for i := 1; i < len(videos); i++ {
		assert.False(t, videos[i].CreatedAt.After(videos[i-1].CreatedAt))
		assert.Less(t, videos[i].VideoId, videos[i-1].VideoId)
	}
}

func TestGetVideosFilters(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	germany := newTestVideo("alice", "Berlin rave")
	germany.Country = "Germany"
	germany.EventType = "rave"
	germany.Hashtags = []string{"techno", "berlin"}
	_, err := store.CreateVideo(ctx, germany)
	require.NoError(t, err)

	spain := newTestVideo("bob", "Ibiza closing")
	spain.Country = "Spain"
	spain.EventType = "club"
	spain.Hashtags = []string{"house", "ibiza"}
	_, err = store.CreateVideo(ctx, spain)
	require.NoError(t, err)

	t.Run("Country", func(t *testing.T) {
		videos, err := store.GetVideos(ctx, &model.VideoFilter{Country: "Germany"})
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, "Berlin rave", videos[0].Title)
	})

	t.Run("EventType", func(t *testing.T) {
		videos, err := store.GetVideos(ctx, &model.VideoFilter{EventType: "club"})
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, "Ibiza closing", videos[0].Title)
	})

	t.Run("HashtagsMatchAny", func(t *testing.T) {
		videos, err := store.GetVideos(ctx, &model.VideoFilter{Hashtags: []string{"ibiza", "unknown"}})
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, "Ibiza closing", videos[0].Title)

		videos, err = store.GetVideos(ctx, &model.VideoFilter{Hashtags: []string{"techno", "house"}})
		require.NoError(t, err)
		assert.Len(t, videos, 2)

		videos, err = store.GetVideos(ctx, &model.VideoFilter{Hashtags: []string{"nothing"}})
		require.NoError(t, err)
		assert.Empty(t, videos)
	})

	t.Run("UserId", func(t *testing.T) {
		videos, err := store.GetVideos(ctx, &model.VideoFilter{UserId: "bob"})
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, "bob", videos[0].UserId)
	})

	t.Run("LimitOffset", func(t *testing.T) {
		videos, err := store.GetVideos(ctx, &model.VideoFilter{Limit: 1})
		require.NoError(t, err)
		require.Len(t, videos, 1)
		newest := videos[0].VideoId

		videos, err = store.GetVideos(ctx, &model.VideoFilter{Offset: 1})
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.NotEqual(t, newest, videos[0].VideoId)

		videos, err = store.GetVideos(ctx, &model.VideoFilter{Offset: 10})
		require.NoError(t, err)
		assert.Empty(t, videos)
	})
}

func TestUpdateVideoIsMergePatch(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	original := newTestVideo("alice", "Old title")
	original.Description = "keep me"
	original.Country = "Germany"
	video, err := store.CreateVideo(ctx, original)
	require.NoError(t, err)
	require.NoError(t, store.IncrementViews(ctx, video.VideoId))

	title := "New title"
	updated, err := store.UpdateVideo(ctx, video.VideoId, &model.VideoPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
	assert.Equal(t, "Germany", updated.Country)
	assert.Equal(t, video.VideoId, updated.VideoId)
	assert.Equal(t, int64(1), updated.VisitCount)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	_, err = store.UpdateVideo(ctx, 9999, &model.VideoPatch{Title: &title})
	require.Error(t, err)
	assert.Equal(t, int64(errno.VideoNotFoundCode), errno.ConvertErr(err).ErrCode)
}

func TestDeleteVideoTwice(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	video, err := store.CreateVideo(ctx, newTestVideo("alice", "Test"))
	require.NoError(t, err)

	removed, err := store.DeleteVideo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.DeleteVideo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDeleteVideoCascades(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	video, err := store.CreateVideo(ctx, newTestVideo("alice", "Test"))
	require.NoError(t, err)

	_, err = store.CreateComment(ctx, &model.Comment{VideoId: video.VideoId, UserId: "bob", Content: "great set"})
	require.NoError(t, err)
	_, err = store.ToggleLike(ctx, video.VideoId, "bob")
	require.NoError(t, err)

	removed, err := store.DeleteVideo(ctx, video.VideoId)
	require.NoError(t, err)
	require.True(t, removed)

	comments, err := store.GetVideoComments(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Empty(t, comments)

	likes, err := store.GetUserLikes(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestCreateCommentMissingVideo(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	video, err := store.CreateVideo(ctx, newTestVideo("alice", "Test"))
	require.NoError(t, err)

	_, err = store.CreateComment(ctx, &model.Comment{VideoId: 9999, UserId: "bob", Content: "lost"})
	require.Error(t, err)
	assert.Equal(t, int64(errno.VideoNotFoundCode), errno.ConvertErr(err).ErrCode)

	// The failed insert must not consume an id.
	comment, err := store.CreateComment(ctx, &model.Comment{VideoId: video.VideoId, UserId: "bob", Content: "found"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), comment.CommentId)
}

func TestGetVideoCommentsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	video, err := store.CreateVideo(ctx, newTestVideo("alice", "Test"))
	require.NoError(t, err)

	for _, content := range []string{"first", "second", "third"} {
		_, err := store.CreateComment(ctx, &model.Comment{VideoId: video.VideoId, UserId: "bob", Content: content})
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	comments, err := store.GetVideoComments(ctx, video.VideoId)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "third", comments[0].Content)
	assert.Equal(t, "first", comments[2].Content)
}

func TestUpsertUserPreservesCreationTime(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	first, err := store.UpsertUser(ctx, &model.User{UserId: "alice", FirstName: "Alice"})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	second, err := store.UpsertUser(ctx, &model.User{UserId: "alice", FirstName: "Alicia"})
	require.NoError(t, err)

	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
	assert.Equal(t, "Alicia", second.FirstName)

	_, err = store.GetUser(ctx, "nobody")
	require.Error(t, err)
	assert.Equal(t, int64(errno.UserNotFoundCode), errno.ConvertErr(err).ErrCode)
}

func TestGetUserVideoStats(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	v1, err := store.CreateVideo(ctx, newTestVideo("alice", "one"))
	require.NoError(t, err)
	v2, err := store.CreateVideo(ctx, newTestVideo("alice", "two"))
	require.NoError(t, err)
	_, err = store.CreateVideo(ctx, newTestVideo("bob", "not counted"))
	require.NoError(t, err)

	// v1: views=5, likes=2, clicks=1
	for i := 0; i < 5; i++ {
		require.NoError(t, store.IncrementViews(ctx, v1.VideoId))
	}
	for _, userId := range []string{"bob", "carol"} {
		_, err := store.ToggleLike(ctx, v1.VideoId, userId)
		require.NoError(t, err)
	}
	require.NoError(t, store.IncrementTelegramClicks(ctx, v1.VideoId))

	// v2: views=3, likes=0, clicks=4
	for i := 0; i < 3; i++ {
		require.NoError(t, store.IncrementViews(ctx, v2.VideoId))
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, store.IncrementTelegramClicks(ctx, v2.VideoId))
	}

	stats, err := store.GetUserVideoStats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(8), stats.TotalViews)
	assert.Equal(t, int64(2), stats.TotalLikes)
	assert.Equal(t, int64(5), stats.TotalTelegramClicks)
	assert.Equal(t, int64(2), stats.VideoCount)

	empty, err := store.GetUserVideoStats(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, empty.VideoCount)
}

func TestConcurrentTogglesSerialize(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	video, err := store.CreateVideo(ctx, newTestVideo("alice", "Test"))
	require.NoError(t, err)

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			// Even number of toggles per worker: the pair must land
			// back on "not liked" no matter how calls interleave.
			for j := 0; j < 10; j++ {
				_, err := store.ToggleLike(ctx, video.VideoId, "alice")
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	got, err := store.GetVideo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Zero(t, got.LikeCount)
	likes, err := store.GetUserLikes(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestConcurrentIncrementsLoseNothing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	video, err := store.CreateVideo(ctx, newTestVideo("alice", "Test"))
	require.NoError(t, err)

	const workers = 20
	const perWorker = 25
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				assert.NoError(t, store.IncrementViews(ctx, video.VideoId))
			}
		}()
	}
	wg.Wait()

	got, err := store.GetVideo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker), got.VisitCount)
}

func TestLikeExampleFlow(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	video, err := store.CreateVideo(ctx, &model.Video{
		UserId:       "alice",
		Title:        "Test",
		VideoUrl:     "http://x/v.mp4",
		TelegramLink: "http://t.me/x",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), video.VideoId)
	require.Zero(t, video.LikeCount)
	require.Zero(t, video.VisitCount)
	require.Zero(t, video.TelegramClicks)

	liked, err := store.ToggleLike(ctx, 1, "alice")
	require.NoError(t, err)
	assert.True(t, liked)
	got, err := store.GetVideo(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.LikeCount)

	liked, err = store.ToggleLike(ctx, 1, "alice")
	require.NoError(t, err)
	assert.False(t, liked)
	got, err = store.GetVideo(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, got.LikeCount)
}
