package service

import (
	"context"
	"testing"
	"time"

	"PartyHub.com/cmd/catalog/dal/db"
	"PartyHub.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentValidation(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStorage()
	videos := NewVideoService(store, nil, nil)
	comments := NewCommentService(store)

	video, err := videos.CreateVideo(ctx, "alice", validCreateParams())
	require.NoError(t, err)

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := comments.CreateComment(ctx, video.VideoId, "bob", content)
		require.Error(t, err)
		e := errno.ConvertErr(err)
		assert.Equal(t, int64(errno.ParamErrCode), e.ErrCode)
		assert.Equal(t, "content is required", e.ErrMsg)
	}
}

func TestCreateCommentMissingVideoFails(t *testing.T) {
	ctx := context.Background()
	comments := NewCommentService(db.NewMemoryStorage())

	_, err := comments.CreateComment(ctx, 9999, "bob", "hello")
	require.Error(t, err)
	assert.Equal(t, int64(errno.VideoNotFoundCode), errno.ConvertErr(err).ErrCode)
}

func TestListCommentsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStorage()
	videos := NewVideoService(store, nil, nil)
	comments := NewCommentService(store)

	video, err := videos.CreateVideo(ctx, "alice", validCreateParams())
	require.NoError(t, err)

	for _, content := range []string{"first", "second", "third"} {
		comment, err := comments.CreateComment(ctx, video.VideoId, "bob", content)
		require.NoError(t, err)
		assert.Equal(t, video.VideoId, comment.VideoId)
		time.Sleep(time.Millisecond)
	}

	listed, err := comments.ListComments(ctx, video.VideoId)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "third", listed[0].Content)
	assert.Equal(t, "second", listed[1].Content)
	assert.Equal(t, "first", listed[2].Content)

	// A video nobody commented on lists empty rather than erroring.
	other, err := videos.CreateVideo(ctx, "alice", validCreateParams())
	require.NoError(t, err)
	listed, err = comments.ListComments(ctx, other.VideoId)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
