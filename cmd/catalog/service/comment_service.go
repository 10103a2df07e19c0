package service

import (
	"context"
	"strings"

	"PartyHub.com/cmd/catalog/dal/db"
	"PartyHub.com/cmd/model"
	"PartyHub.com/pkg/errno"
)

type CommentService struct {
	store db.Storage
}

func NewCommentService(store db.Storage) *CommentService {
	return &CommentService{store: store}
}

func (s *CommentService) ListComments(ctx context.Context, videoId int64) ([]*model.Comment, error) {
	return s.store.GetVideoComments(ctx, videoId)
}

func (s *CommentService) CreateComment(ctx context.Context, videoId int64, userId, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("content is required")
	}
	return s.store.CreateComment(ctx, &model.Comment{
		VideoId: videoId,
		UserId:  userId,
		Content: content,
	})
}
