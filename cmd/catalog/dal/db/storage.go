package db

import (
	"context"

	"PartyHub.com/cmd/model"
)

// Storage owns the four catalog collections (users, videos, comments,
// like relationships). Callers never touch the collections directly;
// every mutation goes through one of these operations.
type Storage interface {
	// User operations
	GetUser(ctx context.Context, userId string) (*model.User, error)
	UpsertUser(ctx context.Context, user *model.User) (*model.User, error)

	// Video operations
	GetVideos(ctx context.Context, filter *model.VideoFilter) ([]*model.Video, error)
	GetVideo(ctx context.Context, videoId int64) (*model.Video, error)
	CreateVideo(ctx context.Context, video *model.Video) (*model.Video, error)
	UpdateVideo(ctx context.Context, videoId int64, patch *model.VideoPatch) (*model.Video, error)
	DeleteVideo(ctx context.Context, videoId int64) (bool, error)
	IncrementViews(ctx context.Context, videoId int64) error
	IncrementTelegramClicks(ctx context.Context, videoId int64) error

	// Like operations
	ToggleLike(ctx context.Context, videoId int64, userId string) (bool, error)
	GetUserLikes(ctx context.Context, userId string) ([]int64, error)

	// Comment operations
	GetVideoComments(ctx context.Context, videoId int64) ([]*model.Comment, error)
	CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error)

	// Analytics
	GetUserVideoStats(ctx context.Context, userId string) (*model.UserVideoStats, error)
}
