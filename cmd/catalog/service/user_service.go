package service

import (
	"context"

	"PartyHub.com/cmd/catalog/dal/db"
	"PartyHub.com/cmd/model"
	"PartyHub.com/pkg/errno"
	"github.com/pkg/errors"
)

type UserService struct {
	store db.Storage
}

func NewUserService(store db.Storage) *UserService {
	return &UserService{store: store}
}

func (s *UserService) GetUser(ctx context.Context, userId string) (*model.User, error) {
	return s.store.GetUser(ctx, userId)
}

func (s *UserService) UpsertUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user.UserId == "" {
		return nil, errno.ParamErr.WithMessage("user id is required")
	}
	return s.store.UpsertUser(ctx, user)
}

// EnsureUser creates the record on first reference and leaves existing
// records untouched. Used by the identity middleware.
func (s *UserService) EnsureUser(ctx context.Context, userId string) (*model.User, error) {
	user, err := s.store.GetUser(ctx, userId)
	if err == nil {
		return user, nil
	}
	if convErr := errno.ConvertErr(err); convErr.ErrCode != errno.UserNotFoundCode {
		return nil, errors.WithMessage(err, "failed to look up user")
	}
	return s.store.UpsertUser(ctx, &model.User{UserId: userId})
}
