package service

import (
	"context"

	"PartyHub.com/cmd/catalog/dal/db"
	"PartyHub.com/cmd/model"
)

type StatsService struct {
	store db.Storage
}

func NewStatsService(store db.Storage) *StatsService {
	return &StatsService{store: store}
}

// GetUserVideoStats recomputes the rollup from the videos collection on
// every call; nothing is cached, correctness over the collection is the
// only contract.
func (s *StatsService) GetUserVideoStats(ctx context.Context, userId string) (*model.UserVideoStats, error) {
	return s.store.GetUserVideoStats(ctx, userId)
}
