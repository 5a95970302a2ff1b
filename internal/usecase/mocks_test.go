package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-search/internal/entity"
)

type mockMatchRepo struct {
	mock.Mock
}

func (that *mockMatchRepo) CreateOrUpdate(ctx context.Context, match *entity.Match) error {
	args := that.Called(ctx, match)
	return args.Error(0)
}

func (that *mockMatchRepo) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	args := that.Called(ctx, id)
	match, _ := args.Get(0).(*entity.Match)
	return match, args.Error(1)
}

func (that *mockMatchRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

type mockScoreRepo struct {
	mock.Mock
}

func (that *mockScoreRepo) Increment(ctx context.Context, winner string) error {
	args := that.Called(ctx, winner)
	return args.Error(0)
}

func (that *mockScoreRepo) Get(ctx context.Context) (entity.Score, error) {
	args := that.Called(ctx)
	score, _ := args.Get(0).(entity.Score)
	return score, args.Error(1)
}

func (that *mockScoreRepo) Reset(ctx context.Context) error {
	args := that.Called(ctx)
	return args.Error(0)
}
