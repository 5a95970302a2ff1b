package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-search/internal/entity"
)

const scoreKey = "score"

type ScoreRepository interface {
	Increment(ctx context.Context, winner string) error
	Get(ctx context.Context) (entity.Score, error)
	Reset(ctx context.Context) error
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

// Increment - adds one result for winner: entity.PlayerX, entity.PlayerO or entity.PlayerTie.
func (that *dbScore) Increment(ctx context.Context, winner string) error {
	if err := that.client.HIncrBy(ctx, scoreKey, winner, 1).Err(); err != nil {
		return fmt.Errorf("failed to increment score: %w", err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context) (entity.Score, error) {
	fields, err := that.client.HGetAll(ctx, scoreKey).Result()
	if err != nil {
		return entity.Score{}, fmt.Errorf("failed to get score: %w", err)
	}

	var score entity.Score
	for field, target := range map[string]*int64{
		entity.PlayerX:   &score.X,
		entity.PlayerO:   &score.O,
		entity.PlayerTie: &score.Draws,
	} {
		raw, ok := fields[field]
		if !ok {
			continue
		}

		if *target, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return entity.Score{}, fmt.Errorf("failed to parse %s score: %w", field, err)
		}
	}

	return score, nil
}

func (that *dbScore) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, scoreKey).Err(); err != nil {
		return fmt.Errorf("failed to reset score: %w", err)
	}

	return nil
}
