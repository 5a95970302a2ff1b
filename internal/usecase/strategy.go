package usecase

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-search/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-search/internal/entity"
	"github.com/rocketscienceinc/tictactoe-search/internal/search"
)

// Computer levels.
const (
	LevelRandom    = "random"
	LevelMinimax   = "minimax"
	LevelAlphaBeta = "alphabeta"
)

type player = search.Player[entity.State, entity.Cell]

func (that *MatchManager) playerFor(level string) (player, error) {
	switch level {
	case LevelRandom:
		return that.random.Player(), nil
	case LevelMinimax:
		return search.MinimaxPlayer[entity.State, entity.Cell], nil
	case LevelAlphaBeta:
		return search.AlphaBetaPlayer[entity.State, entity.Cell], nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, level)
	}
}
