package search

import (
	"context"
	"fmt"
	"sync"
)

// Player picks a move for the side to move in state.
type Player[S any, M comparable] func(ctx context.Context, game Game[S, M], state S) (M, error)

// Source is the randomness a Random player draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Random chooses uniformly among the legal moves.
type Random[S any, M comparable] struct {
	mu     sync.Mutex
	source Source
}

func NewRandom[S any, M comparable](source Source) *Random[S, M] {
	return &Random[S, M]{source: source}
}

// Pick - returns a uniformly random legal move, or ok == false when there is none.
func (that *Random[S, M]) Pick(game Game[S, M], state S) (M, bool) {
	actions := game.Actions(state)
	if len(actions) == 0 {
		var none M
		return none, false
	}

	that.mu.Lock()
	i := that.source.Intn(len(actions))
	that.mu.Unlock()

	return actions[i], true
}

// Player - adapts Pick to the Player signature; no legal move becomes ErrNoActions.
func (that *Random[S, M]) Player() Player[S, M] {
	return func(_ context.Context, game Game[S, M], state S) (M, error) {
		move, ok := that.Pick(game, state)
		if !ok {
			return move, ErrNoActions
		}

		return move, nil
	}
}

// AlphaBetaPlayer - plays the move chosen by AlphaBetaSearch.
func AlphaBetaPlayer[S any, M comparable](ctx context.Context, game Game[S, M], state S) (M, error) {
	move, err := AlphaBetaSearch(ctx, state, game)
	if err != nil {
		return move, fmt.Errorf("alpha-beta player: %w", err)
	}

	return move, nil
}

// MinimaxPlayer - plays the move chosen by MinimaxDecision.
func MinimaxPlayer[S any, M comparable](ctx context.Context, game Game[S, M], state S) (M, error) {
	move, err := MinimaxDecision(ctx, state, game)
	if err != nil {
		return move, fmt.Errorf("minimax player: %w", err)
	}

	return move, nil
}
