package search

import (
	"context"
	"fmt"
	"math"
)

type alphaBetaSearch[S any, M comparable] struct {
	ctx    context.Context
	game   Game[S, M]
	player string
	nodes  int
}

// AlphaBetaSearch - returns a move with the same game value as MinimaxDecision while
// skipping subtrees that cannot change the root decision.
func AlphaBetaSearch[S any, M comparable](ctx context.Context, state S, game Game[S, M]) (M, error) {
	decision, err := AlphaBeta(ctx, state, game)
	if err != nil {
		var none M
		return none, err
	}

	return decision.Move, nil
}

// AlphaBeta - searches to the terminal states with alpha-beta pruning.
// The root keeps the first move whose value is strictly greater than the best so far.
func AlphaBeta[S any, M comparable](ctx context.Context, state S, game Game[S, M]) (Decision[M], error) {
	actions := game.Actions(state)
	if len(actions) == 0 {
		return Decision[M]{}, ErrNoActions
	}

	search := &alphaBetaSearch[S, M]{
		ctx:    ctx,
		game:   game,
		player: game.ToMove(state),
	}

	bestScore := negInf
	beta := posInf
	bestAction := actions[0]

	for _, action := range actions {
		v, err := search.minValue(game.Result(state, action), bestScore, beta)
		if err != nil {
			return Decision[M]{}, fmt.Errorf("alpha-beta search interrupted: %w", err)
		}

		if v > bestScore {
			bestScore = v
			bestAction = action
		}
	}

	return Decision[M]{
		Move:  bestAction,
		Value: bestScore,
		Nodes: search.nodes,
	}, nil
}

func (that *alphaBetaSearch[S, M]) maxValue(state S, alpha, beta float64) (float64, error) {
	if err := that.visit(); err != nil {
		return 0, err
	}

	if that.game.TerminalTest(state) {
		return that.game.Utility(state, that.player), nil
	}

	v := negInf
	for _, action := range that.game.Actions(state) {
		child, err := that.minValue(that.game.Result(state, action), alpha, beta)
		if err != nil {
			return 0, err
		}

		v = math.Max(v, child)
		// beta cut-off
		if v >= beta {
			return v, nil
		}
		alpha = math.Max(alpha, v)
	}

	return v, nil
}

func (that *alphaBetaSearch[S, M]) minValue(state S, alpha, beta float64) (float64, error) {
	if err := that.visit(); err != nil {
		return 0, err
	}

	if that.game.TerminalTest(state) {
		return that.game.Utility(state, that.player), nil
	}

	v := posInf
	for _, action := range that.game.Actions(state) {
		child, err := that.maxValue(that.game.Result(state, action), alpha, beta)
		if err != nil {
			return 0, err
		}

		v = math.Min(v, child)
		// alpha cut-off
		if v <= alpha {
			return v, nil
		}
		beta = math.Min(beta, v)
	}

	return v, nil
}

func (that *alphaBetaSearch[S, M]) visit() error {
	that.nodes++

	return that.ctx.Err()
}
