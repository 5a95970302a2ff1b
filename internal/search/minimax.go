package search

import (
	"context"
	"fmt"
	"math"
)

type minimaxSearch[S any, M comparable] struct {
	ctx    context.Context
	game   Game[S, M]
	player string
	nodes  int
}

// MinimaxDecision - returns the move that is optimal against a perfect opponent,
// searching every line down to the terminal states.
func MinimaxDecision[S any, M comparable](ctx context.Context, state S, game Game[S, M]) (M, error) {
	decision, err := Minimax(ctx, state, game)
	if err != nil {
		var none M
		return none, err
	}

	return decision.Move, nil
}

// Minimax - full-depth search without pruning. Ties keep the first maximal move in
// the order given by game.Actions.
func Minimax[S any, M comparable](ctx context.Context, state S, game Game[S, M]) (Decision[M], error) {
	actions := game.Actions(state)
	if len(actions) == 0 {
		return Decision[M]{}, ErrNoActions
	}

	search := &minimaxSearch[S, M]{
		ctx:    ctx,
		game:   game,
		player: game.ToMove(state),
	}

	best := Decision[M]{Move: actions[0], Value: negInf}
	for i, action := range actions {
		v, err := search.minValue(game.Result(state, action))
		if err != nil {
			return Decision[M]{}, fmt.Errorf("minimax search interrupted: %w", err)
		}

		if i == 0 || v > best.Value {
			best.Move = action
			best.Value = v
		}
	}

	best.Nodes = search.nodes

	return best, nil
}

func (that *minimaxSearch[S, M]) maxValue(state S) (float64, error) {
	if err := that.visit(); err != nil {
		return 0, err
	}

	if that.game.TerminalTest(state) {
		return that.game.Utility(state, that.player), nil
	}

	v := negInf
	for _, action := range that.game.Actions(state) {
		child, err := that.minValue(that.game.Result(state, action))
		if err != nil {
			return 0, err
		}
		v = math.Max(v, child)
	}

	return v, nil
}

func (that *minimaxSearch[S, M]) minValue(state S) (float64, error) {
	if err := that.visit(); err != nil {
		return 0, err
	}

	if that.game.TerminalTest(state) {
		return that.game.Utility(state, that.player), nil
	}

	v := posInf
	for _, action := range that.game.Actions(state) {
		child, err := that.maxValue(that.game.Result(state, action))
		if err != nil {
			return 0, err
		}
		v = math.Min(v, child)
	}

	return v, nil
}

func (that *minimaxSearch[S, M]) visit() error {
	that.nodes++

	return that.ctx.Err()
}
