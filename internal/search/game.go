// Package search holds the two-player, zero-sum game contract and the exact
// tree-search procedures (minimax and alpha-beta) that pick an optimal move.
package search

import (
	"errors"
	"math"
)

// ErrNoActions is returned when a decision is requested from a state with no legal moves.
var ErrNoActions = errors.New("no actions available")

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// Game is the capability set a concrete ruleset must provide.
//
// Result must return the state unchanged for a move that is not in Actions(state),
// and must never mutate the state it was given. Utility must be antisymmetric:
// Utility(s, a) == -Utility(s, b) for the two players a and b.
type Game[S any, M comparable] interface {
	Actions(state S) []M
	Result(state S, move M) S
	Utility(state S, player string) float64
	TerminalTest(state S) bool
	ToMove(state S) string
}

// Playable is a Game that knows its starting position and how to render a state.
type Playable[S any, M comparable] interface {
	Game[S, M]

	Initial() S
	Display(state S) string
}

// NoActionsLeft - the default terminal policy: a state is terminal when it has no legal moves.
func NoActionsLeft[S any, M comparable](game Game[S, M], state S) bool {
	return len(game.Actions(state)) == 0
}

// Decision is the outcome of a search from one root state.
type Decision[M comparable] struct {
	Move M
	// Value is the game-theoretic value of Move from the root mover's viewpoint.
	Value float64
	// Nodes counts the states evaluated, the root excluded.
	Nodes int
}
