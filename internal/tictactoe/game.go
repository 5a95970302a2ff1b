// Package tictactoe implements k-in-a-row on an h x v board as a search.Game.
package tictactoe

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-search/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-search/internal/entity"
)

const (
	DefaultSize = 3
	DefaultK    = 3
)

// directions through a cell along which a line can be completed.
var directions = [4]entity.Cell{
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 1, Y: -1},
	{X: 1, Y: 1},
}

// Game is tic-tac-toe on an H x V board where K marks in a row win. X moves first.
type Game struct {
	H int
	V int
	K int

	initial entity.State
}

// New - creates a game, h rows by v columns, won by k in a row.
func New(h, v, k int) (*Game, error) {
	if h < 1 || v < 1 || k < 1 || (k > h && k > v) {
		return nil, fmt.Errorf("%w: h=%d v=%d k=%d", apperror.ErrInvalidBoard, h, v, k)
	}

	game := &Game{H: h, V: v, K: k}
	game.initial = entity.State{
		ToMove:  entity.PlayerX,
		Utility: 0,
		Board:   map[entity.Cell]string{},
		Moves:   game.allCells(),
	}

	return game, nil
}

// NewClassic - the 3x3 game with three in a row.
func NewClassic() *Game {
	game, _ := New(DefaultSize, DefaultSize, DefaultK)

	return game
}

func (that *Game) Initial() entity.State {
	return that.initial
}

// Actions - legal moves are the cells not taken yet, as a copy the caller may modify.
func (that *Game) Actions(state entity.State) []entity.Cell {
	return slices.Clone(state.Moves)
}

// Result - places the mover's mark on move. A move that is not legal in state has no effect.
func (that *Game) Result(state entity.State, move entity.Cell) entity.State {
	if !lo.Contains(state.Moves, move) {
		return state
	}

	board := make(map[entity.Cell]string, len(state.Board)+1)
	for cell, mark := range state.Board {
		board[cell] = mark
	}
	board[move] = state.ToMove

	moves := make([]entity.Cell, 0, len(state.Moves)-1)
	for _, cell := range state.Moves {
		if cell != move {
			moves = append(moves, cell)
		}
	}

	return entity.State{
		ToMove:  entity.Opponent(state.ToMove),
		Utility: that.computeUtility(board, move, state.ToMove),
		Board:   board,
		Moves:   moves,
	}
}

// Utility - 1 for a win, -1 for a loss, 0 otherwise, from player's side.
func (that *Game) Utility(state entity.State, player string) float64 {
	if player == entity.PlayerX {
		return float64(state.Utility)
	}

	return float64(-state.Utility)
}

// TerminalTest - a state is terminal once it is won or there are no empty cells.
func (that *Game) TerminalTest(state entity.State) bool {
	return state.Utility != 0 || len(state.Moves) == 0
}

func (that *Game) ToMove(state entity.State) string {
	return state.ToMove
}

// Display - renders the board one row per line, "." for empty cells.
func (that *Game) Display(state entity.State) string {
	lines := lo.Map(that.Rows(state), func(row []string, _ int) string {
		return strings.Join(row, " ")
	})

	return strings.Join(lines, "\n")
}

// Rows - the board as a grid of marks.
func (that *Game) Rows(state entity.State) [][]string {
	rows := make([][]string, 0, that.H)
	for x := 1; x <= that.H; x++ {
		row := make([]string, 0, that.V)
		for y := 1; y <= that.V; y++ {
			row = append(row, state.Mark(entity.Cell{X: x, Y: y}))
		}
		rows = append(rows, row)
	}

	return rows
}

// Play - applies a move the way a human turn is applied: unlike Result, an illegal move is an error.
func (that *Game) Play(state entity.State, move entity.Cell) (entity.State, error) {
	if that.TerminalTest(state) {
		return state, apperror.ErrGameFinished
	}

	if !that.inBounds(move) {
		return state, fmt.Errorf("%w: cell %s", apperror.ErrInvalidCell, move)
	}

	if !lo.Contains(state.Moves, move) {
		return state, fmt.Errorf("%w: cell %s", apperror.ErrCellOccupied, move)
	}

	return that.Result(state, move), nil
}

// GenState - builds the state with the given marks on the board and toMove to play.
func (that *Game) GenState(toMove string, xPositions, oPositions []entity.Cell) (entity.State, error) {
	board := make(map[entity.Cell]string, len(xPositions)+len(oPositions))

	place := func(cells []entity.Cell, mark string) error {
		for _, cell := range cells {
			if !that.inBounds(cell) {
				return fmt.Errorf("%w: cell %s", apperror.ErrInvalidCell, cell)
			}

			if _, ok := board[cell]; ok {
				return fmt.Errorf("%w: cell %s", apperror.ErrCellOccupied, cell)
			}
			board[cell] = mark
		}

		return nil
	}

	if err := place(xPositions, entity.PlayerX); err != nil {
		return entity.State{}, err
	}

	if err := place(oPositions, entity.PlayerO); err != nil {
		return entity.State{}, err
	}

	moves := lo.Filter(that.allCells(), func(cell entity.Cell, _ int) bool {
		_, taken := board[cell]
		return !taken
	})

	xWins := lo.SomeBy(xPositions, func(cell entity.Cell) bool {
		return that.computeUtility(board, cell, entity.PlayerX) != 0
	})
	oWins := lo.SomeBy(oPositions, func(cell entity.Cell) bool {
		return that.computeUtility(board, cell, entity.PlayerO) != 0
	})

	utility := 0
	switch {
	case xWins && oWins:
		return entity.State{}, fmt.Errorf("%w: both X and O have %d in a row", apperror.ErrInvalidPosition, that.K)
	case xWins:
		utility = 1
	case oWins:
		utility = -1
	}

	return entity.State{
		ToMove:  toMove,
		Utility: utility,
		Board:   board,
		Moves:   moves,
	}, nil
}

// computeUtility - 1 if X just won with move, -1 if O did, else 0.
func (that *Game) computeUtility(board map[entity.Cell]string, move entity.Cell, player string) int {
	for _, delta := range directions {
		if that.kInRow(board, move, player, delta) {
			if player == entity.PlayerX {
				return 1
			}
			return -1
		}
	}

	return 0
}

// kInRow - whether the line through move along delta holds at least K marks of player.
func (that *Game) kInRow(board map[entity.Cell]string, move entity.Cell, player string, delta entity.Cell) bool {
	n := 0

	for x, y := move.X, move.Y; board[entity.Cell{X: x, Y: y}] == player; x, y = x+delta.X, y+delta.Y {
		n++
	}

	for x, y := move.X, move.Y; board[entity.Cell{X: x, Y: y}] == player; x, y = x-delta.X, y-delta.Y {
		n++
	}

	// move itself was counted twice
	n--

	return n >= that.K
}

func (that *Game) inBounds(cell entity.Cell) bool {
	return cell.X >= 1 && cell.X <= that.H && cell.Y >= 1 && cell.Y <= that.V
}

func (that *Game) allCells() []entity.Cell {
	cells := make([]entity.Cell, 0, that.H*that.V)
	for x := 1; x <= that.H; x++ {
		for y := 1; y <= that.V; y++ {
			cells = append(cells, entity.Cell{X: x, Y: y})
		}
	}

	return cells
}
