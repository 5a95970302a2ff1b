package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-search/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-search/internal/entity"
)

func cell(x, y int) entity.Cell {
	return entity.Cell{X: x, Y: y}
}

func TestNew(t *testing.T) {
	t.Run("Initial state", func(t *testing.T) {
		// When: creating the classic game
		game := NewClassic()

		// Then: X moves first on an empty board with every cell available in row-major order
		initial := game.Initial()
		assert.Equal(t, entity.PlayerX, game.ToMove(initial))
		assert.Empty(t, initial.Board)
		assert.Zero(t, initial.Utility)
		assert.Equal(t, []entity.Cell{
			cell(1, 1), cell(1, 2), cell(1, 3),
			cell(2, 1), cell(2, 2), cell(2, 3),
			cell(3, 1), cell(3, 2), cell(3, 3),
		}, game.Actions(initial))
		assert.False(t, game.TerminalTest(initial))
	})

	t.Run("Invalid dimensions", func(t *testing.T) {
		for _, dims := range [][3]int{{0, 3, 3}, {3, -1, 3}, {3, 3, 0}, {3, 3, 4}} {
			_, err := New(dims[0], dims[1], dims[2])
			require.ErrorIs(t, err, apperror.ErrInvalidBoard, "dims %v", dims)
		}
	})

	t.Run("Rectangular board", func(t *testing.T) {
		game, err := New(2, 4, 3)
		require.NoError(t, err)

		assert.Len(t, game.Actions(game.Initial()), 8)
	})
}

func TestGame_Result(t *testing.T) {
	game := NewClassic()

	t.Run("Places the mark and switches the mover", func(t *testing.T) {
		// Given: the initial state
		initial := game.Initial()

		// When: X plays the center
		next := game.Result(initial, cell(2, 2))

		// Then: a new state reflects the move
		assert.Equal(t, entity.PlayerO, next.ToMove)
		assert.Equal(t, entity.PlayerX, next.Mark(cell(2, 2)))
		assert.NotContains(t, next.Moves, cell(2, 2))
		assert.Len(t, next.Moves, 8)

		// Then: the original state is untouched
		assert.Empty(t, initial.Board)
		assert.Len(t, initial.Moves, 9)
		assert.Equal(t, entity.PlayerX, initial.ToMove)
	})

	t.Run("Is repeatable", func(t *testing.T) {
		state := game.Result(game.Initial(), cell(1, 1))

		first := game.Result(state, cell(3, 3))
		second := game.Result(state, cell(3, 3))

		assert.Equal(t, first, second)
		assert.Equal(t, entity.EmptyCell, state.Mark(cell(3, 3)))
	})

	t.Run("Sibling branches do not share the board", func(t *testing.T) {
		state := game.Result(game.Initial(), cell(1, 1))

		left := game.Result(state, cell(1, 2))
		right := game.Result(state, cell(2, 1))

		assert.Equal(t, entity.EmptyCell, left.Mark(cell(2, 1)))
		assert.Equal(t, entity.EmptyCell, right.Mark(cell(1, 2)))
	})

	t.Run("Illegal move is a no-op", func(t *testing.T) {
		// Given: a state where (1,1) is taken
		state := game.Result(game.Initial(), cell(1, 1))

		// When: playing an occupied or off-board cell
		// Then: the same state comes back
		assert.Equal(t, state, game.Result(state, cell(1, 1)))
		assert.Equal(t, state, game.Result(state, cell(7, 7)))
	})

	t.Run("Caches the utility of a win", func(t *testing.T) {
		// Given: X about to complete the top row
		state, err := game.GenState(entity.PlayerX,
			[]entity.Cell{cell(1, 1), cell(1, 2)},
			[]entity.Cell{cell(2, 1), cell(2, 2)},
		)
		require.NoError(t, err)

		// When: X completes it
		won := game.Result(state, cell(1, 3))

		// Then: the state is terminal and scored for X
		assert.Equal(t, 1, won.Utility)
		assert.True(t, game.TerminalTest(won))
		assert.InDelta(t, 1, game.Utility(won, entity.PlayerX), 0)
		assert.InDelta(t, -1, game.Utility(won, entity.PlayerO), 0)
		assert.Equal(t, entity.PlayerX, won.Winner())
	})

	t.Run("Scores an O win negatively", func(t *testing.T) {
		state, err := game.GenState(entity.PlayerO,
			[]entity.Cell{cell(1, 1), cell(1, 2), cell(2, 1)},
			[]entity.Cell{cell(1, 3), cell(2, 2)},
		)
		require.NoError(t, err)

		won := game.Result(state, cell(3, 1))

		assert.Equal(t, -1, won.Utility)
		assert.InDelta(t, 1, game.Utility(won, entity.PlayerO), 0)
	})
}

func TestGame_TerminalTest(t *testing.T) {
	game := NewClassic()

	t.Run("Full board", func(t *testing.T) {
		// Given: a tied, full board
		state, err := game.GenState(entity.PlayerX,
			[]entity.Cell{cell(1, 1), cell(1, 3), cell(2, 2), cell(2, 3), cell(3, 2)},
			[]entity.Cell{cell(1, 2), cell(2, 1), cell(3, 1), cell(3, 3)},
		)
		require.NoError(t, err)

		// Then: it is terminal with nothing left to play
		assert.True(t, game.TerminalTest(state))
		assert.Empty(t, game.Actions(state))
		assert.Zero(t, game.Utility(state, entity.PlayerX))
		assert.Equal(t, entity.PlayerTie, state.Winner())
	})

	t.Run("Won before the board is full", func(t *testing.T) {
		state, err := game.GenState(entity.PlayerO,
			[]entity.Cell{cell(1, 1), cell(2, 2), cell(3, 3)},
			[]entity.Cell{cell(1, 2), cell(1, 3)},
		)
		require.NoError(t, err)

		assert.True(t, game.TerminalTest(state))
		assert.NotEmpty(t, game.Actions(state))
	})
}

func TestGame_kInRow(t *testing.T) {
	t.Run("Four in a row on a larger board", func(t *testing.T) {
		game, err := New(5, 5, 4)
		require.NoError(t, err)

		board := map[entity.Cell]string{
			cell(2, 2): entity.PlayerO,
			cell(3, 3): entity.PlayerO,
			cell(4, 4): entity.PlayerO,
		}

		// Then: three are not enough when k=4
		assert.False(t, game.kInRow(board, cell(3, 3), entity.PlayerO, cell(1, 1)))

		board[cell(5, 5)] = entity.PlayerO
		assert.True(t, game.kInRow(board, cell(3, 3), entity.PlayerO, cell(1, 1)))
	})

	t.Run("Anti-diagonal", func(t *testing.T) {
		game := NewClassic()
		board := map[entity.Cell]string{
			cell(1, 3): entity.PlayerX,
			cell(2, 2): entity.PlayerX,
			cell(3, 1): entity.PlayerX,
		}

		assert.Equal(t, 1, game.computeUtility(board, cell(2, 2), entity.PlayerX))
	})
}

func TestGame_Play(t *testing.T) {
	game := NewClassic()

	t.Run("Valid turn", func(t *testing.T) {
		next, err := game.Play(game.Initial(), cell(1, 1))

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, next.Mark(cell(1, 1)))
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		state := game.Result(game.Initial(), cell(1, 1))

		_, err := game.Play(state, cell(1, 1))

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		_, err := game.Play(game.Initial(), cell(0, 4))

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		state, err := game.GenState(entity.PlayerO,
			[]entity.Cell{cell(1, 1), cell(1, 2), cell(1, 3)},
			[]entity.Cell{cell(2, 2), cell(3, 2)},
		)
		require.NoError(t, err)

		_, err = game.Play(state, cell(3, 3))

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_GenState(t *testing.T) {
	game := NewClassic()

	t.Run("Builds the board and the remaining moves", func(t *testing.T) {
		state, err := game.GenState(entity.PlayerO, []entity.Cell{cell(2, 2)}, nil)

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, state.ToMove)
		assert.Len(t, state.Moves, 8)
		assert.Zero(t, state.Utility)
	})

	t.Run("Rejects overlapping marks", func(t *testing.T) {
		_, err := game.GenState(entity.PlayerX, []entity.Cell{cell(1, 1)}, []entity.Cell{cell(1, 1)})

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Rejects cells off the board", func(t *testing.T) {
		_, err := game.GenState(entity.PlayerX, []entity.Cell{cell(4, 1)}, nil)

		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Rejects a board where both sides have a line", func(t *testing.T) {
		// Given: X holds the first row and O the second
		xs := []entity.Cell{cell(1, 1), cell(1, 2), cell(1, 3)}
		os := []entity.Cell{cell(2, 1), cell(2, 2), cell(2, 3)}

		// When: the state is built many times
		for range 50 {
			_, err := game.GenState(entity.PlayerX, xs, os)

			// Then: it is refused every time
			require.ErrorIs(t, err, apperror.ErrInvalidPosition)
		}
	})

	t.Run("Caches the winner of a finished board", func(t *testing.T) {
		xs := []entity.Cell{cell(1, 1), cell(2, 2), cell(3, 1)}
		os := []entity.Cell{cell(1, 3), cell(2, 3), cell(3, 3)}

		for range 50 {
			state, err := game.GenState(entity.PlayerX, xs, os)

			require.NoError(t, err)
			assert.Equal(t, -1, state.Utility)
			assert.Equal(t, float64(-1), game.Utility(state, entity.PlayerX))
		}
	})
}

func TestGame_Actions(t *testing.T) {
	t.Run("Changing the returned moves leaves the state intact", func(t *testing.T) {
		// Given: the initial state of a fresh game
		game := NewClassic()
		actions := game.Actions(game.Initial())

		// When: the caller overwrites the returned slice
		for i := range actions {
			actions[i] = cell(3, 3)
		}

		// Then: later sessions still start from every cell in row-major order
		fresh := game.Actions(game.Initial())
		require.Len(t, fresh, 9)
		assert.Equal(t, cell(1, 1), fresh[0])
		assert.Equal(t, cell(1, 2), fresh[1])
		assert.Len(t, game.Initial().Moves, 9)
		assert.Equal(t, cell(1, 1), game.Initial().Moves[0])
	})
}

func TestGame_Display(t *testing.T) {
	game := NewClassic()

	state, err := game.GenState(entity.PlayerX,
		[]entity.Cell{cell(1, 1), cell(3, 3)},
		[]entity.Cell{cell(2, 2)},
	)
	require.NoError(t, err)

	assert.Equal(t, "X . .\n. O .\n. . X", game.Display(state))
}
