package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = "."
)

var ErrInvalidCellKey = errors.New("invalid cell key")

// Cell is a 1-based board coordinate: X is the row, Y is the column.
// In JSON it is always the string "x,y", both as a value and as a map key.
type Cell struct {
	X int
	Y int
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d,%d)", that.X, that.Y)
}

// MarshalText - encodes the cell as "x,y" so it can be used as a JSON object key.
func (that Cell) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(that.X) + "," + strconv.Itoa(that.Y)), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	x, y, ok := strings.Cut(string(text), ",")
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCellKey, text)
	}

	var err error
	if that.X, err = strconv.Atoi(x); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidCellKey, text)
	}

	if that.Y, err = strconv.Atoi(y); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidCellKey, text)
	}

	return nil
}

// State is one position of a game. States are never modified after construction;
// a move always produces a new State.
type State struct {
	ToMove string `json:"to_move"`
	// Utility is cached when the state is built: +1 when X has won, -1 when O has won, 0 otherwise.
	Utility int             `json:"utility"`
	Board   map[Cell]string `json:"board"`
	Moves   []Cell          `json:"moves"`
}

// Mark - returns the mark at cell, or EmptyCell.
func (that State) Mark(cell Cell) string {
	if mark, ok := that.Board[cell]; ok {
		return mark
	}

	return EmptyCell
}

// Winner - returns the winning mark, PlayerTie for a full board without a winner, or "" while ongoing.
func (that State) Winner() string {
	switch {
	case that.Utility > 0:
		return PlayerX
	case that.Utility < 0:
		return PlayerO
	case len(that.Moves) == 0:
		return PlayerTie
	default:
		return ""
	}
}

// Opponent - returns the other mark.
func Opponent(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}

	return PlayerX
}
