package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrInvalidBoard     = errors.New("invalid board dimensions")
	ErrUnknownStrategy  = errors.New("unknown strategy")
	ErrNotFound         = errors.New("not found")
	ErrInvalidMatchSize = errors.New("number of matches out of range")
	ErrInvalidMark      = errors.New("mark must be X or O")
	ErrInvalidPosition  = errors.New("position cannot arise in play")
)
