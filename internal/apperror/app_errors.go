package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrOutOfRange       = errors.New("row and column must be between 1 and 3")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrMalformedInput   = errors.New("expected two numbers, row and column")
	ErrInputClosed      = errors.New("input stream is closed")
)
