package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// parseMove - parses a "row col" line into 1-based coordinates.
// A comma is tolerated as a separator. Range checking is the board's job.
func parseMove(raw string) (int, int, error) {
	raw = strings.ReplaceAll(raw, ",", " ")

	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: got %d values", apperror.ErrMalformedInput, len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a number", apperror.ErrMalformedInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a number", apperror.ErrMalformedInput, fields[1])
	}

	return row, col, nil
}

// moveErrorMessage - maps a rejected move to the message shown to the player.
func moveErrorMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrMalformedInput):
		return `Please enter two numbers between 1 and 3, e.g. "1 3".`
	case errors.Is(err, apperror.ErrOutOfRange):
		return "That cell is out of range, rows and columns go from 1 to 3."
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken, pick an empty one."
	default:
		return err.Error()
	}
}
