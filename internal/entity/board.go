package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	BoardSize = 3

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored as a flat row-major array.
// Rows and columns exposed to callers are 1-based.
type Board [9]string

// cellIndex maps a 1-based (row, col) pair to a flat index.
func cellIndex(row, col int) int {
	return (row-1)*BoardSize + (col - 1)
}

// Place - puts a mark on the given cell.
// The board is left untouched when the move is rejected.
func (that *Board) Place(row, col int, mark string) error {
	if row < 1 || row > BoardSize || col < 1 || col > BoardSize {
		return fmt.Errorf("%w: got (%d, %d)", apperror.ErrOutOfRange, row, col)
	}

	idx := cellIndex(row, col)
	if that[idx] != EmptyCell {
		return fmt.Errorf("%w: cell (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	that[idx] = mark

	return nil
}

func (that *Board) Cell(row, col int) string {
	return that[cellIndex(row, col)]
}

// AvailableCells - returns the flat indices of all empty cells.
func (that *Board) AvailableCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// Winner - returns the mark holding a full row, column or diagonal,
// or EmptyCell when there is no winner.
func (that *Board) Winner() string {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Board) IsTerminal() bool {
	return that.Winner() != EmptyCell || that.IsFull()
}

// Render - returns the human-readable board, empty cells shown as blanks:
//
//	 X | O |
//	---+---+---
//	   | X |
//	---+---+---
//	   |   | O
func (that *Board) Render() string {
	rows := make([]string, 0, BoardSize)

	for r := 0; r < BoardSize; r++ {
		cells := make([]string, 0, BoardSize)
		for c := 0; c < BoardSize; c++ {
			cell := that[r*BoardSize+c]
			if cell == EmptyCell {
				cell = " "
			}
			cells = append(cells, cell)
		}
		rows = append(rows, " "+strings.Join(cells, " | ")+" ")
	}

	return strings.Join(rows, "\n---+---+---\n")
}
