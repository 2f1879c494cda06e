package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	Size  = 3
	Cells = Size * Size
)

// Board is a 3x3 grid stored row-major. It is a value type: assigning it copies all cells.
type Board [Cells]Mark

func NewBoard() Board {
	return Board{}
}

// BoardFrom - copy-constructs a board from an existing cell sequence.
func BoardFrom(cells [Cells]Mark) Board {
	return Board(cells)
}

func (that Board) Clone() Board {
	return that
}

func (that Board) IsEmpty() bool {
	for _, cell := range that {
		if cell != Empty {
			return false
		}
	}

	return true
}

// EmptyCells returns the free indices in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, Cells)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// ApplyMove places mark at index. Whether the game is already over is the caller's concern.
func (that *Board) ApplyMove(index int, mark Mark) error {
	if index < 0 || index >= Cells {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrIllegalMove, index)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %d is not a player mark", apperror.ErrIllegalMove, mark)
	}

	if that[index] != Empty {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrIllegalMove, index)
	}

	that[index] = mark

	return nil
}

func (that Board) Winner() Outcome {
	if line, ok := that.WinningLine(); ok {
		return OutcomeFor(that[line.Cells[0]])
	}

	// the game will continue until all the squares are full
	for _, cell := range that {
		if cell == Empty {
			return NoneYet
		}
	}

	return Draw
}

// WinningLine returns the first complete line, if any.
func (that Board) WinningLine() (Line, bool) {
	for _, line := range WinCombos {
		a, b, c := that[line.Cells[0]], that[line.Cells[1]], that[line.Cells[2]]
		if a != Empty && a == b && b == c {
			return line, true
		}
	}

	return Line{}, false
}

// WinningLines returns every complete line. Legal play never produces more than one.
func (that Board) WinningLines() []Line {
	var lines []Line
	for _, line := range WinCombos {
		a, b, c := that[line.Cells[0]], that[line.Cells[1]], that[line.Cells[2]]
		if a != Empty && a == b && b == c {
			lines = append(lines, line)
		}
	}

	return lines
}
