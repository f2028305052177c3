package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-negamax/internal/apperror"
)

const BoardSize = 9

// InitialState is the serialized empty board.
const InitialState = "000000000"

// Cell is the occupancy of a single square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellPlayer0
	CellPlayer1
)

// Owner returns the player holding the cell, or NoPlayer for an empty cell.
func (that Cell) Owner() Player {
	switch that {
	case CellPlayer0:
		return Player0
	case CellPlayer1:
		return Player1
	default:
		return NoPlayer
	}
}

// Board is a row-major 3x3 grid, index = row*3+col.
type Board [BoardSize]Cell

// WinCombos are the rows, columns and diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Winner returns the owner of the first fully owned line.
func (that Board) Winner() (Player, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != CellEmpty && a == b && b == c {
			return a.Owner(), true
		}
	}

	return NoPlayer, false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == CellEmpty {
			return false
		}
	}

	return true
}

func (that Board) IsDraw() bool {
	if _, ok := that.Winner(); ok {
		return false
	}

	return that.IsFull()
}

// EmptyCells lists the free indexes in scan order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == CellEmpty {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) Count(player Player) int {
	mark := player.Mark()
	if mark == CellEmpty {
		return 0
	}

	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

// Mover returns the player whose turn it is under strict alternation.
func (that Board) Mover() Player {
	if that.Count(Player0) > that.Count(Player1) {
		return Player1
	}

	return Player0
}

// String serializes the board: '0' empty, '1' player 0, '2' player 1.
func (that Board) String() string {
	buf := make([]byte, BoardSize)
	for i, cell := range that {
		buf[i] = '0' + byte(cell)
	}

	return string(buf)
}

func (that Board) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Board) UnmarshalText(text []byte) error {
	if err := ValidateBoardString(string(text)); err != nil {
		return err
	}

	*that = ParseBoard(string(text))

	return nil
}

// ParseBoard reads a board leniently: unknown characters become empty cells,
// input past 9 characters is ignored and missing cells stay empty.
func ParseBoard(state string) Board {
	var board Board

	for i := 0; i < BoardSize && i < len(state); i++ {
		switch state[i] {
		case '1':
			board[i] = CellPlayer0
		case '2':
			board[i] = CellPlayer1
		default:
			board[i] = CellEmpty
		}
	}

	return board
}

// ValidateBoardString reports whether state is exactly 9 characters over {'0','1','2'}.
func ValidateBoardString(state string) error {
	if len(state) != BoardSize {
		return fmt.Errorf("%w: length %d", apperror.ErrMalformedBoard, len(state))
	}

	for i := 0; i < len(state); i++ {
		if state[i] < '0' || state[i] > '2' {
			return fmt.Errorf("%w: character %q at %d", apperror.ErrMalformedBoard, state[i], i)
		}
	}

	return nil
}
