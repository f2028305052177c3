package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-negamax/internal/entity"
)

// winScore is the value of a win on the first ply; every extra ply costs one point.
const winScore = 10

// BestMove returns the empty cell that maximizes player's outcome under optimal play.
// Ties keep the first cell in scan order. ok is false when the board is full.
// The board is mutated during the search and restored before returning.
func BestMove(board *entity.Board, player entity.Player) (int, bool) {
	bestCell := -1
	bestScore := math.MinInt

	for cell := range board {
		if board[cell] != entity.CellEmpty {
			continue
		}

		score := tryCell(board, player, cell, 1)
		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell, bestCell >= 0
}

// Evaluate returns the negamax score of board for the player to move.
// A full board scores 0.
func Evaluate(board *entity.Board, player entity.Player) int {
	return negamax(board, player, 1)
}

func negamax(board *entity.Board, player entity.Player, depth int) int {
	best := math.MinInt

	for cell := range board {
		if board[cell] != entity.CellEmpty {
			continue
		}

		if score := tryCell(board, player, cell, depth); score > best {
			best = score
		}
	}

	if best == math.MinInt {
		return 0
	}

	return best
}

// tryCell places player's mark on cell, scores the result and undoes the placement.
func tryCell(board *entity.Board, player entity.Player, cell, depth int) int {
	board[cell] = player.Mark()
	defer func() { board[cell] = entity.CellEmpty }()

	if winner, ok := board.Winner(); ok && winner == player {
		return winScore - depth
	}

	if board.IsFull() {
		return 0
	}

	return -negamax(board, player.Opponent(), depth+1)
}
