package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-negamax/internal/entity"
)

// renderGame prints the grid, empty cells showing their index, followed by the
// status line and the serialized board.
func renderGame(writer io.Writer, game *entity.Game) {
	fmt.Fprint(writer, renderGrid(game.Board))
	fmt.Fprintf(writer, "mode: %s\n", renderMode(game))
	fmt.Fprintf(writer, "status: %s\n", renderStatus(game))
	fmt.Fprintf(writer, "board: %s\n", game.Board)
}

func renderGrid(board entity.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString("|")
			}

			cell := row*3 + col
			mark := strconv.Itoa(cell)
			if owner := board[cell].Owner(); owner.IsValid() {
				mark = owner.String()
			}

			sb.WriteString(" " + mark + " ")
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

func renderMode(game *entity.Game) string {
	if game.IsWithBot() {
		return fmt.Sprintf("%s (AI plays %s)", game.Mode, game.BotPlayer)
	}

	return game.Mode
}

func renderStatus(game *entity.Game) string {
	switch game.Status {
	case entity.StatusInProgress:
		return fmt.Sprintf("in progress, %s to move", game.Turn)
	case entity.StatusWon:
		return fmt.Sprintf("%s wins", game.Winner)
	case entity.StatusDrawn:
		return "draw"
	default:
		return "not started"
	}
}
