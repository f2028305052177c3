package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-negamax/internal/apperror"
)

const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDrawn      = "drawn"
)

const (
	PvPMode = "pvp"
	BotMode = "bot"
)

var (
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrUnknownGameMode   = errors.New("unknown game mode")
)

type Game struct {
	ID        string `json:"id"`
	Board     Board  `json:"board"`
	Turn      Player `json:"turn"`
	Winner    Player `json:"winner"`
	Status    string `json:"status"`
	Mode      string `json:"mode"`
	BotPlayer Player `json:"bot_player"`
}

// NewGame returns a game that is not started yet. botPlayer is ignored outside BotMode.
func NewGame(id, mode string, botPlayer Player) (*Game, error) {
	switch mode {
	case PvPMode:
		botPlayer = NoPlayer
	case BotMode:
		if !botPlayer.IsValid() {
			return nil, fmt.Errorf("invalid bot player %d", botPlayer)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownGameMode, mode)
	}

	return &Game{
		ID:        id,
		Turn:      Player0,
		Winner:    NoPlayer,
		Status:    StatusNotStarted,
		Mode:      mode,
		BotPlayer: botPlayer,
	}, nil
}

// Start moves a not started game into play; other states are left untouched.
func (that *Game) Start() {
	if !that.IsNotStarted() {
		return
	}

	that.Turn = that.Board.Mover()
	that.Status = StatusInProgress
	that.UpdateGameState()
}

// Stop clears the board and returns the game to the not started state.
func (that *Game) Stop() {
	that.Board = Board{}
	that.Turn = Player0
	that.Winner = NoPlayer
	that.Status = StatusNotStarted
}

// Load replaces the board with a leniently parsed state string and restarts play.
func (that *Game) Load(state string) {
	that.Stop()
	that.Board = ParseBoard(state)
	that.Start()
}

func (that *Game) Place(player Player, cell int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != CellEmpty {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = player.Mark()
	that.Turn = player.Opponent()

	that.UpdateGameState()

	return nil
}

// UpdateGameState is the end-of-turn evaluation.
func (that *Game) UpdateGameState() {
	if winner, ok := that.Board.Winner(); ok {
		that.Winner = winner
		that.Status = StatusWon
		that.Turn = NoPlayer
		return
	}

	if that.Board.IsFull() {
		that.Winner = NoPlayer
		that.Status = StatusDrawn
		that.Turn = NoPlayer
		return
	}

	that.Status = StatusInProgress
}

func (that *Game) IsNotStarted() bool {
	return that.Status == StatusNotStarted
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsNotStarted():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Mode == BotMode
}

func (that *Game) IsBotTurn() bool {
	return that.IsWithBot() && that.IsOngoing() && that.Turn == that.BotPlayer
}
