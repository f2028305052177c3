package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-negamax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/tictactoe"
)

var (
	ErrNotBotTurn       = errors.New("it's not the bot's turn")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn plays the negamax move for the game's bot player.
func (that *botService) MakeTurn(game *entity.Game) error {
	if !game.IsBotTurn() {
		return ErrNotBotTurn
	}

	chosenCell, ok := tictactoe.BestMove(&game.Board, game.BotPlayer)
	if !ok {
		return ErrNoAvailableMoves
	}

	if err := game.Place(game.BotPlayer, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
