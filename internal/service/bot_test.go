package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-negamax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBotGame(t *testing.T, state string, bot entity.Player) *entity.Game {
	t.Helper()

	game, err := entity.NewGame("g1", entity.BotMode, bot)
	require.NoError(t, err)

	game.Load(state)

	return game
}

func TestBotService_MakeTurn(t *testing.T) {
	bot := NewBotService()

	t.Run("Bot blocks the human's line", func(t *testing.T) {
		// Given: O _ _ / _ _ _ / X X _ with the bot (O) to move
		game := newBotGame(t, "200000110", entity.Player1)

		// When: the bot makes its turn
		err := bot.MakeTurn(game)
		require.NoError(t, err)

		// Then: the bot takes cell 8 and the turn returns to X
		assert.Equal(t, entity.CellPlayer1, game.Board[8])
		assert.Equal(t, entity.Player0, game.Turn)
		assert.Equal(t, entity.StatusInProgress, game.Status)
	})

	t.Run("Bot finishes the game with a win", func(t *testing.T) {
		// Given: the bot (O) has two in the middle row
		game := newBotGame(t, "110220100", entity.Player1)

		// When: the bot makes its turn
		require.NoError(t, bot.MakeTurn(game))

		// Then: O completes the middle row
		assert.Equal(t, entity.StatusWon, game.Status)
		assert.Equal(t, entity.Player1, game.Winner)
		assert.Equal(t, "110222100", game.Board.String())
	})

	t.Run("Bot opens as the first player", func(t *testing.T) {
		game := newBotGame(t, entity.InitialState, entity.Player0)

		require.NoError(t, bot.MakeTurn(game))

		assert.Equal(t, "100000000", game.Board.String())
		assert.Equal(t, entity.Player1, game.Turn)
	})

	t.Run("Error when it is not the bot's turn", func(t *testing.T) {
		game := newBotGame(t, entity.InitialState, entity.Player1)

		err := bot.MakeTurn(game)

		require.ErrorIs(t, err, ErrNotBotTurn)
		assert.Equal(t, entity.InitialState, game.Board.String())
	})

	t.Run("Error on a finished game", func(t *testing.T) {
		game := newBotGame(t, "121122211", entity.Player1)

		require.ErrorIs(t, bot.MakeTurn(game), ErrNotBotTurn)
	})
}
