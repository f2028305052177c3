package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-negamax/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStartedGame(t *testing.T, mode string) *Game {
	t.Helper()

	game, err := NewGame("123", mode, Player1)
	require.NoError(t, err)

	game.Start()

	return game
}

func TestNewGame(t *testing.T) {
	t.Run("PvP game ignores the bot player", func(t *testing.T) {
		// When: creating a new PvP game
		game, err := NewGame("123", PvPMode, Player1)
		require.NoError(t, err)

		// Then: the game is not started, X moves first and there is no bot
		expectedGame := &Game{
			ID:        "123",
			Board:     Board{},
			Turn:      Player0,
			Winner:    NoPlayer,
			Status:    StatusNotStarted,
			Mode:      PvPMode,
			BotPlayer: NoPlayer,
		}
		require.Equal(t, expectedGame, game)
	})

	t.Run("Bot game keeps the bot player", func(t *testing.T) {
		game, err := NewGame("123", BotMode, Player0)
		require.NoError(t, err)

		assert.Equal(t, Player0, game.BotPlayer)
		assert.True(t, game.IsWithBot())
	})

	t.Run("Unknown mode", func(t *testing.T) {
		_, err := NewGame("123", "network", Player1)

		require.ErrorIs(t, err, ErrUnknownGameMode)
	})

	t.Run("Bot game with an invalid bot player", func(t *testing.T) {
		_, err := NewGame("123", BotMode, NoPlayer)

		require.Error(t, err)
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is in progress", func(t *testing.T) {
		game := &Game{Status: StatusInProgress}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted when game is not started", func(t *testing.T) {
		game := &Game{Status: StatusNotStarted}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is won or drawn", func(t *testing.T) {
		assert.ErrorIs(t, (&Game{Status: StatusWon}).ConfirmOngoingState(), apperror.ErrGameFinished)
		assert.ErrorIs(t, (&Game{Status: StatusDrawn}).ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmOngoingState()

		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestGame_Place(t *testing.T) {
	t.Run("Successful placement switches the turn", func(t *testing.T) {
		// Given: a started game
		game := newStartedGame(t, PvPMode)

		// When: player 0 places on cell 4
		err := game.Place(Player0, 4)
		require.NoError(t, err)

		// Then: the mark is on the board and it is player 1's turn
		assert.Equal(t, "000010000", game.Board.String())
		assert.Equal(t, Player1, game.Turn)
		assert.Equal(t, StatusInProgress, game.Status)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: cell 0 is occupied by player 0
		game := newStartedGame(t, PvPMode)
		require.NoError(t, game.Place(Player0, 0))
		before := *game

		// When: player 1 plays the same cell
		err := game.Place(Player1, 0)

		// Then: the move is rejected and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		game := newStartedGame(t, PvPMode)

		err := game.Place(Player1, 1)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, InitialState, game.Board.String())
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		game := newStartedGame(t, PvPMode)

		assert.ErrorIs(t, game.Place(Player0, 9), apperror.ErrInvalidCell)
		assert.ErrorIs(t, game.Place(Player0, -1), apperror.ErrInvalidCell)
	})

	t.Run("Error before the game is started", func(t *testing.T) {
		game, err := NewGame("123", PvPMode, NoPlayer)
		require.NoError(t, err)

		err = game.Place(Player0, 0)

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
		assert.Equal(t, Board{}, game.Board)
	})

	t.Run("Winning placement finishes the game", func(t *testing.T) {
		// Given: X X _ / O O _ / _ _ _ with X to move
		game := newStartedGame(t, PvPMode)
		for _, move := range []int{0, 3, 1, 4} {
			require.NoError(t, game.Place(game.Turn, move))
		}

		// When: X completes the top row
		require.NoError(t, game.Place(Player0, 2))

		// Then: X has won and no one is on turn
		assert.Equal(t, StatusWon, game.Status)
		assert.Equal(t, Player0, game.Winner)
		assert.Equal(t, NoPlayer, game.Turn)

		// And: further placements are rejected
		assert.ErrorIs(t, game.Place(Player1, 5), apperror.ErrGameFinished)
		assert.Equal(t, "111220000", game.Board.String())
	})

	t.Run("Filling the board without a line is a draw", func(t *testing.T) {
		// Given: X O X / X O O / O X _ reached by alternating play
		game := newStartedGame(t, PvPMode)
		for _, move := range []int{0, 1, 2, 4, 3, 5, 7, 6} {
			require.NoError(t, game.Place(game.Turn, move))
		}

		// When: X takes the last cell
		require.NoError(t, game.Place(Player0, 8))

		// Then: the game is drawn
		assert.Equal(t, StatusDrawn, game.Status)
		assert.Equal(t, NoPlayer, game.Winner)
		assert.ErrorIs(t, game.Place(Player1, 8), apperror.ErrGameFinished)
	})
}

func TestGame_Load(t *testing.T) {
	t.Run("Loads an in-progress board and derives the turn", func(t *testing.T) {
		game := newStartedGame(t, PvPMode)

		game.Load("112120000")

		assert.Equal(t, StatusInProgress, game.Status)
		assert.Equal(t, Player1, game.Turn)
		assert.Equal(t, "112120000", game.Board.String())
	})

	t.Run("Loading a completed line ends the game", func(t *testing.T) {
		game := newStartedGame(t, PvPMode)

		game.Load("100010001")

		assert.Equal(t, StatusWon, game.Status)
		assert.Equal(t, Player0, game.Winner)
	})

	t.Run("Loading a full board without a line is a draw", func(t *testing.T) {
		game := newStartedGame(t, PvPMode)

		game.Load("121122211")

		assert.Equal(t, StatusDrawn, game.Status)
	})

	t.Run("Loading restarts a finished game", func(t *testing.T) {
		game := newStartedGame(t, PvPMode)
		game.Load("100010001")

		game.Load(InitialState)

		assert.Equal(t, StatusInProgress, game.Status)
		assert.Equal(t, Player0, game.Turn)
		assert.Equal(t, NoPlayer, game.Winner)
	})
}

func TestGame_Stop(t *testing.T) {
	game := newStartedGame(t, BotMode)
	require.NoError(t, game.Place(Player0, 4))

	game.Stop()

	assert.Equal(t, StatusNotStarted, game.Status)
	assert.Equal(t, Board{}, game.Board)
	assert.Equal(t, Player1, game.BotPlayer)
	assert.False(t, game.IsBotTurn())
}

func TestGame_IsBotTurn(t *testing.T) {
	game := newStartedGame(t, BotMode)
	assert.False(t, game.IsBotTurn())

	require.NoError(t, game.Place(Player0, 0))
	assert.True(t, game.IsBotTurn())

	pvp := newStartedGame(t, PvPMode)
	require.NoError(t, pvp.Place(Player0, 0))
	assert.False(t, pvp.IsBotTurn())
}
