package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/tictactoe"
)

var ErrNoMoves = errors.New("no moves left")

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error

	SetCurrent(ctx context.Context, id string) error
	GetCurrent(ctx context.Context) (string, error)
}

type botService interface {
	MakeTurn(game *entity.Game) error
}

// GameManager drives turns: it applies placements, evaluates the end of every
// turn and lets the bot reply in bot games.
type GameManager struct {
	logger    *slog.Logger
	gameRepo  gameRepo
	bot       botService
	botPlayer entity.Player
	newID     func() string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, bot botService, botPlayer entity.Player) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		gameRepo:  gameRepo,
		bot:       bot,
		botPlayer: botPlayer,
		newID:     uuid.NewString,
	}
}

// NewGame starts a game and makes it current. A bot playing first opens immediately.
func (that *GameManager) NewGame(ctx context.Context, mode string) (*entity.Game, error) {
	game, err := entity.NewGame(that.newID(), mode, that.botPlayer)
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	game.Start()

	if err = that.botReply(game); err != nil {
		return nil, err
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if err = that.gameRepo.SetCurrent(ctx, game.ID); err != nil {
		return nil, fmt.Errorf("failed set current game: %w", err)
	}

	that.logger.Info("game started", "gameID", game.ID, "mode", game.Mode)

	return game, nil
}

// CurrentGame returns the game the last session was playing.
func (that *GameManager) CurrentGame(ctx context.Context) (*entity.Game, error) {
	id, err := that.gameRepo.GetCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed get current game: %w", err)
	}

	game, err := that.getGameByID(ctx, id)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, fmt.Errorf("%w: current game %s is gone", apperror.ErrNoActiveGames, id)
	}

	if err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	return that.getGameByID(ctx, id)
}

// MakeTurn places the current player's mark on cell. A rejected move leaves the
// stored game untouched.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if game.IsBotTurn() {
		return game, apperror.ErrNotYourTurn
	}

	if err = game.Place(game.Turn, cell); err != nil {
		return game, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.botReply(game); err != nil {
		return nil, err
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "status", game.Status, "winner", game.Winner.String())
	}

	return game, nil
}

// LoadBoard replaces the board of a game with a serialized state.
func (that *GameManager) LoadBoard(ctx context.Context, id, state string) (*entity.Game, error) {
	log := that.logger.With("method", "LoadBoard", "gameID", id)

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = entity.ValidateBoardString(state); err != nil {
		log.Warn("loading malformed board leniently", "state", state, "error", err)
	}

	game.Load(state)

	if err = that.botReply(game); err != nil {
		return nil, err
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Info("board loaded", "board", game.Board.String(), "status", game.Status)

	return game, nil
}

// Hint returns the best cell for the player on turn.
func (that *GameManager) Hint(ctx context.Context, id string) (int, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return -1, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return -1, err
	}

	cell, ok := tictactoe.BestMove(&game.Board, game.Turn)
	if !ok {
		return -1, ErrNoMoves
	}

	return cell, nil
}

// StopGame removes the game from storage, clearing the current pointer if it held it.
func (that *GameManager) StopGame(ctx context.Context, id string) error {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return err
	}

	if err = that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		return fmt.Errorf("failed delete game: %w", err)
	}

	that.logger.Info("game stopped", "gameID", game.ID)

	return nil
}

func (that *GameManager) botReply(game *entity.Game) error {
	if !game.IsBotTurn() {
		return nil
	}

	if err := that.bot.MakeTurn(game); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
