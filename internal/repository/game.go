package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/entity"
)

const (
	gameKeyPrefix  = "game:"
	currentGameKey = "session:current"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error

	SetCurrent(ctx context.Context, id string) error
	GetCurrent(ctx context.Context) (string, error)
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKeyPrefix+game.ID, gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

// DeleteByID removes the game and clears the current pointer if it referenced it.
func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	current, err := that.GetCurrent(ctx)
	if errors.Is(err, apperror.ErrNoActiveGames) {
		return nil
	}

	if err != nil {
		return err
	}

	if current == id {
		if err = that.client.Del(ctx, currentGameKey).Err(); err != nil {
			return fmt.Errorf("failed to clear current game: %w", err)
		}
	}

	return nil
}

func (that *dbGame) SetCurrent(ctx context.Context, id string) error {
	if err := that.client.Set(ctx, currentGameKey, id, 0).Err(); err != nil {
		return fmt.Errorf("failed to set current game: %w", err)
	}

	return nil
}

func (that *dbGame) GetCurrent(ctx context.Context) (string, error) {
	id, err := that.client.Get(ctx, currentGameKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperror.ErrNoActiveGames
	}

	if err != nil {
		return "", fmt.Errorf("failed to get current game: %w", err)
	}

	return id, nil
}
