package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-negamax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/entity"
)

// memoryGame keeps games for the lifetime of the process when Redis is not configured.
type memoryGame struct {
	mu      sync.RWMutex
	games   map[string]entity.Game
	current string
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]entity.Game),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = *game

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}

	return &game, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, id)

	if that.current == id {
		that.current = ""
	}

	return nil
}

func (that *memoryGame) SetCurrent(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.current = id

	return nil
}

func (that *memoryGame) GetCurrent(_ context.Context) (string, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if that.current == "" {
		return "", apperror.ErrNoActiveGames
	}

	return that.current, nil
}
