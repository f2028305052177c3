package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-negamax/internal/config"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/service"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-negamax/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	botService := service.NewBotService()
	gameUseCase := usecase.NewGameManager(logger, gameRepo, botService, entity.Player(conf.BotPlayer))

	consoleServer := console.New(logger, gameUseCase, conf.Mode)

	if err = consoleServer.Run(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed, shutting down")

	return nil
}

// newGameRepository uses Redis when a host is configured and memory otherwise.
func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		log.Info("Redis is not configured, keeping games in memory")
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	log.Info("Connected to redis", "addr", redisAddrString)

	closeRepo := func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage), closeRepo, nil
}
