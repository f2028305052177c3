package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-negamax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-negamax/internal/entity"
)

var (
	errQuit           = errors.New("quit")
	errUnknownCommand = errors.New("unknown command")
	errMissingArg     = errors.New("missing argument")
)

type uGame interface {
	NewGame(ctx context.Context, mode string) (*entity.Game, error)
	CurrentGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)

	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	LoadBoard(ctx context.Context, id, state string) (*entity.Game, error)
	Hint(ctx context.Context, id string) (int, error)
	StopGame(ctx context.Context, id string) error
}

type handlerFunc func(ctx context.Context, args []string, writer *bufio.Writer) error

// Server is a line-oriented front end for a single local game.
type Server struct {
	logger      *slog.Logger
	uGame       uGame
	defaultMode string

	game *entity.Game

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame, defaultMode string) *Server {
	server := &Server{
		logger:      logger.With("component", "console"),
		uGame:       uGame,
		defaultMode: defaultMode,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers["new"] = server.handleNewGame
	server.handlers["move"] = server.handleMove
	server.handlers["load"] = server.handleLoad
	server.handlers["state"] = server.handleState
	server.handlers["hint"] = server.handleHint
	server.handlers["stop"] = server.handleStop
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Run resumes the current game (or starts one) and serves commands from in
// until EOF, quit or ctx is done.
func (that *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Run")

	writer := bufio.NewWriter(out)
	defer writer.Flush()

	if err := that.resume(ctx, writer); err != nil {
		return fmt.Errorf("failed to resume game: %w", err)
	}

	// stops the reader when the loop ends before the input does
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, log, in)

	for {
		fmt.Fprint(writer, "> ")

		if err := writer.Flush(); err != nil {
			return fmt.Errorf("failed to flush output: %w", err)
		}

		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving console")
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(writer)
				return nil
			}

			err := that.handleLine(ctx, line, writer)
			if errors.Is(err, errQuit) {
				return nil
			}

			if err != nil {
				log.Debug("command failed", "line", line, "error", err)
				fmt.Fprintf(writer, "error: %v\n", err)
			}
		}
	}
}

func (that *Server) handleLine(ctx context.Context, line string, writer *bufio.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	command, args := strings.ToLower(fields[0]), fields[1:]

	// a bare cell number is a move
	if len(command) == 1 && command[0] >= '0' && command[0] <= '9' {
		command, args = "move", fields
	}

	handler, ok := that.handlers[command]
	if !ok {
		return fmt.Errorf("%w: %s (type 'help')", errUnknownCommand, command)
	}

	return handler(ctx, args, writer)
}

func (that *Server) resume(ctx context.Context, writer *bufio.Writer) error {
	game, err := that.uGame.CurrentGame(ctx)
	if errors.Is(err, apperror.ErrNoActiveGames) {
		game, err = that.uGame.NewGame(ctx, that.defaultMode)
	}

	if err != nil {
		return err
	}

	that.game = game
	that.logger.Info("console attached", "gameID", game.ID)

	renderGame(writer, game)

	return nil
}

func (that *Server) activeGameID() (string, error) {
	if that.game == nil {
		return "", fmt.Errorf("%w: type 'new' to start one", apperror.ErrNoActiveGames)
	}

	return that.game.ID, nil
}

// readLines feeds lines from in to the returned channel and closes it at EOF.
func readLines(ctx context.Context, log *slog.Logger, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			log.Error("failed to read input", "error", err)
		}
	}()

	return lines
}
