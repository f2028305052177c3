package console

import (
	"bufio"
	"context"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-negamax/internal/entity"
)

const helpText = `commands:
  new [pvp|bot]   start a new game (default mode from config)
  move <cell>     place a mark on cell 0-8, a bare digit works too
  load <board>    replace the board with a 9-char string of 0/1/2
  state           show the current game
  hint            suggest the best cell for the player to move
  stop            stop and forget the current game
  help            show this help
  quit            leave
`

func (that *Server) handleNewGame(ctx context.Context, args []string, writer *bufio.Writer) error {
	mode := that.defaultMode
	if len(args) > 0 {
		mode = args[0]
	}

	game, err := that.uGame.NewGame(ctx, mode)
	if err != nil {
		return err
	}

	that.game = game
	renderGame(writer, game)

	return nil
}

func (that *Server) handleMove(ctx context.Context, args []string, writer *bufio.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: move <cell>", errMissingArg)
	}

	cell, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("cell must be a number: %s", args[0])
	}

	gameID, err := that.activeGameID()
	if err != nil {
		return err
	}

	game, err := that.uGame.MakeTurn(ctx, gameID, cell)
	if err != nil {
		return err
	}

	that.game = game
	renderGame(writer, game)

	return nil
}

func (that *Server) handleLoad(ctx context.Context, args []string, writer *bufio.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: load <board>", errMissingArg)
	}

	gameID, err := that.activeGameID()
	if err != nil {
		return err
	}

	if err = entity.ValidateBoardString(args[0]); err != nil {
		fmt.Fprintf(writer, "warning: %v, loading it anyway\n", err)
	}

	game, err := that.uGame.LoadBoard(ctx, gameID, args[0])
	if err != nil {
		return err
	}

	that.game = game
	renderGame(writer, game)

	return nil
}

func (that *Server) handleState(ctx context.Context, _ []string, writer *bufio.Writer) error {
	gameID, err := that.activeGameID()
	if err != nil {
		return err
	}

	game, err := that.uGame.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	that.game = game
	renderGame(writer, game)

	return nil
}

func (that *Server) handleHint(ctx context.Context, _ []string, writer *bufio.Writer) error {
	gameID, err := that.activeGameID()
	if err != nil {
		return err
	}

	cell, err := that.uGame.Hint(ctx, gameID)
	if err != nil {
		return err
	}

	fmt.Fprintf(writer, "hint: cell %d\n", cell)

	return nil
}

func (that *Server) handleStop(ctx context.Context, _ []string, writer *bufio.Writer) error {
	gameID, err := that.activeGameID()
	if err != nil {
		return err
	}

	if err = that.uGame.StopGame(ctx, gameID); err != nil {
		return err
	}

	that.game = nil
	fmt.Fprintln(writer, "game stopped, type 'new' to start another")

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string, writer *bufio.Writer) error {
	fmt.Fprint(writer, helpText)
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string, _ *bufio.Writer) error {
	return errQuit
}
