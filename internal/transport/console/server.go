package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type gamePlay interface {
	NewGame(playerX, playerO *entity.Player) *entity.Game
	MakeTurn(game *entity.Game, mark string, row, col int) error
	MakeBotTurn(game *entity.Game) (row, col int, err error)
}

// Server drives the interactive game loop over a line-based reader and a
// writer, stdin/stdout in production and buffers in tests.
type Server struct {
	logger   *slog.Logger
	gamePlay gamePlay
	reader   *bufio.Reader
	writer   io.Writer
}

func New(logger *slog.Logger, gamePlay gamePlay, reader io.Reader, writer io.Writer) *Server {
	return &Server{
		logger:   logger.With("component", "console"),
		gamePlay: gamePlay,
		reader:   bufio.NewReader(reader),
		writer:   writer,
	}
}

// Run - plays games with the given pair of players until the user declines
// another round, the input ends, or the context is canceled. A closed input
// stream is a normal way to leave, never an error.
func (that *Server) Run(ctx context.Context, playerX, playerO *entity.Player) error {
	that.printBanner()

	for {
		if err := that.playGame(ctx, playerX, playerO); err != nil {
			if errors.Is(err, apperror.ErrInputClosed) || errors.Is(err, context.Canceled) {
				that.printf("\nGoodbye!\n")
				return nil
			}

			return fmt.Errorf("game loop failed: %w", err)
		}

		again, err := that.promptPlayAgain()
		if err != nil || !again {
			that.printf("Goodbye!\n")
			return nil
		}
	}
}

// playGame - runs a single game to its terminal state.
func (that *Server) playGame(ctx context.Context, playerX, playerO *entity.Player) error {
	game := that.gamePlay.NewGame(playerX, playerO)

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return err
		}

		player := game.CurrentPlayer()

		if player.IsBot() {
			row, col, err := that.gamePlay.MakeBotTurn(game)
			if err != nil {
				return fmt.Errorf("bot turn failed: %w", err)
			}

			that.printf("\n%s (%s) plays %d %d\n", player.Name, player.Mark, row, col)
			continue
		}

		that.printf("\nCurrent board:\n%s\n", game.Board.Render())

		row, col, err := that.promptMove(player)
		if err != nil {
			if errors.Is(err, apperror.ErrInputClosed) {
				return err
			}

			that.printf("%s\n", moveErrorMessage(err))
			continue
		}

		if err = that.gamePlay.MakeTurn(game, player.Mark, row, col); err != nil {
			that.logger.Debug("move rejected", "game_id", game.ID, "row", row, "col", col, "error", err)
			that.printf("%s\n", moveErrorMessage(err))
			continue
		}
	}

	that.printf("\nFinal board:\n%s\n", game.Board.Render())
	that.announceResult(game)

	return nil
}

func (that *Server) promptMove(player *entity.Player) (int, int, error) {
	that.printf("\n%s (%s), enter row and column (1-3): ", player.Name, player.Mark)

	line, err := that.readLine()
	if err != nil {
		return 0, 0, err
	}

	return parseMove(line)
}

func (that *Server) promptPlayAgain() (bool, error) {
	that.printf("\nPlay again? (y/n): ")

	line, err := that.readLine()
	if err != nil {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes", nil
}

func (that *Server) announceResult(game *entity.Game) {
	if game.IsDraw() {
		that.printf("\nIt's a draw!\n")
		return
	}

	winner := game.PlayerByMark(game.Winner)
	that.printf("\n%s (%s) wins!\n", winner.Name, winner.Mark)
}

func (that *Server) printBanner() {
	that.printf("=== Tic Tac Toe (Console) ===\n")
	that.printf("Enter moves as \"row col\" with values from 1 to 3, e.g. \"1 3\".\n")
}

// readLine - reads one line of input; a drained stream maps to ErrInputClosed.
func (that *Server) readLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if strings.TrimSpace(line) != "" {
				return line, nil
			}
			return "", apperror.ErrInputClosed
		}

		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return line, nil
}

func (that *Server) printf(format string, args ...any) {
	fmt.Fprintf(that.writer, format, args...)
}
