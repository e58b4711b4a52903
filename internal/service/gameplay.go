package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type GamePlayService interface {
	NewGame(playerX, playerO *entity.Player) *entity.Game
	MakeTurn(game *entity.Game, mark string, row, col int) error
	MakeBotTurn(game *entity.Game) (row, col int, err error)
}

type gamePlayService struct {
	logger *slog.Logger

	botService BotService
}

func NewGamePlayService(logger *slog.Logger, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger.With("component", "gameplay"),
		botService: botService,
	}
}

func (that *gamePlayService) NewGame(playerX, playerO *entity.Player) *entity.Game {
	game := entity.NewGame(playerX, playerO)

	that.logger.Debug("game started",
		"game_id", game.ID,
		"player_x", playerX.Name,
		"player_o", playerO.Name,
	)

	return game
}

// MakeTurn - applies one move for the given mark.
func (that *gamePlayService) MakeTurn(game *entity.Game, mark string, row, col int) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if err := game.MakeTurn(mark, row, col); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Debug("turn applied", "game_id", game.ID, "mark", mark, "row", row, "col", col)

	return nil
}

// MakeBotTurn - lets the bot move when the game is still ongoing.
func (that *gamePlayService) MakeBotTurn(game *entity.Game) (int, int, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return 0, 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	row, col, err := that.botService.MakeTurn(game)
	if err != nil {
		return 0, 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot turn applied", "game_id", game.ID, "row", row, "col", col)

	return row, col, nil
}
