package service

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	gamePlay := NewGamePlayService(discardLogger(), NewBotService(rand.New(rand.NewSource(1))))

	t.Run("Applies a legal move and hands the turn over", func(t *testing.T) {
		// Given: a fresh game
		game := gamePlay.NewGame(
			&entity.Player{ID: "1", Name: "Alice", Mark: entity.PlayerX, Kind: entity.HumanPlayer},
			&entity.Player{ID: "2", Name: "Bob", Mark: entity.PlayerO, Kind: entity.HumanPlayer},
		)

		// When: X plays (1, 1)
		err := gamePlay.MakeTurn(game, entity.PlayerX, 1, 1)

		// Then: the mark is placed and O is up
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board.Cell(1, 1))
		assert.Equal(t, entity.PlayerO, game.Turn)
	})

	t.Run("Passes board rejections through to the caller", func(t *testing.T) {
		// Given: X holds (1, 1)
		game := entity.NewGame()
		require.NoError(t, gamePlay.MakeTurn(game, entity.PlayerX, 1, 1))

		// When: O tries the same cell
		err := gamePlay.MakeTurn(game, entity.PlayerO, 1, 1)

		// Then: the occupied-cell error surfaces
		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Rejects turns on a finished game", func(t *testing.T) {
		// Given: a finished game
		game := entity.NewGame()
		game.Status = entity.StatusFinished

		// When: making a move
		err := gamePlay.MakeTurn(game, entity.PlayerX, 1, 1)

		// Then: it is rejected
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGamePlayService_MakeBotTurn(t *testing.T) {
	gamePlay := NewGamePlayService(discardLogger(), NewBotService(rand.New(rand.NewSource(7))))

	t.Run("Bot answers the human move with a legal one", func(t *testing.T) {
		// Given: a human-versus-bot game where the human opened
		game := botGame(entity.PlayerO)
		require.NoError(t, gamePlay.MakeTurn(game, entity.PlayerX, 2, 2))

		// When: the bot answers
		row, col, err := gamePlay.MakeBotTurn(game)

		// Then: the bot placed O and X is up again
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.Board.Cell(row, col))
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Refuses to move for the bot out of turn", func(t *testing.T) {
		// Given: a bot game where the human (X) has the turn
		game := botGame(entity.PlayerO)

		// When: asking the bot to move anyway
		_, _, err := gamePlay.MakeBotTurn(game)

		// Then: the turn guard trips
		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Refuses to move on a finished game", func(t *testing.T) {
		game := botGame(entity.PlayerO)
		game.Status = entity.StatusFinished

		_, _, err := gamePlay.MakeBotTurn(game)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
