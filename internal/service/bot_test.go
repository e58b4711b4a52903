package service

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func botGame(botMark string) *entity.Game {
	human := &entity.Player{ID: "1", Name: "Alice", Mark: entity.PlayerX, Kind: entity.HumanPlayer}
	bot := &entity.Player{ID: "2", Name: "Bot", Mark: entity.PlayerO, Kind: entity.BotPlayer}

	if botMark == entity.PlayerX {
		human.Mark = entity.PlayerO
		bot.Mark = entity.PlayerX
	}

	return entity.NewGame(human, bot)
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Selects the single remaining empty cell", func(t *testing.T) {
		// Given: a board with exactly one empty cell, bot (X) to move
		game := botGame(entity.PlayerX)
		game.Board = entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.EmptyCell,
		}
		game.Turn = entity.PlayerX

		botService := NewBotService(rand.New(rand.NewSource(1)))

		// When: the bot moves
		row, col, err := botService.MakeTurn(game)

		// Then: it takes (3, 3) and the game ends in a draw
		require.NoError(t, err)
		assert.Equal(t, 3, row)
		assert.Equal(t, 3, col)
		assert.Equal(t, entity.PlayerX, game.Board.Cell(3, 3))
		assert.True(t, game.IsDraw())
	})

	t.Run("Returns ErrNoAvailableMoves on a full board", func(t *testing.T) {
		// Given: a full board
		game := botGame(entity.PlayerO)
		game.Board = entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerX,
		}

		botService := NewBotService(rand.New(rand.NewSource(1)))

		// When: the bot is asked to move
		_, _, err := botService.MakeTurn(game)

		// Then: there is nothing to play
		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Returns ErrBotNotFound when no bot is seated", func(t *testing.T) {
		// Given: a game between two humans
		playerX := &entity.Player{ID: "1", Name: "Alice", Mark: entity.PlayerX, Kind: entity.HumanPlayer}
		playerO := &entity.Player{ID: "2", Name: "Bob", Mark: entity.PlayerO, Kind: entity.HumanPlayer}
		game := entity.NewGame(playerX, playerO)

		botService := NewBotService(rand.New(rand.NewSource(1)))

		// When: the bot is asked to move
		_, _, err := botService.MakeTurn(game)

		// Then: it reports the missing bot
		assert.ErrorIs(t, err, ErrBotNotFound)
	})

	t.Run("Always plays a legal move on a part-filled board", func(t *testing.T) {
		// Given: a seeded bot playing O after X opened
		botService := NewBotService(rand.New(rand.NewSource(42)))

		for i := 0; i < 20; i++ {
			game := botGame(entity.PlayerO)
			require.NoError(t, game.MakeTurn(entity.PlayerX, 2, 2))

			// When: the bot moves
			row, col, err := botService.MakeTurn(game)

			// Then: the move landed on a previously empty cell
			require.NoError(t, err)
			assert.Equal(t, entity.PlayerO, game.Board.Cell(row, col))
			assert.Len(t, game.Board.AvailableCells(), 7)
		}
	})
}
