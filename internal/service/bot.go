package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) (row, col int, err error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService - creates the random-move bot. Pass a seeded rand for
// reproducible games, or nil to seed from the clock.
func NewBotService(rnd *rand.Rand) BotService {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	return &botService{rnd: rnd}
}

// MakeTurn - picks a uniformly random empty cell for the bot player
// and applies it. Returns the chosen row and column.
func (that *botService) MakeTurn(game *entity.Game) (int, int, error) {
	availableCells := game.Board.AvailableCells()
	if len(availableCells) == 0 {
		return 0, 0, apperror.ErrNoAvailableMoves
	}

	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return 0, 0, ErrBotNotFound
	}

	chosenCell := availableCells[that.rnd.Intn(len(availableCells))]
	row := chosenCell/entity.BoardSize + 1
	col := chosenCell%entity.BoardSize + 1

	if err := game.MakeTurn(botPlayer.Mark, row, col); err != nil {
		return 0, 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return row, col, nil
}
