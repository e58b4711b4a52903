package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const defaultBotName = "Bot"

var ErrEmptyPlayerName = errors.New("player name must not be empty")

type PlayerService interface {
	CreatePlayers(xName, oName string, withBot bool, botName string) (*entity.Player, *entity.Player, error)
}

type playerService struct{}

func NewPlayerService() PlayerService {
	return &playerService{}
}

// CreatePlayers - builds the two identities for a game. The X player is
// always human; with a bot opponent the bot takes O.
func (that *playerService) CreatePlayers(xName, oName string, withBot bool, botName string) (*entity.Player, *entity.Player, error) {
	xName = strings.TrimSpace(xName)
	if xName == "" {
		return nil, nil, fmt.Errorf("%w: player %s", ErrEmptyPlayerName, entity.PlayerX)
	}

	playerX := &entity.Player{
		ID:   uuid.NewString(),
		Name: xName,
		Mark: entity.PlayerX,
		Kind: entity.HumanPlayer,
	}

	if withBot {
		botName = strings.TrimSpace(botName)
		if botName == "" {
			botName = defaultBotName
		}

		playerO := &entity.Player{
			ID:   uuid.NewString(),
			Name: botName,
			Mark: entity.PlayerO,
			Kind: entity.BotPlayer,
		}

		return playerX, playerO, nil
	}

	oName = strings.TrimSpace(oName)
	if oName == "" {
		return nil, nil, fmt.Errorf("%w: player %s", ErrEmptyPlayerName, entity.PlayerO)
	}

	playerO := &entity.Player{
		ID:   uuid.NewString(),
		Name: oName,
		Mark: entity.PlayerO,
		Kind: entity.HumanPlayer,
	}

	return playerX, playerO, nil
}
