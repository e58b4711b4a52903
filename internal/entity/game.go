package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID      string
	Board   Board
	Winner  string
	Status  string
	Turn    string
	Players []*Player
}

// NewGame - starts a fresh game: empty board, X moves first.
func NewGame(players ...*Player) *Game {
	return &Game{
		ID:      uuid.NewString(),
		Turn:    PlayerX,
		Status:  StatusOngoing,
		Players: players,
	}
}

// MakeTurn - places a mark for the player whose turn it is.
// A rejected move leaves the board, turn and status unchanged.
func (that *Game) MakeTurn(mark string, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Place(row, col, mark); err != nil {
		return err
	}

	that.updateGameState()

	return nil
}

// updateGameState - checks the board after a move and either finishes
// the game or hands the turn to the other mark.
func (that *Game) updateGameState() {
	switch winner := that.Board.Winner(); winner {
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = EmptyCell
	default:
		if that.Board.IsFull() {
			that.Winner = PlayerTie
			that.Status = StatusFinished
			that.Turn = EmptyCell
			return
		}
	}

	if that.IsOngoing() {
		that.Turn = toggleMark(that.Turn)
	}
}

func toggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// PlayerByMark - returns the player holding the given mark, or nil.
func (that *Game) PlayerByMark(mark string) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

// CurrentPlayer - returns the player whose turn it is, nil once finished.
func (that *Game) CurrentPlayer() *Player {
	return that.PlayerByMark(that.Turn)
}

// Reset - clears the board for another round with the same players.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Winner = EmptyCell
	that.Status = StatusOngoing
	that.Turn = PlayerX
}
