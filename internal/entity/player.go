package entity

const (
	HumanPlayer = "human"
	BotPlayer   = "bot"
)

// Player is an immutable identity: it is created once per game
// and never changes while the game runs.
type Player struct {
	ID   string
	Name string
	Mark string
	Kind string
}

func (that *Player) IsBot() bool {
	return that.Kind == BotPlayer
}
