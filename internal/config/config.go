package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	PlayerX string `yaml:"player-x" env:"TICTACTOE_PLAYER_X" env-default:"Player X"`
	PlayerO string `yaml:"player-o" env:"TICTACTOE_PLAYER_O" env-default:"Player O"`
	WithBot bool   `yaml:"with-bot" env:"TICTACTOE_WITH_BOT" env-default:"false"`
	BotName string `yaml:"bot-name" env:"TICTACTOE_BOT_NAME" env-default:"Bot"`
}

// Load - reads the config file when it exists; otherwise the game runs on
// environment variables and defaults alone.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}
