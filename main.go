package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

// main - is the entry point of the application. It parses flags, loads the
// configuration, builds the logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		withBot    bool
		playerX    string
		playerO    string
	)

	cmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Console tic-tac-toe for two players or against a random bot",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// flags win over config file and environment
			if cmd.Flags().Changed("with-bot") {
				conf.Game.WithBot = withBot
			}
			if cmd.Flags().Changed("player-x") {
				conf.Game.PlayerX = playerX
			}
			if cmd.Flags().Changed("player-o") {
				conf.Game.PlayerO = playerO
			}

			logger := initLogger(conf)

			if err = app.RunApp(logger, conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "config.yml", "path to the config file")
	cmd.Flags().BoolVar(&withBot, "with-bot", false, "play against the computer")
	cmd.Flags().StringVar(&playerX, "player-x", "", "name of the X player")
	cmd.Flags().StringVar(&playerO, "player-o", "", "name of the O player")

	return cmd
}

// initialize logger. Logs go to stderr so stdout stays a clean game surface.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
