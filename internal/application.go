package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

// RunApp - wires the services and runs the console game loop.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	playerService := service.NewPlayerService()
	playerX, playerO, err := playerService.CreatePlayers(
		conf.Game.PlayerX,
		conf.Game.PlayerO,
		conf.Game.WithBot,
		conf.Game.BotName,
	)
	if err != nil {
		return fmt.Errorf("failed to create players: %w", err)
	}

	botService := service.NewBotService(nil)
	gamePlayService := service.NewGamePlayService(logger, botService)
	consoleServer := console.New(logger, gamePlayService, os.Stdin, os.Stdout)

	log.Info("starting console game",
		"player_x", playerX.Name,
		"player_o", playerO.Name,
		"with_bot", conf.Game.WithBot,
	)

	if err = consoleServer.Run(ctx, playerX, playerO); err != nil {
		return fmt.Errorf("console game error: %w", err)
	}

	return nil
}
