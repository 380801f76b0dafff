package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catcher/internal/games/catcher"
	"github.com/vovakirdan/fruit-catcher/internal/platform/tui"
	"github.com/vovakirdan/fruit-catcher/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Play one game of Fruit Catcher. The program exits once the game-over
screen is dismissed.

Controls:
  Left/A, Right/D  - Move the paddle
  P                - Pause / resume
  Esc/Q            - Quit
  Ctrl+S           - Save a PNG screenshot to ~/.catcher/screenshots
  Any key          - Leave the game-over screen

Examples:
  catcher play
  catcher play --seed 42 --fps 30
  catcher play --config ./my-catcher.yaml --sound`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := interactiveLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(catcher.ID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sound := newSound(logger)
	defer sound.Close()

	if err := tui.Run(game, runtimeConfig(), runOptions(store, logger, sound)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
