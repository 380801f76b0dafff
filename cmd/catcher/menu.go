package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catcher/internal/games/catcher"
	"github.com/vovakirdan/fruit-catcher/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Show the title menu: play a game, browse high scores or quit.
After each game the menu comes back.

Controls:
  Up/Down   - Navigate
  Enter     - Select
  Tab       - High scores
  Q         - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := interactiveLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sound := newSound(logger)
	defer sound.Close()

	if err := tui.RunSession(catcher.ID, runtimeConfig(), runOptions(store, logger, sound)); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
