package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catcher/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, after applying --config,
~/.catcher/configs/catcher.yaml or ./configs/catcher.yaml over the defaults.
The output is a complete catcher.yaml ready to edit.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.DumpCatcher(gameConfig)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}
