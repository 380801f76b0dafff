// catcher is Fruit Catcher for the terminal: catch falling fruit with a
// paddle, dodge the bombs.
//
// Usage:
//
//	catcher                 - Play a game (same as "catcher play")
//	catcher menu            - Title menu with high scores
//	catcher scores          - Show high scores
//	catcher serve           - Start SSH server for remote play
//	catcher snapshot        - Simulate headless and save a PNG frame
//	catcher config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.catcher/scores.db)
//	--config <path>     - Load tuning from a YAML file
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
//	--sound             - Play sound cues
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-catcher/internal/audio"
	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/games/catcher"
	"github.com/vovakirdan/fruit-catcher/internal/platform/tui"
	"github.com/vovakirdan/fruit-catcher/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagSound    bool
)

// gameConfig is the configuration loaded before any command runs.
var gameConfig = config.DefaultCatcherConfig()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catcher",
	Short: "Fruit Catcher - catch falling fruit in your terminal",
	Long: `Fruit Catcher is a terminal arcade game. Move the paddle to catch
falling fruit for points; every bomb you touch costs a life.

Available commands:
  play      - Play a game (default)
  menu      - Title menu with high scores
  scores    - View high scores
  serve     - Start SSH server for remote play
  snapshot  - Simulate headless and write a PNG frame
  config    - Print the effective configuration

Examples:
  catcher
  catcher play --seed 42
  catcher menu
  catcher serve --ssh :2222
  catcher snapshot --frames 300 --script right:60,left:120 --out frame.png`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadGameConfig,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a catcher.yaml overriding the defaults")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the tuning file and pins it for new games.
func loadGameConfig(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	cfg, err := config.LoadCatcher(flagConfig)
	if err != nil {
		return err
	}
	gameConfig = cfg
	catcher.UseConfig(cfg)
	return nil
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}

// interactiveLogger logs to --log-file, or nowhere: the terminal belongs to
// the UI. The returned function closes the file.
func interactiveLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard, "catcher")
		return logger, func() {}, err
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "catcher")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// openStore opens the score database. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// newSound returns the speaker when --sound is set and the device works.
func newSound(logger *log.Logger) audio.Player {
	if !flagSound {
		return audio.Nop{}
	}
	sp, err := audio.NewSpeaker(gameConfig.Effects.SoundVolume)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		return audio.Nop{}
	}
	return sp
}

// runtimeConfig describes the current terminal and the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// runOptions maps the loaded configuration onto terminal runner options.
func runOptions(store *storage.Store, logger *log.Logger, sound audio.Player) tui.Options {
	opts := tui.Options{
		Store:        store,
		Logger:       logger,
		Sound:        sound,
		Player:       os.Getenv("USER"),
		HoldWindow:   time.Duration(gameConfig.Input.HoldMS) * time.Millisecond,
		GameOverPoll: time.Duration(gameConfig.Effects.GameOverPollMS) * time.Millisecond,
	}
	if home, err := os.UserHomeDir(); err == nil {
		opts.ScreenshotDir = filepath.Join(home, ".catcher", "screenshots")
	}
	return opts
}
