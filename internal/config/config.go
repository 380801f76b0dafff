// Package config provides YAML-based game configuration loading and
// difficulty management for Fruit Catcher.
package config

import (
	"errors"
	"fmt"
)

// CatcherConfig contains all tunables for the Fruit Catcher game.
type CatcherConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Player     PlayerConfig     `yaml:"player"`
	Objects    ObjectsConfig    `yaml:"objects"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Effects    EffectsConfig    `yaml:"effects"`
	Input      InputConfig      `yaml:"input"`
}

// ScreenConfig defines the logical canvas size.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the paddle.
type PlayerConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Horizontal movement per frame
	BottomMargin int     `yaml:"bottom_margin"` // Gap between paddle and canvas bottom
}

// ObjectsConfig defines falling objects.
type ObjectsConfig struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	InitialSpeed float64       `yaml:"initial_speed"` // Fall speed at game start
	Weights      WeightsConfig `yaml:"weights"`
}

// WeightsConfig holds relative spawn weights per object kind.
type WeightsConfig struct {
	Apple  int `yaml:"apple"`
	Orange int `yaml:"orange"`
	Banana int `yaml:"banana"`
	Bomb   int `yaml:"bomb"`
}

// Total returns the sum of all weights.
func (w WeightsConfig) Total() int {
	return w.Apple + w.Orange + w.Banana + w.Bomb
}

// RulesConfig defines scoring and lives.
type RulesConfig struct {
	Lives       int `yaml:"lives"`
	FruitPoints int `yaml:"fruit_points"`
}

// DifficultyConfig defines the ramp: spawn interval shrinking with score and
// fall speed increasing at score milestones.
type DifficultyConfig struct {
	SpawnBaseMS    int     `yaml:"spawn_base_ms"`   // Interval at score 0
	SpawnMinMS     int     `yaml:"spawn_min_ms"`    // Floor of the interval
	SpawnStepMS    int     `yaml:"spawn_step_ms"`   // Milliseconds removed per score point
	SpeedMilestone int     `yaml:"speed_milestone"` // Score multiple that triggers a speed-up
	SpeedStep      float64 `yaml:"speed_step"`      // Fall speed added per milestone
}

// EffectsConfig defines the two blocking waits of the loop and the cue volume.
type EffectsConfig struct {
	FlashMS        int     `yaml:"flash_ms"`
	GameOverPollMS int     `yaml:"game_over_poll_ms"`
	SoundVolume    float64 `yaml:"sound_volume"` // 0 mutes, 1 is full scale
}

// InputConfig defines how held keys are derived from terminal key repeats.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
}

// Validate reports every value that would make the simulation meaningless.
func (c CatcherConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	check(c.Player.Width <= c.Screen.Width, "player width %d exceeds screen width %d", c.Player.Width, c.Screen.Width)
	check(c.Player.Speed >= 0, "player speed must not be negative, got %v", c.Player.Speed)
	check(c.Objects.Width > 0 && c.Objects.Height > 0, "object size must be positive, got %dx%d", c.Objects.Width, c.Objects.Height)
	check(c.Objects.Width <= c.Screen.Width, "object width %d exceeds screen width %d", c.Objects.Width, c.Screen.Width)
	check(c.Objects.InitialSpeed > 0, "initial fall speed must be positive, got %v", c.Objects.InitialSpeed)
	w := c.Objects.Weights
	check(w.Apple >= 0 && w.Orange >= 0 && w.Banana >= 0 && w.Bomb >= 0, "spawn weights must not be negative")
	check(w.Total() > 0, "spawn weights must not all be zero")
	check(c.Rules.Lives > 0, "lives must be positive, got %d", c.Rules.Lives)
	check(c.Rules.FruitPoints > 0, "fruit points must be positive, got %d", c.Rules.FruitPoints)
	check(c.Difficulty.SpawnMinMS > 0, "spawn_min_ms must be positive, got %d", c.Difficulty.SpawnMinMS)
	check(c.Difficulty.SpawnBaseMS >= c.Difficulty.SpawnMinMS, "spawn_base_ms %d is below spawn_min_ms %d", c.Difficulty.SpawnBaseMS, c.Difficulty.SpawnMinMS)
	check(c.Difficulty.SpawnStepMS >= 0, "spawn_step_ms must not be negative, got %d", c.Difficulty.SpawnStepMS)
	check(c.Difficulty.SpeedMilestone > 0, "speed_milestone must be positive, got %d", c.Difficulty.SpeedMilestone)
	check(c.Difficulty.SpeedStep >= 0, "speed_step must not be negative, got %v", c.Difficulty.SpeedStep)
	check(c.Effects.FlashMS >= 0, "flash_ms must not be negative, got %d", c.Effects.FlashMS)
	check(c.Effects.GameOverPollMS > 0, "game_over_poll_ms must be positive, got %d", c.Effects.GameOverPollMS)
	check(c.Effects.SoundVolume >= 0 && c.Effects.SoundVolume <= 1, "sound_volume must be within [0, 1], got %v", c.Effects.SoundVolume)
	check(c.Input.HoldMS > 0, "hold_ms must be positive, got %d", c.Input.HoldMS)

	return errors.Join(errs...)
}
