package config

import (
	_ "embed"
)

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

// DefaultCatcherConfig returns the default Fruit Catcher configuration.
func DefaultCatcherConfig() CatcherConfig {
	return CatcherConfig{
		Screen: ScreenConfig{
			Width:  640,
			Height: 480,
		},
		Player: PlayerConfig{
			Width:        80,
			Height:       20,
			Speed:        6,
			BottomMargin: 10,
		},
		Objects: ObjectsConfig{
			Width:        28,
			Height:       28,
			InitialSpeed: 3,
			Weights: WeightsConfig{
				Apple:  35,
				Orange: 30,
				Banana: 20,
				Bomb:   15,
			},
		},
		Rules: RulesConfig{
			Lives:       3,
			FruitPoints: 10,
		},
		Difficulty: DifficultyConfig{
			SpawnBaseMS:    800,
			SpawnMinMS:     200,
			SpawnStepMS:    5,
			SpeedMilestone: 50,
			SpeedStep:      0.6,
		},
		Effects: EffectsConfig{
			FlashMS:        120,
			GameOverPollMS: 100,
			SoundVolume:    0.5,
		},
		Input: InputConfig{
			HoldMS: 150,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCatcherYAML
}
