package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative override location.
const LocalConfigPath = "configs/catcher.yaml"

// LoadCatcher loads Fruit Catcher configuration.
// Search order: customPath -> ~/.catcher/configs/catcher.yaml -> ./configs/catcher.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
// Only an explicit customPath produces an error; broken implicit files are skipped.
func LoadCatcher(customPath string) (CatcherConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCatcherConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseCatcher(data)
		if err != nil {
			return DefaultCatcherConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("catcher.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCatcher(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		if cfg, err := parseCatcher(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCatcher(defaultCatcherYAML)
	if err != nil {
		return DefaultCatcherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseCatcher decodes YAML over the hard-coded defaults and validates the result.
func parseCatcher(data []byte) (CatcherConfig, error) {
	cfg := DefaultCatcherConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catcher", "configs", filename)
}

// DumpCatcher renders a configuration as YAML.
func DumpCatcher(cfg CatcherConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
