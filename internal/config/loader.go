package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTennis loads match configuration. Files are read over the defaults, so
// a partial file only overrides the keys it sets.
// Search order: customPath -> ~/.quiztennis/configs/tennis.yaml -> ./configs/tennis.yaml -> embedded default
func LoadTennis(customPath string) (TennisConfig, error) {
	cfg := DefaultTennisConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tennis.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "tennis.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTennisYAML, &cfg); err != nil {
		return DefaultTennisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or malformed files are
// skipped.
func tryLoad(path string) (TennisConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TennisConfig{}, false
	}
	cfg := DefaultTennisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TennisConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quiztennis", "configs", filename)
}

// ApplyTennisPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyTennisPreset(cfg *TennisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Opponent.Skill = 0.55
		cfg.Physics.BaseSpeed = 0.45
		cfg.Questions.Chance = 0.3
		cfg.Questions.TimeLimit = 15
	case DifficultyHard:
		cfg.Opponent.Skill = 0.9
		cfg.Physics.BaseSpeed = 0.7
		cfg.Questions.Chance = 0.6
		cfg.Questions.TimeLimit = 7
	case DifficultyNormal:
	}
}
