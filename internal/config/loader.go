package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const hordeFile = "horde.yaml"

// LoadHorde loads the horde configuration.
// Search order: customPath -> ~/.horde/configs/horde.yaml -> ./configs/horde.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read or parsed is an error; the
// optional locations are skipped when absent or unparsable.
func LoadHorde(customPath string) (HordeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HordeConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decodeHorde(data)
		if err != nil {
			return HordeConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(hordeFile), filepath.Join("configs", hordeFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeHorde(data); err == nil {
			return validated(cfg, path)
		}
	}

	// Use embedded default YAML
	cfg, err := decodeHorde(defaultHordeYAML)
	if err != nil {
		return DefaultHordeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeHorde parses data on top of DefaultHordeConfig.
func decodeHorde(data []byte) (HordeConfig, error) {
	cfg := DefaultHordeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HordeConfig{}, err
	}
	return cfg, nil
}

func validated(cfg HordeConfig, path string) (HordeConfig, error) {
	if err := cfg.Validate(); err != nil {
		return HordeConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".horde", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg HordeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// ApplyHordePreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values. A preset that shortens the starting
// interval also lowers the floor so it never exceeds the interval.
func ApplyHordePreset(cfg *HordeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawner.IntervalMs = 2500
		cfg.Spawner.MaxActive = 30
		cfg.Enemy.ContactDamage = 3
	case DifficultyHard:
		cfg.Spawner.IntervalMs = 1500
		cfg.Spawner.MaxActive = 70
		cfg.Spawner.IntervalDecay = 0.85
		cfg.Enemy.ContactDamage = 8
	case DifficultyFixed:
		cfg.Spawner.EscalateEvery = 0
	}
	if cfg.Spawner.IntervalMs > 0 {
		cfg.Spawner.MinIntervalMs = min(cfg.Spawner.MinIntervalMs, cfg.Spawner.IntervalMs)
	}
}
