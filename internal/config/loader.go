package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads a puzzle preset.
// Search order: customPath -> ~/.wordsearch/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default
func Load(id string, customPath string) (PuzzleConfig, error) {
	var cfg PuzzleConfig

	// A custom path must load; it never falls through
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return finish(cfg, id)
	}

	filename := id + ".yaml"

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if c, ok := tryFile(userCfgPath); ok {
			return finish(c, id)
		}
	}

	if c, ok := tryFile(filepath.Join("configs", filename)); ok {
		return finish(c, id)
	}

	data := GetDefaultYAML(id)
	if data == nil {
		return cfg, fmt.Errorf("unknown preset %q", id)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		if Preset(id) == PresetEasy {
			return DefaultEasyConfig(), nil // Fallback to hardcoded if embed fails
		}
		return cfg, fmt.Errorf("failed to parse embedded preset %s: %w", id, err)
	}
	return finish(cfg, id)
}

// LoadAll loads every shipped preset in display order.
func LoadAll() ([]PuzzleConfig, error) {
	presets := Presets()
	out := make([]PuzzleConfig, 0, len(presets))
	for _, p := range presets {
		cfg, err := Load(string(p), "")
		if err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, nil
}

// tryFile reads and parses a config file, reporting false on any failure.
func tryFile(p string) (PuzzleConfig, bool) {
	var cfg PuzzleConfig
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// finish fills defaults and validates a parsed config.
func finish(cfg PuzzleConfig, id string) (PuzzleConfig, error) {
	if cfg.ID == "" {
		cfg.ID = id
	}
	if cfg.Title == "" {
		cfg.Title = cfg.ID
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
	return filepath.Join(home, ".wordsearch", "configs", filename)
}
