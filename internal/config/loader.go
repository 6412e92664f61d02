package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. T2048_BOARD_SIZE.
const EnvPrefix = "T2048_"

// LoadT2048 loads the game configuration and applies environment overrides.
// Search order: customPath -> ~/.arcade/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
func LoadT2048(customPath string) (T2048Config, error) {
	cfg, err := loadYAML("t2048.yaml", customPath, defaultT2048YAML, DefaultT2048Config)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any T2048_* variables that are set.
func ApplyEnv(cfg *T2048Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// loadYAML decodes the first config found on the search path.
// A custom path that cannot be read or parsed is an error; every other
// location falls through to the next one.
func loadYAML[T any](filename, customPath string, embedded []byte, fallback func() T) (T, error) {
	cfg := fallback()

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

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		loaded := fallback()
		if err := yaml.Unmarshal(data, &loaded); err == nil {
			return loaded, nil
		}
	}

	loaded := fallback()
	if err := yaml.Unmarshal(embedded, &loaded); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return loaded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
