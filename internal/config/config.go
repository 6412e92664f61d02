// Package config provides YAML-based configuration loading, difficulty
// presets and environment overrides for the 2048 front end.
package config

import (
	"errors"
	"fmt"
	"time"
)

// T2048Config contains all configuration for the game and its services.
type T2048Config struct {
	Board     BoardConfig     `yaml:"board" envPrefix:"BOARD_"`
	Spawn     SpawnConfig     `yaml:"spawn" envPrefix:"SPAWN_"`
	Animation AnimationConfig `yaml:"animation" envPrefix:"ANIMATION_"`
	Storage   StorageConfig   `yaml:"storage" envPrefix:"STORAGE_"`
	Sync      SyncConfig      `yaml:"sync" envPrefix:"SYNC_"`
	Spectate  SpectateConfig  `yaml:"spectate" envPrefix:"SPECTATE_"`
	Log       LogConfig       `yaml:"log" envPrefix:"LOG_"`
}

// BoardConfig selects the board variant. Size and Threshold override it when non-zero.
type BoardConfig struct {
	Variant   string `yaml:"variant" env:"VARIANT"`
	Size      int    `yaml:"size" env:"SIZE"`
	Threshold int    `yaml:"threshold" env:"THRESHOLD"`
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability" env:"FOUR_PROBABILITY"`
	StartTiles      int     `yaml:"start_tiles" env:"START_TILES"`
}

// AnimationConfig defines the pacing of a move's visible stages.
type AnimationConfig struct {
	Transition time.Duration `yaml:"transition" env:"TRANSITION"`
}

// StorageConfig selects where scores and the best score are kept.
type StorageConfig struct {
	Backend string      `yaml:"backend" env:"BACKEND"` // "sqlite", "redis" or "none"
	DBPath  string      `yaml:"db_path" env:"DB_PATH"`
	Redis   RedisConfig `yaml:"redis" envPrefix:"REDIS_"`
}

// RedisConfig holds the connection settings for the Redis best-score store.
type RedisConfig struct {
	Addr      string        `yaml:"addr" env:"ADDR"`
	Password  string        `yaml:"password" env:"PASSWORD"`
	DB        int           `yaml:"db" env:"DB"`
	KeyPrefix string        `yaml:"key_prefix" env:"KEY_PREFIX"`
	Timeout   time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

// SyncConfig configures publishing of finished games.
type SyncConfig struct {
	NATSURL string `yaml:"nats_url" env:"NATS_URL"`
	Subject string `yaml:"subject" env:"SUBJECT"`
}

// SpectateConfig configures the spectator HTTP server.
type SpectateConfig struct {
	Addr string `yaml:"addr" env:"ADDR"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
}

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Validate reports configuration values the game cannot run with.
func (c T2048Config) Validate() error {
	var errs []error
	if c.Board.Size < 0 {
		errs = append(errs, fmt.Errorf("board.size must not be negative, got %d", c.Board.Size))
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		errs = append(errs, fmt.Errorf("spawn.four_probability must be within [0, 1], got %v", c.Spawn.FourProbability))
	}
	if c.Spawn.StartTiles < 0 {
		errs = append(errs, fmt.Errorf("spawn.start_tiles must not be negative, got %d", c.Spawn.StartTiles))
	}
	if c.Animation.Transition < 0 {
		errs = append(errs, fmt.Errorf("animation.transition must not be negative, got %s", c.Animation.Transition))
	}
	switch c.Storage.Backend {
	case BackendSQLite, BackendRedis, BackendNone, "":
	default:
		errs = append(errs, fmt.Errorf("storage.backend %q is not one of sqlite, redis, none", c.Storage.Backend))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
