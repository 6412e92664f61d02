package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in configuration.
// It mirrors defaults/t2048.yaml and is used if the embedded file cannot be parsed.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Variant: "classic",
		},
		Spawn: SpawnConfig{
			FourProbability: 0.10,
			StartTiles:      2,
		},
		Animation: AnimationConfig{
			Transition: 100 * time.Millisecond,
		},
		Storage: StorageConfig{
			Backend: BackendSQLite,
			DBPath:  "~/.arcade/scores.db",
			Redis: RedisConfig{
				Addr:      "localhost:6379",
				KeyPrefix: "t2048",
				Timeout:   2 * time.Second,
			},
		},
		Sync: SyncConfig{
			Subject: "t2048.game.ended",
		},
		Spectate: SpectateConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
