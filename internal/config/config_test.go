package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "t2048.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := loadYAML("does-not-exist.yaml", "", defaultT2048YAML, func() T2048Config { return T2048Config{} })
	if err != nil {
		t.Fatalf("loadYAML failed: %v", err)
	}
	want := DefaultT2048Config()
	if cfg != want {
		t.Errorf("embedded defaults differ from DefaultT2048Config():\n got %+v\nwant %+v", cfg, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
board:
  variant: big
spawn:
  four_probability: 0.2
animation:
  transition: 50ms
storage:
  backend: none
`)

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048 failed: %v", err)
	}
	if cfg.Board.Variant != "big" {
		t.Errorf("variant = %q, want big", cfg.Board.Variant)
	}
	if cfg.Spawn.FourProbability != 0.2 {
		t.Errorf("four_probability = %v, want 0.2", cfg.Spawn.FourProbability)
	}
	if cfg.Animation.Transition != 50*time.Millisecond {
		t.Errorf("transition = %s, want 50ms", cfg.Animation.Transition)
	}
	if cfg.Storage.Backend != BackendNone {
		t.Errorf("backend = %q, want none", cfg.Storage.Backend)
	}
	// Unset keys keep their defaults.
	if cfg.Spawn.StartTiles != 2 {
		t.Errorf("start_tiles = %d, want default 2", cfg.Spawn.StartTiles)
	}
	if cfg.Sync.Subject != "t2048.game.ended" {
		t.Errorf("subject = %q, want default", cfg.Sync.Subject)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadT2048(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := writeConfig(t, "board: [unclosed")
	if _, err := LoadT2048(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}

	invalid := writeConfig(t, "spawn:\n  four_probability: 1.5\n")
	if _, err := LoadT2048(invalid); err == nil {
		t.Error("out of range probability should fail validation")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, "board:\n  variant: classic\n")
	t.Setenv("T2048_BOARD_VARIANT", "mini")
	t.Setenv("T2048_SPAWN_FOUR_PROBABILITY", "0.3")
	t.Setenv("T2048_ANIMATION_TRANSITION", "0s")
	t.Setenv("T2048_STORAGE_REDIS_ADDR", "redis:6380")
	t.Setenv("T2048_LOG_LEVEL", "debug")

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048 failed: %v", err)
	}
	if cfg.Board.Variant != "mini" {
		t.Errorf("variant = %q, want mini", cfg.Board.Variant)
	}
	if cfg.Spawn.FourProbability != 0.3 {
		t.Errorf("four_probability = %v, want 0.3", cfg.Spawn.FourProbability)
	}
	if cfg.Animation.Transition != 0 {
		t.Errorf("transition = %s, want 0s", cfg.Animation.Transition)
	}
	if cfg.Storage.Redis.Addr != "redis:6380" {
		t.Errorf("redis addr = %q, want redis:6380", cfg.Storage.Redis.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestEnvOverrideParseError(t *testing.T) {
	t.Setenv("T2048_BOARD_SIZE", "four")
	cfg := DefaultT2048Config()
	if err := ApplyEnv(&cfg); err == nil {
		t.Error("non-numeric size should fail to parse")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name string
		want DifficultyPreset
		prob float64
	}{
		{"", DifficultyNormal, 0.10},
		{"easy", DifficultyEasy, 0.05},
		{"Normal", DifficultyNormal, 0.10},
		{" hard ", DifficultyHard, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, err := ParsePreset(tt.name)
			if err != nil {
				t.Fatalf("ParsePreset(%q) failed: %v", tt.name, err)
			}
			if preset != tt.want {
				t.Errorf("ParsePreset(%q) = %s, want %s", tt.name, preset, tt.want)
			}
			cfg := DefaultT2048Config()
			ApplyT2048Preset(&cfg, preset)
			if cfg.Spawn.FourProbability != tt.prob {
				t.Errorf("four_probability = %v, want %v", cfg.Spawn.FourProbability, tt.prob)
			}
		})
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultT2048Config()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}

	cfg.Board.Size = -1
	cfg.Storage.Backend = "postgres"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"board.size", "storage.backend"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "warn"}, &buf)
	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("level = %s, want warn", logger.GetLevel())
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected log output %q", buf.String())
	}

	if NewLogger(LogConfig{Level: "loud"}, &buf).GetLevel() != log.InfoLevel {
		t.Error("unknown level should fall back to info")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x/scores.db"); got != filepath.Join(home, "x", "scores.db") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome changed an absolute path: %q", got)
	}
}
