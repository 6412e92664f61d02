package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset resolves a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(name))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// FourProbabilityForPreset returns the chance of a spawned 4 for a preset.
// More fours fill the board faster and leave fewer small merges.
func FourProbabilityForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.25
	default:
		return 0.10
	}
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	cfg.Spawn.FourProbability = FourProbabilityForPreset(preset)
}
