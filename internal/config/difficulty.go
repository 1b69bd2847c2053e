package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownPreset is returned when a preset name is not in the table.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset normalizes a user-supplied preset name. Case and surrounding
// space are ignored; an empty name means normal.
func ParsePreset(name string) DifficultyPreset {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DifficultyNormal
	}
	return DifficultyPreset(name)
}

// ResolvePreset looks a preset up in table. An unknown name resolves to the
// normal row and an error wrapping ErrUnknownPreset.
func ResolvePreset(table map[DifficultyPreset]PacmanPreset, preset DifficultyPreset) (PacmanPreset, error) {
	if p, ok := table[preset]; ok {
		return p, nil
	}
	fallback, ok := table[DifficultyNormal]
	if !ok {
		fallback = BuiltinPresets()[DifficultyNormal]
	}
	return fallback, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
}

// ApplyPacmanPreset writes the preset's ghost speed, growth and power-up
// duration factor into cfg. The normal row is applied when preset is
// unknown, and the returned error says so.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) error {
	table := BuiltinPresets()
	for name, p := range cfg.Difficulty.Presets {
		table[name] = p
	}

	p, err := ResolvePreset(table, preset)
	if err != nil {
		preset = DifficultyNormal
	}
	cfg.Difficulty.Preset = preset
	cfg.Ghosts.Speed = p.GhostSpeed
	cfg.Ghosts.SpeedGrowth = p.GhostSpeedGrowth
	cfg.PowerUps.DurationFactor = p.DurationFactor
	return err
}

// GhostSpeedForLevel returns base * growth^(level-1). Levels below 1 count
// as level 1.
func GhostSpeedForLevel(base, growth float64, level int) float64 {
	if level < 1 {
		level = 1
	}
	if growth <= 0 {
		growth = 1
	}
	return base * math.Pow(growth, float64(level-1))
}
