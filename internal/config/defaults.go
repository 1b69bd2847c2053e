package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the hardcoded configuration used when neither
// a file nor the embedded YAML can be read.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Grid: PacmanGrid{
			TileSize:        32,
			CenterTolerance: 1.0,
		},
		Player: PacmanPlayer{
			Speed: 140,
		},
		Ghosts: PacmanGhosts{
			Speed:          120,
			SpeedGrowth:    1.10,
			FrightFactor:   0.7,
			EyesFactor:     1.7,
			BlinkThreshold: 2,
			Tolerance:      1.2,
			HouseDelayBase: 0.8,
			HouseDelayStep: 0.6,
		},
		PowerUps: PacmanPowerUps{
			Weights: PowerUpWeights{
				Speed:  1,
				Score:  1,
				Freeze: 1,
				Fright: 1,
			},
			Durations: PowerUpDurations{
				Speed:      6,
				Score:      8,
				Freeze:     4,
				Fright:     6,
				Invincible: 5,
			},
			SpeedFactor:    1.8,
			ScoreFactor:    2,
			DurationFactor: 1,
		},
		Scoring: PacmanScoring{
			Pellet:    10,
			Power:     50,
			GhostBase: 200,
		},
		Gameplay: PacmanGameplay{
			Lives:           3,
			ReadySeconds:    1.5,
			DeathSeconds:    0.7,
			CollisionRadius: 0.6,
			StartLevel:      1,
		},
		Difficulty: PacmanDifficulty{
			Preset:  DifficultyNormal,
			Presets: BuiltinPresets(),
		},
	}
}

// BuiltinPresets returns the standard difficulty table.
func BuiltinPresets() map[DifficultyPreset]PacmanPreset {
	return map[DifficultyPreset]PacmanPreset{
		DifficultyEasy:   {GhostSpeed: 90, GhostSpeedGrowth: 1.08, DurationFactor: 1.4},
		DifficultyNormal: {GhostSpeed: 120, GhostSpeedGrowth: 1.10, DurationFactor: 1.0},
		DifficultyHard:   {GhostSpeed: 150, GhostSpeedGrowth: 1.12, DurationFactor: 0.8},
		DifficultyChaos:  {GhostSpeed: 180, GhostSpeedGrowth: 1.15, DurationFactor: 0.6},
		DifficultyFixed:  {GhostSpeed: 120, GhostSpeedGrowth: 1.0, DurationFactor: 1.0},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman", "pacman_classic":
		return defaultPacmanYAML
	default:
		return nil
	}
}
