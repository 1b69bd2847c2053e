package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/config"

	pm "github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

// worldConfig translates the loaded config into engine tuning for a level.
// Ghost speed grows per level; everything else is level-independent.
func worldConfig(cfg config.PacmanConfig, level int, classic bool) pm.WorldConfig {
	ghostSpeed := config.GhostSpeedForLevel(cfg.Ghosts.Speed, cfg.Ghosts.SpeedGrowth, level)

	ghost := pm.DefaultGhostParams(ghostSpeed)
	if cfg.Ghosts.FrightFactor > 0 {
		ghost.FrightFactor = cfg.Ghosts.FrightFactor
	}
	if cfg.Ghosts.EyesFactor > 0 {
		ghost.EyesFactor = cfg.Ghosts.EyesFactor
	}
	if cfg.Ghosts.BlinkThreshold > 0 {
		ghost.BlinkThreshold = cfg.Ghosts.BlinkThreshold
	}
	if cfg.Ghosts.Tolerance > 0 {
		ghost.Tolerance = cfg.Ghosts.Tolerance
	}

	w := cfg.PowerUps.Weights
	d := cfg.PowerUps.Durations
	return pm.WorldConfig{
		TileSize:        cfg.Grid.TileSize,
		PlayerSpeed:     cfg.Player.Speed,
		Ghost:           ghost,
		HouseDelayBase:  cfg.Ghosts.HouseDelayBase,
		HouseDelayStep:  cfg.Ghosts.HouseDelayStep,
		CollisionRadius: cfg.Gameplay.CollisionRadius,
		PelletPoints:    cfg.Scoring.Pellet,
		PowerPoints:     cfg.Scoring.Power,
		GhostBasePoints: cfg.Scoring.GhostBase,
		PowerUps: pm.PowerUpTable{
			WeightSpeed:       w.Speed,
			WeightScore:       w.Score,
			WeightFreeze:      w.Freeze,
			WeightFright:      w.Fright,
			WeightInvincible:  w.Invincible,
			SpeedSeconds:      d.Speed,
			ScoreSeconds:      d.Score,
			FreezeSeconds:     d.Freeze,
			FrightSeconds:     d.Fright,
			InvincibleSeconds: d.Invincible,
			SpeedFactor:       cfg.PowerUps.SpeedFactor,
			ScoreFactor:       cfg.PowerUps.ScoreFactor,
			DurationFactor:    cfg.PowerUps.DurationFactor,
			Classic:           classic,
		},
	}
}
