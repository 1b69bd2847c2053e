// Package config loads the YAML game configuration and resolves difficulty
// presets.
package config

// PacmanConfig contains all tuning for the Pac-Man game.
type PacmanConfig struct {
	Grid       PacmanGrid       `yaml:"grid"`
	Player     PacmanPlayer     `yaml:"player"`
	Ghosts     PacmanGhosts     `yaml:"ghosts"`
	PowerUps   PacmanPowerUps   `yaml:"powerups"`
	Scoring    PacmanScoring    `yaml:"scoring"`
	Gameplay   PacmanGameplay   `yaml:"gameplay"`
	Difficulty PacmanDifficulty `yaml:"difficulty"`
}

// PacmanGrid defines the world grid.
type PacmanGrid struct {
	TileSize        float64 `yaml:"tile_size"`        // world units per tile edge
	CenterTolerance float64 `yaml:"center_tolerance"` // per-axis centered test
}

// PacmanPlayer defines the player entity.
type PacmanPlayer struct {
	Speed float64 `yaml:"speed"` // world units per second
}

// PacmanGhosts defines ghost movement and the house.
type PacmanGhosts struct {
	Speed          float64 `yaml:"speed"` // level-1 base speed; overwritten by the preset
	SpeedGrowth    float64 `yaml:"speed_growth"`
	FrightFactor   float64 `yaml:"fright_factor"`
	EyesFactor     float64 `yaml:"eyes_factor"`
	BlinkThreshold float64 `yaml:"blink_threshold"`
	Tolerance      float64 `yaml:"tolerance"`
	HouseDelayBase float64 `yaml:"house_delay_base"`
	HouseDelayStep float64 `yaml:"house_delay_step"`
}

// PacmanPowerUps defines the power pellet roll table.
type PacmanPowerUps struct {
	Weights        PowerUpWeights   `yaml:"weights"`
	Durations      PowerUpDurations `yaml:"durations"`
	SpeedFactor    float64          `yaml:"speed_factor"`
	ScoreFactor    float64          `yaml:"score_factor"`
	DurationFactor float64          `yaml:"duration_factor"` // overwritten by the preset
}

// PowerUpWeights are relative roll weights; zero disables a kind.
type PowerUpWeights struct {
	Speed      int `yaml:"speed"`
	Score      int `yaml:"score"`
	Freeze     int `yaml:"freeze"`
	Fright     int `yaml:"fright"`
	Invincible int `yaml:"invincible"`
}

// PowerUpDurations are base effect lengths in seconds.
type PowerUpDurations struct {
	Speed      float64 `yaml:"speed"`
	Score      float64 `yaml:"score"`
	Freeze     float64 `yaml:"freeze"`
	Fright     float64 `yaml:"fright"`
	Invincible float64 `yaml:"invincible"`
}

// PacmanScoring defines point values.
type PacmanScoring struct {
	Pellet    int `yaml:"pellet"`
	Power     int `yaml:"power"`
	GhostBase int `yaml:"ghost_base"`
}

// PacmanGameplay defines the round flow.
type PacmanGameplay struct {
	Lives           int     `yaml:"lives"`
	ReadySeconds    float64 `yaml:"ready_seconds"` // pause before each round starts
	DeathSeconds    float64 `yaml:"death_seconds"` // pause after a life is lost
	CollisionRadius float64 `yaml:"collision_radius"`
	StartLevel      int     `yaml:"start_level"`
}

// PacmanDifficulty selects a preset and may override the built-in table.
type PacmanDifficulty struct {
	Preset  DifficultyPreset                  `yaml:"preset"`
	Presets map[DifficultyPreset]PacmanPreset `yaml:"presets"`
}

// PacmanPreset is one row of the difficulty table.
type PacmanPreset struct {
	GhostSpeed       float64 `yaml:"ghost_speed"`
	GhostSpeedGrowth float64 `yaml:"ghost_speed_growth"`
	DurationFactor   float64 `yaml:"powerup_duration_factor"`
}

// DifficultyPreset names a difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyChaos  DifficultyPreset = "chaos"
	// DifficultyFixed plays normal parameters without per-level growth.
	DifficultyFixed DifficultyPreset = "fixed"
)

// AllPresets lists the selectable presets in menu order.
func AllPresets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyChaos, DifficultyFixed}
}
