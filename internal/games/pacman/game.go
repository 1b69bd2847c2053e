// Package pacman wires the maze engine into the platform game interface:
// input, lives, round flow, level rotation and rendering.
package pacman

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
	"github.com/vovakirdan/tui-pacman/internal/registry"

	pm "github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

// GameState constants
const (
	StateReady    = "ready"    // Entities placed, waiting out the ready delay
	StatePlaying  = "playing"  // Maze running
	StateDying    = "dying"    // Life lost, short pause before respawn
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No lives left
)

// GameMode selects the power pellet behavior.
type GameMode int

const (
	ModePowerUps GameMode = iota // Power pellets roll a random effect
	ModeClassic                  // Power pellets always frighten the ghosts
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel overrides gameplay.start_level when positive
var startLevel int

// levelPath is a level file or directory used instead of the embedded maps
var levelPath string

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An empty name keeps the
// preset from the config file.
func SetDifficultyPreset(preset string) {
	if preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the level number a run starts on.
func SetStartLevel(level int) {
	startLevel = level
}

// SetLevelPath sets a level file or directory to play instead of the
// embedded maps.
func SetLevelPath(path string) {
	levelPath = path
}

// SetLogger sets the logger used for round events. nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LoadLevels returns the levels a run would rotate through for path. An
// empty path means the embedded maps.
func LoadLevels(path string) ([]levels.Level, error) {
	if path == "" {
		return levels.Builtin().LoadAll()
	}
	return levels.LoadFromPath(path)
}

// Game implements Pac-Man on top of the maze engine.
type Game struct {
	mode GameMode

	world  *pm.World
	levels []levels.Level
	level  *levels.Level

	state     string
	prevState string // state to resume when unpausing
	timer     float64
	score     int
	lives     int
	levelNum  int
	tickCount uint64
	runID     string

	runtime core.RuntimeConfig
	cfg     config.PacmanConfig

	tooSmall bool
}

// New creates a new Pac-Man game with random power pellet effects.
func New() *Game {
	return &Game{mode: ModePowerUps}
}

// NewClassic creates a new Pac-Man game whose power pellets only frighten.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "pacman_classic"
	}
	return "pacman"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Pac-Man (Classic)"
	}
	return "Pac-Man Power-Up Edition"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.mode == ModeClassic {
		return "Power pellets frighten the ghosts, nothing else"
	}
	return "Power pellets roll speed, score, freeze or fright effects"
}

// RunID identifies the current run; it changes on every Reset.
func (g *Game) RunID() string { return g.runID }

// Preset returns the difficulty preset the run was started with.
func (g *Game) Preset() config.DifficultyPreset { return g.cfg.Difficulty.Preset }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.runID = uuid.NewString()

	cfg, err := config.LoadPacman(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultPacmanConfig()
	}

	preset := cfg.Difficulty.Preset
	if difficultyPreset != "" {
		preset = difficultyPreset
	}
	if err := config.ApplyPacmanPreset(&cfg, preset); err != nil {
		logger.Warn("difficulty preset", "err", err)
	}
	g.cfg = cfg

	lvls, err := LoadLevels(levelPath)
	if err != nil || len(lvls) == 0 {
		logger.Warn("level load failed, using built-in maps", "path", levelPath, "err", err)
		lvls, _ = levels.Builtin().LoadAll()
	}
	g.levels = lvls

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	if g.lives <= 0 {
		g.lives = 1
	}
	g.levelNum = cfg.Gameplay.StartLevel
	if startLevel > 0 {
		g.levelNum = startLevel
	}
	if g.levelNum < 1 {
		g.levelNum = 1
	}
	g.tickCount = 0

	g.loadLevel()

	logger.Info("run started",
		"run", g.runID,
		"game", g.ID(),
		"preset", g.cfg.Difficulty.Preset,
		"level", g.levelNum,
		"maze", g.level.ID,
		"seed", runtime.Seed,
	)
}

// loadLevel builds a fresh world for the current level number.
func (g *Game) loadLevel() {
	g.level = &g.levels[(g.levelNum-1)%len(g.levels)]

	// Each maze gets its own stream so a level plays the same regardless of
	// how the previous one went.
	rng := pm.NewSimpleRNG(g.runtime.Seed + int64(g.levelNum)*7919)
	g.world = pm.NewWorld(g.level.Maze(), worldConfig(g.cfg, g.levelNum, g.mode == ModeClassic), rng, g)
	if tol := g.cfg.Grid.CenterTolerance; tol > 0 {
		g.world.Player.Body.Tolerance = tol
	}
	_, fits := computeLayout(g.runtime.ScreenW, g.runtime.ScreenH, g.world.Maze.Width(), g.world.Maze.Height())
	g.tooSmall = !fits
	g.enter(StateReady, g.cfg.Gameplay.ReadySeconds)
}

func (g *Game) enter(state string, seconds float64) {
	g.state = state
	g.timer = seconds
}

// AddScore receives points from the world.
func (g *Game) AddScore(points int) {
	g.score += points
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = g.prevState
		case StateReady, StatePlaying, StateDying:
			g.prevState = g.state
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.steer(in)
	dt := g.runtime.Dt()

	switch g.state {
	case StateReady:
		g.timer -= dt
		if g.timer <= 0 {
			g.state = StatePlaying
		}

	case StateDying:
		g.timer -= dt
		if g.timer <= 0 {
			g.world.Respawn()
			g.enter(StateReady, g.cfg.Gameplay.ReadySeconds)
		}

	case StatePlaying:
		g.handleEvents(g.world.Step(dt))
	}

	return core.StepResult{State: g.State()}
}

// steer buffers the requested direction. Input is taken while the ready
// delay runs so the first move is not lost.
func (g *Game) steer(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.world.Player.SetDesiredDirection(pm.DirUp)
	case in.Has(core.ActionDown):
		g.world.Player.SetDesiredDirection(pm.DirDown)
	case in.Has(core.ActionLeft):
		g.world.Player.SetDesiredDirection(pm.DirLeft)
	case in.Has(core.ActionRight):
		g.world.Player.SetDesiredDirection(pm.DirRight)
	}
}

func (g *Game) handleEvents(ev pm.StepEvents) {
	if ev.PowerEaten {
		logger.Debug("power pellet", "effect", ev.PowerUp, "level", g.levelNum)
	}
	for _, ge := range ev.GhostsEaten {
		logger.Debug("ghost eaten", "ghost", ge.Name, "points", ge.Points)
	}

	switch {
	case ev.PlayerHit:
		g.handleHit(ev.HitBy)
	case ev.Cleared:
		g.handleLevelClear()
	}
}

// handleHit takes a life and either ends the run or schedules a respawn.
func (g *Game) handleHit(ghost string) {
	g.lives--
	logger.Info("life lost", "ghost", ghost, "lives", g.lives, "level", g.levelNum, "score", g.score)

	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		logger.Info("game over", "run", g.runID, "score", g.score, "level", g.levelNum)
		return
	}
	g.enter(StateDying, g.cfg.Gameplay.DeathSeconds)
}

// handleLevelClear moves to the next maze in rotation with faster ghosts.
func (g *Game) handleLevelClear() {
	logger.Info("level cleared", "level", g.levelNum, "maze", g.level.ID, "score", g.score)
	g.levelNum++
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.levelNum,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Phase returns the round state name.
func (g *Game) Phase() string { return g.state }

// World exposes the running maze for inspection.
func (g *Game) World() *pm.World { return g.world }

// Register the games with the registry
func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
	registry.Register("pacman_classic", func() registry.Game {
		return NewClassic()
	})
}
