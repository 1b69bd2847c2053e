package core

//go:generate go tool mockgen -destination=./mocks/core_mock.go -package=mocks . GhostCommander,ScoreSink

// Release delays for ghosts that start in the house: the i-th ghost waits
// HouseDelayBase + i*HouseDelayStep seconds.
const (
	DefaultHouseDelayBase = 0.8
	DefaultHouseDelayStep = 0.6

	// DefaultCollisionRadius is the contact distance in tiles.
	DefaultCollisionRadius = 0.6
)

// WorldConfig holds everything a World needs besides the maze.
type WorldConfig struct {
	TileSize        float64
	PlayerSpeed     float64
	Ghost           GhostParams
	HouseDelayBase  float64
	HouseDelayStep  float64
	CollisionRadius float64

	PelletPoints    int
	PowerPoints     int
	GhostBasePoints int

	PowerUps PowerUpTable
}

// DefaultWorldConfig returns the standard tuning.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		TileSize:        DefaultTileSize,
		PlayerSpeed:     DefaultPlayerSpeed,
		Ghost:           DefaultGhostParams(DefaultGhostSpeed),
		HouseDelayBase:  DefaultHouseDelayBase,
		HouseDelayStep:  DefaultHouseDelayStep,
		CollisionRadius: DefaultCollisionRadius,
		PelletPoints:    DefaultPelletPoints,
		PowerPoints:     DefaultPowerPoints,
		GhostBasePoints: DefaultGhostBasePoints,
		PowerUps:        DefaultPowerUpTable(),
	}
}

// GhostEaten reports one ghost eaten during a tick.
type GhostEaten struct {
	Name   string
	Points int
}

// StepEvents describes what happened during one World.Step.
type StepEvents struct {
	PelletsEaten int
	PowerEaten   bool
	PowerUp      EffectKind
	GhostsEaten  []GhostEaten
	Shielded     int
	PlayerHit    bool
	HitBy        string
	Expired      []EffectKind
	Cleared      bool
	Points       int
}

// World runs one maze: the player, the ghosts, the pellets and the combo.
type World struct {
	Maze   *Maze
	Player *Player
	Ghosts []*Ghost
	Combo  Combo

	cfg    WorldConfig
	rng    RandomSource
	sink   ScoreSink
	frozen bool
}

// NewWorld places the player and ghosts on their spawns in m.
func NewWorld(m *Maze, cfg WorldConfig, rng RandomSource, sink ScoreSink) *World {
	if cfg.TileSize <= 0 {
		cfg.TileSize = DefaultTileSize
	}
	if cfg.CollisionRadius <= 0 {
		cfg.CollisionRadius = DefaultCollisionRadius
	}
	if fd := cfg.PowerUps.FrightDuration(); fd > 0 {
		cfg.Ghost.FrightDuration = fd
	}

	w := &World{
		Maze:  m,
		Combo: Combo{Base: cfg.GhostBasePoints},
		cfg:   cfg,
		rng:   rng,
		sink:  sink,
	}
	spawn, _ := m.PlayerSpawn()
	w.Player = NewPlayer(m, spawn, cfg.PlayerSpeed, cfg.TileSize)
	w.spawnGhosts()
	return w
}

func (w *World) spawnGhosts() {
	w.Ghosts = w.Ghosts[:0]
	housed := 0
	for i, cell := range w.Maze.GhostSpawns() {
		release := 0.0
		if w.Maze.IsRestricted(cell) {
			release = w.cfg.HouseDelayBase + float64(housed)*w.cfg.HouseDelayStep
			housed++
		}
		name := GhostNames[i%len(GhostNames)]
		w.Ghosts = append(w.Ghosts, NewGhost(name, cell, release, w.cfg.Ghost, w.Maze, w.rng, w.cfg.TileSize))
	}
}

// Config returns the world tuning.
func (w *World) Config() WorldConfig { return w.cfg }

// TileSize returns the world tile edge length.
func (w *World) TileSize() float64 { return w.cfg.TileSize }

// Respawn clears the player's effects and puts every entity back on its
// spawn. Pellets are kept.
func (w *World) Respawn() {
	w.Player.Effects.Clear(w.Player)
	spawn, _ := w.Maze.PlayerSpawn()
	w.Player.Respawn(spawn, w.cfg.TileSize)
	w.frozen = false
	w.Combo.Reset()
	w.spawnGhosts()
}

// FreezeGhosts toggles the freeze flag on every ghost.
func (w *World) FreezeGhosts(frozen bool) {
	w.frozen = frozen
	for _, g := range w.Ghosts {
		g.Frozen = frozen
	}
}

// FrightenGhosts starts a fright episode on every eligible ghost.
func (w *World) FrightenGhosts() {
	for _, g := range w.Ghosts {
		g.Frighten()
	}
}

// Frozen reports whether the ghosts are frozen.
func (w *World) Frozen() bool { return w.frozen }

// AnyVulnerable reports whether a fright episode is running.
func (w *World) AnyVulnerable() bool {
	for _, g := range w.Ghosts {
		if g.State.Vulnerable() {
			return true
		}
	}
	return false
}

// tally forwards to the sink and counts the tick's points.
type tally struct {
	sink   ScoreSink
	points int
}

func (t *tally) AddScore(points int) {
	t.points += points
	if t.sink != nil {
		t.sink.AddScore(points)
	}
}

// Step advances the world by dt seconds. The order is fixed: player motion
// and eating, each ghost's update followed by its collision check, combo
// reset, effect expiry, then the level-clear test. A hit ends the tick at
// once.
func (w *World) Step(dt float64) (ev StepEvents) {
	score := &tally{sink: w.sink}
	defer func() { ev.Points = score.points }()

	p := w.Player
	ts := w.cfg.TileSize

	p.Advance(ts, dt)
	cell := p.Body.Cell(ts)
	if w.Maze.EatPellet(cell) {
		ev.PelletsEaten++
		score.AddScore(ScaledPoints(w.cfg.PelletPoints, p.ScoreMultiplier))
	}
	if w.Maze.EatPower(cell) {
		ev.PowerEaten = true
		score.AddScore(ScaledPoints(w.cfg.PowerPoints, p.ScoreMultiplier))
		ev.PowerUp = w.cfg.PowerUps.Roll(w.rng)
		p.AddEffect(w.cfg.PowerUps.NewEffect(ev.PowerUp, w))
	}

	reach := w.cfg.CollisionRadius * ts
	for _, g := range w.Ghosts {
		g.Update(dt)
		if p.Body.Pos.Dist(g.Body.Pos) >= reach {
			continue
		}
		outcome, points := ResolveCollision(p, g, &w.Combo, score)
		switch outcome {
		case CollisionGhostEaten:
			ev.GhostsEaten = append(ev.GhostsEaten, GhostEaten{Name: g.Name, Points: points})
		case CollisionShielded:
			ev.Shielded++
		case CollisionPlayerHit:
			ev.PlayerHit = true
			ev.HitBy = g.Name
			return ev
		}
	}

	if !w.AnyVulnerable() {
		w.Combo.Reset()
	}

	ev.Expired = p.TickEffects(dt)
	ev.Cleared = w.Maze.Cleared()
	return ev
}

// Snapshot is a read-only copy of the world for rendering and tests.
type Snapshot struct {
	Player       EntitySnapshot
	Ghosts       []GhostSnapshot
	Effects      []ActiveEffect
	PelletsLeft  int
	PowersLeft   int
	Combo        int
	Frozen       bool
	Invincible   bool
	SpeedFactor  float64
	ScoreFactor  float64
	PlayerCell   Cell
	PlayerWanted Direction
}

// EntitySnapshot is the drawable part of a body.
type EntitySnapshot struct {
	Pos Vec
	Dir Direction
}

// GhostSnapshot is the drawable part of a ghost.
type GhostSnapshot struct {
	Name        string
	Pos         Vec
	Dir         Direction
	State       GhostState
	FrightTimer float64
	Frozen      bool
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	p := w.Player
	s := Snapshot{
		Player:       EntitySnapshot{Pos: p.Body.Pos, Dir: p.Body.Dir},
		Effects:      p.Effects.Active(),
		PelletsLeft:  w.Maze.PelletsLeft(),
		PowersLeft:   w.Maze.PowersLeft(),
		Combo:        w.Combo.Count(),
		Frozen:       w.frozen,
		Invincible:   p.Invincible,
		SpeedFactor:  p.SpeedMultiplier,
		ScoreFactor:  p.ScoreMultiplier,
		PlayerCell:   p.Body.Cell(w.cfg.TileSize),
		PlayerWanted: p.Desired,
	}
	for _, g := range w.Ghosts {
		s.Ghosts = append(s.Ghosts, GhostSnapshot{
			Name:        g.Name,
			Pos:         g.Body.Pos,
			Dir:         g.Body.Dir,
			State:       g.State,
			FrightTimer: g.FrightTimer,
			Frozen:      g.Frozen,
		})
	}
	return s
}
