package pacman

import (
	"math"

	pm "github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

// Snapshot contains the game state for determinism tests and debugging.
type Snapshot struct {
	Tick  uint64
	State string
	Score int
	Lives int
	Level int
	Maze  string
	Timer float64

	World pm.Snapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:  g.tickCount,
		State: g.state,
		Score: g.score,
		Lives: g.lives,
		Level: g.levelNum,
		Maze:  g.level.ID,
		Timer: g.timer,
		World: g.world.Snapshot(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Timer)
	for _, r := range snap.State + snap.Maze {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	w := &snap.World
	h = h*31 + math.Float64bits(w.Player.Pos.X)
	h = h*31 + math.Float64bits(w.Player.Pos.Y)
	h = h*31 + uint64(w.Player.Dir) //#nosec G115 -- hash computation
	h = h*31 + uint64(w.PelletsLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(w.PowersLeft)  //#nosec G115 -- hash computation
	h = h*31 + uint64(w.Combo)       //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(w.SpeedFactor)
	h = h*31 + math.Float64bits(w.ScoreFactor)

	for _, gs := range w.Ghosts {
		h = h*31 + math.Float64bits(gs.Pos.X)
		h = h*31 + math.Float64bits(gs.Pos.Y)
		h = h*31 + uint64(gs.State) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(gs.FrightTimer)
	}

	for _, e := range w.Effects {
		h = h*31 + uint64(e.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(e.Remaining)
	}

	return h
}
