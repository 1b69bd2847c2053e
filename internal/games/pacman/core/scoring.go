package core

import "math"

// Point values.
const (
	DefaultPelletPoints    = 10
	DefaultPowerPoints     = 50
	DefaultGhostBasePoints = 200

	// maxComboShift keeps GhostPoints from overflowing on absurd combos.
	maxComboShift = 20
)

// ScoreSink receives awarded points.
type ScoreSink interface {
	AddScore(points int)
}

// GhostPoints returns the value of the combo-th ghost eaten in one fright
// episode: base, 2*base, 4*base, ...
func GhostPoints(base, combo int) int {
	if combo < 1 {
		return 0
	}
	shift := combo - 1
	if shift > maxComboShift {
		shift = maxComboShift
	}
	return base << shift
}

// ScaledPoints applies a score multiplier to a point value.
func ScaledPoints(points int, multiplier float64) int {
	return int(math.Round(float64(points) * multiplier))
}

// Combo counts ghosts eaten within one fright episode.
type Combo struct {
	Base  int
	count int
}

// Eat records one more ghost and returns its value.
func (c *Combo) Eat() int {
	c.count++
	base := c.Base
	if base <= 0 {
		base = DefaultGhostBasePoints
	}
	return GhostPoints(base, c.count)
}

// Reset ends the episode.
func (c *Combo) Reset() { c.count = 0 }

// Count returns the ghosts eaten so far in the episode.
func (c *Combo) Count() int { return c.count }

// Collision is the outcome of a player touching a ghost.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionGhostEaten
	CollisionPlayerHit
	CollisionShielded
)

func (c Collision) String() string {
	switch c {
	case CollisionGhostEaten:
		return "ghost_eaten"
	case CollisionPlayerHit:
		return "player_hit"
	case CollisionShielded:
		return "shielded"
	default:
		return "none"
	}
}

// ResolveCollision dispatches a player/ghost contact. Eyes are intangible.
// A vulnerable ghost is eaten and scored through sink. Any other ghost hits
// the player and ends the combo, unless the player is invincible, in which
// case nothing happens.
func ResolveCollision(p *Player, g *Ghost, combo *Combo, sink ScoreSink) (Collision, int) {
	switch {
	case g.State == GhostEyes:
		return CollisionNone, 0
	case g.State.Vulnerable():
		if !g.Eat() {
			return CollisionNone, 0
		}
		points := combo.Eat()
		sink.AddScore(points)
		return CollisionGhostEaten, points
	case p.Invincible:
		return CollisionShielded, 0
	default:
		combo.Reset()
		return CollisionPlayerHit, 0
	}
}
