package core

// DefaultPlayerSpeed is the player's base speed in world units per second.
const DefaultPlayerSpeed = 140.0

// Player is the maze runner controlled by input.
type Player struct {
	Body      Body
	BaseSpeed float64
	Desired   Direction

	SpeedMultiplier float64
	ScoreMultiplier float64
	Invincible      bool

	Effects Effects

	topo Topology
}

// NewPlayer places a player on the center of spawn.
func NewPlayer(t Topology, spawn Cell, speed, tileSize float64) *Player {
	return &Player{
		Body: Body{
			Pos:       CenterOf(spawn, tileSize),
			Tolerance: DefaultCenterTolerance,
		},
		BaseSpeed:       speed,
		SpeedMultiplier: 1,
		ScoreMultiplier: 1,
		topo:            t,
	}
}

// SetDesiredDirection buffers a turn request. It is taken at the next tile
// center the turn is open at; a reversal is taken at once.
func (p *Player) SetDesiredDirection(d Direction) {
	p.Desired = d
}

// Advance moves the player for one tick.
func (p *Player) Advance(tileSize, dt float64) {
	if p.Desired != DirNone && p.Body.Dir != DirNone && p.Desired == p.Body.Dir.Reverse() {
		p.Body.Dir = p.Desired
	}
	p.Body.Speed = p.BaseSpeed * p.SpeedMultiplier
	Advance(&p.Body, p, tileSize, dt)
}

// Steer takes the buffered direction when open, else keeps going, else stops.
func (p *Player) Steer(cell Cell, current Direction) Direction {
	if p.Desired != DirNone && p.Passable(cell, p.Desired) {
		return p.Desired
	}
	if current != DirNone && p.Passable(cell, current) {
		return current
	}
	return DirNone
}

// Passable keeps the player out of walls, the ghost house and its door.
func (p *Player) Passable(cell Cell, d Direction) bool {
	if d == DirNone {
		return false
	}
	return playerMayEnter(p.topo, cell.Step(d))
}

// Respawn puts the player back on spawn with no motion or buffered input.
func (p *Player) Respawn(spawn Cell, tileSize float64) {
	p.Body.Pos = CenterOf(spawn, tileSize)
	p.Body.Dir = DirNone
	p.Desired = DirNone
}

func playerMayEnter(t Topology, c Cell) bool {
	if t.IsWall(c) || t.IsRestricted(c) {
		return false
	}
	if door, ok := t.Door(); ok && door == c {
		return false
	}
	return true
}
