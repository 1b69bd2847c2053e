package core

// GhostState is the behavioral mode of a ghost.
type GhostState int

const (
	GhostHouse GhostState = iota
	GhostNormal
	GhostFright
	GhostBlink
	GhostEyes
)

func (s GhostState) String() string {
	switch s {
	case GhostHouse:
		return "house"
	case GhostNormal:
		return "normal"
	case GhostFright:
		return "fright"
	case GhostBlink:
		return "blink"
	case GhostEyes:
		return "eyes"
	default:
		return "unknown"
	}
}

// Vulnerable reports whether a ghost in this state can be eaten.
func (s GhostState) Vulnerable() bool {
	return s == GhostFright || s == GhostBlink
}

// Ghost tuning defaults.
const (
	DefaultGhostSpeed     = 120.0
	DefaultFrightFactor   = 0.7
	DefaultEyesFactor     = 1.7
	DefaultFrightDuration = 6.0
	DefaultBlinkThreshold = 2.0
	DefaultGhostTolerance = 1.2
	DefaultArrivalRadius  = 2.0
)

// GhostNames are handed out to ghosts in spawn order.
var GhostNames = []string{"blinky", "pinky", "inky", "clyde"}

// GhostParams configures a ghost at spawn.
type GhostParams struct {
	BaseSpeed      float64
	FrightFactor   float64
	EyesFactor     float64
	FrightDuration float64
	BlinkThreshold float64
	Tolerance      float64
	ArrivalRadius  float64
}

// DefaultGhostParams returns the standard tuning for a base speed.
func DefaultGhostParams(base float64) GhostParams {
	return GhostParams{
		BaseSpeed:      base,
		FrightFactor:   DefaultFrightFactor,
		EyesFactor:     DefaultEyesFactor,
		FrightDuration: DefaultFrightDuration,
		BlinkThreshold: DefaultBlinkThreshold,
		Tolerance:      DefaultGhostTolerance,
		ArrivalRadius:  DefaultArrivalRadius,
	}
}

// Ghost is one adversary and its state machine.
type Ghost struct {
	Name  string
	Body  Body
	State GhostState

	BaseSpeed   float64
	FrightSpeed float64
	EyesSpeed   float64

	FrightTimer    float64
	FrightDuration float64
	BlinkThreshold float64
	ReleaseTimer   float64

	Spawn     Vec
	SpawnCell Cell
	Frozen    bool

	arrival  float64
	tileSize float64
	topo     Topology
	rng      RandomSource

	decided    Cell
	hasDecided bool

	homeDist map[Cell]int // eyes distance to SpawnCell, built on first use
}

// NewGhost creates a ghost on the center of spawn. A spawn on house floor
// starts in GhostHouse and waits release seconds before walking out.
func NewGhost(name string, spawn Cell, release float64, p GhostParams, t Topology, rng RandomSource, tileSize float64) *Ghost {
	g := &Ghost{
		Name:           name,
		BaseSpeed:      p.BaseSpeed,
		FrightSpeed:    p.BaseSpeed * p.FrightFactor,
		EyesSpeed:      p.BaseSpeed * p.EyesFactor,
		FrightDuration: p.FrightDuration,
		BlinkThreshold: p.BlinkThreshold,
		Spawn:          CenterOf(spawn, tileSize),
		SpawnCell:      spawn,
		arrival:        p.ArrivalRadius,
		tileSize:       tileSize,
		topo:           t,
		rng:            rng,
	}
	g.Body = Body{Pos: g.Spawn, Speed: g.BaseSpeed, Tolerance: p.Tolerance}

	if t.IsRestricted(spawn) {
		g.State = GhostHouse
		g.ReleaseTimer = release
	} else {
		g.State = GhostNormal
		g.Body.Dir = Directions[rng.Intn(len(Directions))]
	}
	return g
}

// Cell returns the tile the ghost is on.
func (g *Ghost) Cell() Cell {
	return g.Body.Cell(g.tileSize)
}

// Update advances the ghost by dt. A frozen ghost is not touched at all.
func (g *Ghost) Update(dt float64) {
	if g.Frozen || dt <= 0 {
		return
	}

	switch g.State {
	case GhostHouse:
		if g.ReleaseTimer > 0 {
			g.ReleaseTimer -= dt
			if g.ReleaseTimer > 0 {
				return
			}
			dt = -g.ReleaseTimer
			g.ReleaseTimer = 0
		}
		g.Body.Speed = g.BaseSpeed
		Advance(&g.Body, g, g.tileSize, dt)
		if !g.topo.IsRestricted(g.Cell()) {
			g.State = GhostNormal
			g.hasDecided = false
		}

	case GhostEyes:
		Advance(&g.Body, g, g.tileSize, dt)
		if g.Body.Pos.Dist(g.Spawn) <= g.arrival {
			g.arrive()
		}

	case GhostFright, GhostBlink:
		g.FrightTimer -= dt
		if g.State == GhostFright && g.FrightTimer <= g.BlinkThreshold {
			g.State = GhostBlink
		}
		if g.FrightTimer <= 0 {
			g.FrightTimer = 0
			g.State = GhostNormal
			g.Body.Speed = g.BaseSpeed
		}
		Advance(&g.Body, g, g.tileSize, dt)

	default:
		Advance(&g.Body, g, g.tileSize, dt)
	}
}

// Frighten starts or restarts a fright episode. Ghosts in eyes ignore it,
// and unlike the arcade rule so do ghosts still waiting in the house.
func (g *Ghost) Frighten() bool {
	if g.State == GhostEyes || g.State == GhostHouse {
		return false
	}
	g.State = GhostFright
	g.FrightTimer = g.FrightDuration
	g.Body.Speed = g.FrightSpeed
	g.Body.Dir = g.Body.Dir.Reverse()
	return true
}

// Eat sends a vulnerable ghost home as eyes.
func (g *Ghost) Eat() bool {
	if !g.State.Vulnerable() {
		return false
	}
	g.State = GhostEyes
	g.FrightTimer = 0
	g.Body.Speed = g.EyesSpeed
	g.hasDecided = false
	return true
}

func (g *Ghost) arrive() {
	g.Body.Pos = g.Spawn
	g.State = GhostNormal
	g.Body.Speed = g.BaseSpeed
	g.hasDecided = false

	var open []Direction
	for _, d := range Directions {
		if g.Passable(g.SpawnCell, d) {
			open = append(open, d)
		}
	}
	g.Body.Dir = DirNone
	if len(open) > 0 {
		g.Body.Dir = open[g.rng.Intn(len(open))]
	}
}

// Steer picks the direction at a tile center according to the state. The
// pick is made once per visit to a cell; while the body stays inside the
// centered tolerance it keeps the direction it already chose.
func (g *Ghost) Steer(cell Cell, current Direction) Direction {
	if g.hasDecided && g.decided == cell && current != DirNone && g.Passable(cell, current) {
		return current
	}

	var choice Direction
	switch {
	case g.State == GhostEyes:
		choice = g.steerHome(cell, current)
	case g.topo.IsRestricted(cell):
		if door, ok := g.topo.Door(); ok {
			choice = g.steerToward(cell, current, door, false)
		} else {
			choice = g.wander(cell, current)
		}
	default:
		choice = g.wander(cell, current)
	}

	g.decided = cell
	g.hasDecided = true
	return choice
}

// Passable applies the house rules on top of the walls. Inside the house a
// ghost may only move over house floor or onto the door; outside it may
// enter neither unless it is eyes.
func (g *Ghost) Passable(cell Cell, d Direction) bool {
	if d == DirNone {
		return false
	}
	next := cell.Step(d)
	if g.topo.IsWall(next) {
		return false
	}
	door, hasDoor := g.topo.Door()
	atDoor := hasDoor && next == door

	if g.topo.IsRestricted(cell) {
		return atDoor || g.topo.IsRestricted(next)
	}
	if g.State == GhostEyes {
		return true
	}
	return !atDoor && !g.topo.IsRestricted(next)
}

// wander picks uniformly among open exits excluding the reverse, then the
// reverse, then anything open.
func (g *Ghost) wander(cell Cell, current Direction) Direction {
	reverse := current.Reverse()
	var open []Direction
	for _, d := range Directions {
		if d != reverse && g.Passable(cell, d) {
			open = append(open, d)
		}
	}

	choice := DirNone
	switch {
	case len(open) > 0:
		choice = open[g.rng.Intn(len(open))]
	case reverse != DirNone && g.Passable(cell, reverse):
		choice = reverse
	default:
		for _, d := range Directions {
			if g.Passable(cell, d) {
				choice = d
				break
			}
		}
	}
	return choice
}

// steerToward is the greedy tile choice: the open exit whose neighbor is
// closest to target. With noReverse the reverse is only taken at dead ends.
func (g *Ghost) steerToward(cell Cell, current Direction, target Cell, noReverse bool) Direction {
	if cell == target {
		return DirNone
	}
	reverse := current.Reverse()

	best := DirNone
	bestDist := 0
	for _, d := range Directions {
		if noReverse && d == reverse && reverse != DirNone {
			continue
		}
		if !g.Passable(cell, d) {
			continue
		}
		dist := cellDistance(cell.Step(d), target)
		if best == DirNone || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	if best == DirNone && noReverse && g.Passable(cell, reverse) {
		return reverse
	}
	return best
}

// steerHome walks eyes one tile closer to SpawnCell along the maze, so the
// route always shortens and cannot cycle. Straight-line distance breaks
// ties. Cells the walk can't reach from fall back to the straight-line pick.
func (g *Ghost) steerHome(cell Cell, current Direction) Direction {
	if cell == g.SpawnCell {
		return DirNone
	}
	field := g.homeField()
	if _, ok := field[cell]; !ok {
		return g.steerToward(cell, current, g.SpawnCell, true)
	}

	best := DirNone
	bestSteps, bestDist := 0, 0
	for _, d := range Directions {
		if !eyesPassable(g.topo, cell, d) {
			continue
		}
		next := cell.Step(d)
		steps, ok := field[next]
		if !ok {
			continue
		}
		dist := cellDistance(next, g.SpawnCell)
		if best == DirNone || steps < bestSteps || (steps == bestSteps && dist < bestDist) {
			best, bestSteps, bestDist = d, steps, dist
		}
	}
	return best
}

// homeField maps every cell eyes can reach SpawnCell from to its step
// count. The maze is static, so it is built once per ghost.
func (g *Ghost) homeField() map[Cell]int {
	if g.homeDist != nil {
		return g.homeDist
	}
	field := map[Cell]int{g.SpawnCell: 0}
	queue := []Cell{g.SpawnCell}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			from := c.Step(d)
			if _, seen := field[from]; seen || !eyesPassable(g.topo, from, d.Reverse()) {
				continue
			}
			field[from] = field[c] + 1
			queue = append(queue, from)
		}
	}
	g.homeDist = field
	return field
}

// eyesPassable is Passable for a ghost in GhostEyes.
func eyesPassable(t Topology, cell Cell, d Direction) bool {
	if d == DirNone {
		return false
	}
	next := cell.Step(d)
	if t.IsWall(next) {
		return false
	}
	if t.IsRestricted(cell) {
		door, hasDoor := t.Door()
		return (hasDoor && next == door) || t.IsRestricted(next)
	}
	return true
}

// cellDistance is the squared Euclidean tile distance.
func cellDistance(a, b Cell) int {
	dx := a.Col - b.Col
	dy := a.Row - b.Row
	return dx*dx + dy*dy
}
