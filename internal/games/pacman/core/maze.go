package core

import (
	"fmt"
	"sort"
)

// Layout glyphs understood by ParseLayout.
const (
	GlyphWall       = '#'
	GlyphPellet     = '.'
	GlyphPower      = 'o'
	GlyphPlayer     = 'P'
	GlyphDoor       = '-'
	GlyphHouse      = 'H'
	GlyphHouseGhost = 'G' // ghost spawn on the house floor
	GlyphOpenGhost  = 'g' // ghost spawn in the open maze
	GlyphEmpty      = ' '
)

// Topology answers the passability questions the movement engine and the
// ghost policies need. Out-of-range cells must report as walls.
type Topology interface {
	IsWall(c Cell) bool
	IsRestricted(c Cell) bool
	Door() (Cell, bool)
}

// Maze is a parsed level: static geometry plus the pellet and power-pellet
// sets keyed by cell.
type Maze struct {
	width  int
	height int
	walls  map[Cell]bool
	house  map[Cell]bool

	door    Cell
	hasDoor bool

	playerSpawn Cell
	hasPlayer   bool
	ghostSpawns []Cell

	pellets map[Cell]struct{}
	powers  map[Cell]struct{}
}

// ParseLayout builds a maze from rows of layout glyphs. Short rows are
// treated as walls past their end. Unknown glyphs are empty corridor.
func ParseLayout(rows []string) (*Maze, error) {
	if len(rows) == 0 {
		return nil, ValidationError{Code: "EMPTY_LAYOUT", Message: "layout has no rows"}
	}

	m := &Maze{
		height:  len(rows),
		walls:   make(map[Cell]bool),
		house:   make(map[Cell]bool),
		pellets: make(map[Cell]struct{}),
		powers:  make(map[Cell]struct{}),
	}

	for _, row := range rows {
		if n := len([]rune(row)); n > m.width {
			m.width = n
		}
	}
	if m.width == 0 {
		return nil, ValidationError{Code: "EMPTY_LAYOUT", Message: "layout rows are all empty"}
	}

	for y, row := range rows {
		runes := []rune(row)
		for x := 0; x < m.width; x++ {
			c := Cell{Col: x, Row: y}
			if x >= len(runes) {
				m.walls[c] = true
				continue
			}
			switch runes[x] {
			case GlyphWall:
				m.walls[c] = true
			case GlyphPellet:
				m.pellets[c] = struct{}{}
			case GlyphPower:
				m.powers[c] = struct{}{}
			case GlyphPlayer:
				if m.hasPlayer {
					return nil, ValidationError{
						Code:    "MULTIPLE_PLAYER_SPAWNS",
						Message: fmt.Sprintf("second player spawn at (%d, %d)", x, y),
					}
				}
				m.playerSpawn = c
				m.hasPlayer = true
			case GlyphDoor:
				if m.hasDoor {
					return nil, ValidationError{
						Code:    "MULTIPLE_DOORS",
						Message: fmt.Sprintf("second house door at (%d, %d)", x, y),
					}
				}
				m.door = c
				m.hasDoor = true
			case GlyphHouse:
				m.house[c] = true
			case GlyphHouseGhost:
				m.house[c] = true
				m.ghostSpawns = append(m.ghostSpawns, c)
			case GlyphOpenGhost:
				m.ghostSpawns = append(m.ghostSpawns, c)
			}
		}
	}

	return m, nil
}

// Width returns the maze width in tiles.
func (m *Maze) Width() int { return m.width }

// Height returns the maze height in tiles.
func (m *Maze) Height() int { return m.height }

// InBounds reports whether c lies inside the maze rectangle.
func (m *Maze) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < m.width && c.Row >= 0 && c.Row < m.height
}

// IsWall reports whether c blocks movement. Out-of-range cells are walls.
func (m *Maze) IsWall(c Cell) bool {
	if !m.InBounds(c) {
		return true
	}
	return m.walls[c]
}

// IsRestricted reports whether c is ghost-house floor.
func (m *Maze) IsRestricted(c Cell) bool {
	return m.house[c]
}

// Door returns the ghost-house door, if the maze has one.
func (m *Maze) Door() (Cell, bool) {
	return m.door, m.hasDoor
}

// PlayerSpawn returns the player start cell.
func (m *Maze) PlayerSpawn() (Cell, bool) {
	return m.playerSpawn, m.hasPlayer
}

// GhostSpawns returns the ghost start cells in layout order.
func (m *Maze) GhostSpawns() []Cell {
	out := make([]Cell, len(m.ghostSpawns))
	copy(out, m.ghostSpawns)
	return out
}

// HouseCells returns the number of ghost-house floor tiles.
func (m *Maze) HouseCells() int {
	return len(m.house)
}

// HasPellet reports whether c holds an uneaten pellet.
func (m *Maze) HasPellet(c Cell) bool {
	_, ok := m.pellets[c]
	return ok
}

// HasPower reports whether c holds an uneaten power pellet.
func (m *Maze) HasPower(c Cell) bool {
	_, ok := m.powers[c]
	return ok
}

// EatPellet removes the pellet at c and reports whether one was there.
func (m *Maze) EatPellet(c Cell) bool {
	if _, ok := m.pellets[c]; !ok {
		return false
	}
	delete(m.pellets, c)
	return true
}

// EatPower removes the power pellet at c and reports whether one was there.
func (m *Maze) EatPower(c Cell) bool {
	if _, ok := m.powers[c]; !ok {
		return false
	}
	delete(m.powers, c)
	return true
}

// PelletsLeft returns the number of uneaten pellets.
func (m *Maze) PelletsLeft() int { return len(m.pellets) }

// PowersLeft returns the number of uneaten power pellets.
func (m *Maze) PowersLeft() int { return len(m.powers) }

// Cleared reports whether both pellet sets are empty.
func (m *Maze) Cleared() bool {
	return len(m.pellets) == 0 && len(m.powers) == 0
}

// Pellets returns the remaining pellet cells in row-major order.
func (m *Maze) Pellets() []Cell {
	return sortedCells(m.pellets)
}

// Powers returns the remaining power pellet cells in row-major order.
func (m *Maze) Powers() []Cell {
	return sortedCells(m.powers)
}

// Clone returns a deep copy, used to restart a level with all pellets.
func (m *Maze) Clone() *Maze {
	c := &Maze{
		width:       m.width,
		height:      m.height,
		walls:       make(map[Cell]bool, len(m.walls)),
		house:       make(map[Cell]bool, len(m.house)),
		door:        m.door,
		hasDoor:     m.hasDoor,
		playerSpawn: m.playerSpawn,
		hasPlayer:   m.hasPlayer,
		ghostSpawns: m.GhostSpawns(),
		pellets:     make(map[Cell]struct{}, len(m.pellets)),
		powers:      make(map[Cell]struct{}, len(m.powers)),
	}
	for k, v := range m.walls {
		c.walls[k] = v
	}
	for k, v := range m.house {
		c.house[k] = v
	}
	for k := range m.pellets {
		c.pellets[k] = struct{}{}
	}
	for k := range m.powers {
		c.powers[k] = struct{}{}
	}
	return c
}

func sortedCells(set map[Cell]struct{}) []Cell {
	out := make([]Cell, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
