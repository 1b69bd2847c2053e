// Package core contains the pure Pac-Man simulation: grid geometry, the
// grid-locked movement engine, the ghost state machine, the power-up effect
// system and the per-tick world update. It has no dependencies outside the
// standard library so it can be tested without a terminal.
package core

import "math"

// DefaultTileSize is the edge length of one maze tile in world units.
const DefaultTileSize = 32.0

// DefaultCenterTolerance is the per-axis distance from a tile center that
// still counts as "on the center".
const DefaultCenterTolerance = 1.0

// Vec is a continuous world position or offset.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Cell addresses one maze tile by column and row.
type Cell struct {
	Col, Row int
}

// Step returns the neighboring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{Col: c.Col + dx, Row: c.Row + dy}
}

// Direction is one of the five allowed movement vectors.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four moving directions in arbitration order.
// Ghost choices iterate in this order so a seeded RNG gives a stable trace.
var Directions = [4]Direction{DirUp, DirLeft, DirDown, DirRight}

// Delta returns the unit vector of d in tile steps.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Vec returns the unit vector of d in world space.
func (d Direction) Vec() Vec {
	dx, dy := d.Delta()
	return Vec{X: float64(dx), Y: float64(dy)}
}

// Reverse returns the opposite direction. DirNone reverses to itself.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Horizontal reports whether d moves along the X axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// CellOf maps a world position to the tile containing it.
func CellOf(pos Vec, tileSize float64) Cell {
	return Cell{
		Col: int(math.Floor(pos.X / tileSize)),
		Row: int(math.Floor(pos.Y / tileSize)),
	}
}

// CenterOf returns the geometric center of a tile.
func CenterOf(c Cell, tileSize float64) Vec {
	return Vec{
		X: float64(c.Col)*tileSize + tileSize/2,
		Y: float64(c.Row)*tileSize + tileSize/2,
	}
}

// IsCentered reports whether pos lies within tol of its tile center on both
// axes.
func IsCentered(pos Vec, tileSize, tol float64) bool {
	center := CenterOf(CellOf(pos, tileSize), tileSize)
	return math.Abs(pos.X-center.X) <= tol && math.Abs(pos.Y-center.Y) <= tol
}
