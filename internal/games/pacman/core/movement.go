package core

import "math"

const (
	// SnapBlend is the fraction of the remaining offset removed each time a
	// centered body is pulled toward its tile center.
	SnapBlend = 0.35

	// overshootEpsilon is the distance to a center below which the body is
	// treated as already on it.
	overshootEpsilon = 0.1

	// maxSegments bounds the per-call landing loop.
	maxSegments = 1 << 12
)

// Body is the moving part shared by the player and the ghosts.
type Body struct {
	Pos   Vec
	Dir   Direction
	Speed float64

	// Tolerance is the per-axis centered tolerance. Zero means
	// DefaultCenterTolerance.
	Tolerance float64
}

// Cell returns the tile containing the body.
func (b *Body) Cell(tileSize float64) Cell {
	return CellOf(b.Pos, tileSize)
}

func (b *Body) tolerance() float64 {
	if b.Tolerance > 0 {
		return b.Tolerance
	}
	return DefaultCenterTolerance
}

// Steering is the direction policy the movement engine consults.
type Steering interface {
	// Steer picks the direction to leave the centered cell in. It receives
	// the current direction and may return DirNone to stop.
	Steer(cell Cell, current Direction) Direction
	// Passable reports whether the body may move from cell into the
	// neighbor in direction d.
	Passable(cell Cell, d Direction) bool
}

// Advance moves b by Speed*dt along the grid.
//
// Motion is consumed one tile center at a time: a step that would cross a
// center lands on it exactly, asks the steering again, and only then spends
// the leftover. A body therefore never enters a tile that Passable rejected,
// however large dt is.
func Advance(b *Body, s Steering, tileSize, dt float64) {
	remaining := b.Speed * dt
	if remaining <= 0 || math.IsNaN(remaining) {
		return
	}
	if math.IsInf(remaining, 0) {
		remaining = math.MaxFloat64
	}

	tol := b.tolerance()
	for i := 0; i < maxSegments && remaining > 0; i++ {
		cell := CellOf(b.Pos, tileSize)
		center := CenterOf(cell, tileSize)

		if IsCentered(b.Pos, tileSize, tol) {
			b.Pos = b.Pos.Add(center.Sub(b.Pos).Scale(SnapBlend))
			b.Dir = s.Steer(cell, b.Dir)
			if b.Dir == DirNone || !s.Passable(cell, b.Dir) {
				return
			}
			// Travel runs on the tile's center line.
			if b.Dir.Horizontal() {
				b.Pos.Y = center.Y
			} else {
				b.Pos.X = center.X
			}
		} else if b.Dir == DirNone {
			return
		}

		off := axisOffset(b.Pos, center, b.Dir)
		limit := -off
		target := center
		if off >= 0 {
			if !s.Passable(cell, b.Dir) {
				// Heading out of the tile toward a cell it may not enter,
				// e.g. right after a reversal next to the house door.
				b.Pos = center
				return
			}
			limit = tileSize - off
			target = CenterOf(cell.Step(b.Dir), tileSize)
		}

		if limit <= overshootEpsilon {
			b.Pos = target
			continue
		}
		if remaining < limit {
			b.Pos = b.Pos.Add(b.Dir.Vec().Scale(remaining))
			return
		}

		b.Pos = target
		remaining -= limit
	}
}

// axisOffset returns how far pos lies past center along d. Negative values
// mean the center is still ahead.
func axisOffset(pos, center Vec, d Direction) float64 {
	delta := pos.Sub(center)
	v := d.Vec()
	return delta.X*v.X + delta.Y*v.Y
}
