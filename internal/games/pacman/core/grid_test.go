package core_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

func TestCellOf(t *testing.T) {
	testCases := []struct {
		pos  core.Vec
		want core.Cell
	}{
		{core.Vec{X: 0, Y: 0}, core.Cell{Col: 0, Row: 0}},
		{core.Vec{X: 31.999, Y: 31.999}, core.Cell{Col: 0, Row: 0}},
		{core.Vec{X: 32, Y: 0}, core.Cell{Col: 1, Row: 0}},
		{core.Vec{X: 48, Y: 80}, core.Cell{Col: 1, Row: 2}},
		{core.Vec{X: -0.5, Y: 10}, core.Cell{Col: -1, Row: 0}},
	}

	for _, tc := range testCases {
		if got := core.CellOf(tc.pos, 32); got != tc.want {
			t.Errorf("CellOf(%v) = %v, want %v", tc.pos, got, tc.want)
		}
	}
}

func TestCenterOf(t *testing.T) {
	got := core.CenterOf(core.Cell{Col: 2, Row: 3}, 32)
	if got.X != 80 || got.Y != 112 {
		t.Errorf("CenterOf(2,3) = %v, want (80,112)", got)
	}
}

func TestIsCenteredBoundary(t *testing.T) {
	const tol = 1.0
	const eps = 1e-6
	center := core.CenterOf(core.Cell{Col: 4, Row: 5}, 32)

	testCases := []struct {
		name string
		pos  core.Vec
		want bool
	}{
		{"exact center", center, true},
		{"at tolerance x", center.Add(core.Vec{X: tol}), true},
		{"at tolerance y", center.Add(core.Vec{Y: -tol}), true},
		{"past tolerance x", center.Add(core.Vec{X: tol + eps}), false},
		{"past tolerance -x", center.Add(core.Vec{X: -tol - eps}), false},
		{"past tolerance y", center.Add(core.Vec{Y: tol + eps}), false},
		{"past tolerance -y", center.Add(core.Vec{Y: -tol - eps}), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.IsCentered(tc.pos, 32, tol); got != tc.want {
				t.Errorf("IsCentered(%v) = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestDirectionReverse(t *testing.T) {
	testCases := []struct {
		dir  core.Direction
		want core.Direction
	}{
		{core.DirUp, core.DirDown},
		{core.DirDown, core.DirUp},
		{core.DirLeft, core.DirRight},
		{core.DirRight, core.DirLeft},
		{core.DirNone, core.DirNone},
	}

	for _, tc := range testCases {
		if got := tc.dir.Reverse(); got != tc.want {
			t.Errorf("%v.Reverse() = %v, want %v", tc.dir, got, tc.want)
		}
		v, r := tc.dir.Vec(), tc.want.Vec()
		if v.X != -r.X || v.Y != -r.Y {
			t.Errorf("%v vector %v is not the negation of %v", tc.dir, v, r)
		}
	}
}

func TestCellStepUsesScreenAxes(t *testing.T) {
	c := core.Cell{Col: 3, Row: 3}
	if got := c.Step(core.DirUp); got != (core.Cell{Col: 3, Row: 2}) {
		t.Errorf("Step(up) = %v", got)
	}
	if got := c.Step(core.DirRight); got != (core.Cell{Col: 4, Row: 3}) {
		t.Errorf("Step(right) = %v", got)
	}
	if got := c.Step(core.DirNone); got != c {
		t.Errorf("Step(none) = %v", got)
	}
}

func TestCenterRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := core.Cell{
			Col: rapid.IntRange(-50, 50).Draw(t, "col"),
			Row: rapid.IntRange(-50, 50).Draw(t, "row"),
		}
		center := core.CenterOf(c, core.DefaultTileSize)
		if got := core.CellOf(center, core.DefaultTileSize); got != c {
			t.Fatalf("CellOf(CenterOf(%v)) = %v", c, got)
		}
		if !core.IsCentered(center, core.DefaultTileSize, 0) {
			t.Fatalf("center %v not centered with zero tolerance", center)
		}
	})
}
