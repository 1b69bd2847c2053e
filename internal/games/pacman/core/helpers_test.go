package core_test

import (
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

const tick = 1.0 / 60

// houseLayout is a ring corridor around a three-tile ghost house whose door
// opens onto the top row.
var houseLayout = []string{
	"#########",
	"#o.....o#",
	"#.##-##.#",
	"#.#HGH#.#",
	"#.#####.#",
	"#...P...#",
	"#########",
}

// fataler is the part of *testing.T and *rapid.T the helpers need.
type fataler interface {
	Fatalf(format string, args ...any)
}

func mustMaze(t fataler, rows ...string) *core.Maze {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	m, err := core.ParseLayout(rows)
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	return m
}

// scriptedRNG replays fixed values and records every n it was asked for.
type scriptedRNG struct {
	values []int
	calls  []int
}

func (r *scriptedRNG) Intn(n int) int {
	r.calls = append(r.calls, n)
	if n <= 0 || len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

type scoreCounter struct {
	total int
	calls []int
}

func (s *scoreCounter) AddScore(points int) {
	s.total += points
	s.calls = append(s.calls, points)
}
