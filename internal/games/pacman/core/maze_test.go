package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

func TestParseLayout(t *testing.T) {
	m := mustMaze(t, houseLayout...)

	if m.Width() != 9 || m.Height() != 7 {
		t.Fatalf("expected 9x7 maze, got %dx%d", m.Width(), m.Height())
	}
	if m.PelletsLeft() != 17 {
		t.Errorf("expected 17 pellets, got %d", m.PelletsLeft())
	}
	if m.PowersLeft() != 2 {
		t.Errorf("expected 2 power pellets, got %d", m.PowersLeft())
	}

	spawn, ok := m.PlayerSpawn()
	if !ok || spawn != (core.Cell{Col: 4, Row: 5}) {
		t.Errorf("player spawn = %v (%v), want (4,5)", spawn, ok)
	}
	ghosts := m.GhostSpawns()
	if len(ghosts) != 1 || ghosts[0] != (core.Cell{Col: 4, Row: 3}) {
		t.Errorf("ghost spawns = %v, want [(4,3)]", ghosts)
	}
	door, ok := m.Door()
	if !ok || door != (core.Cell{Col: 4, Row: 2}) {
		t.Errorf("door = %v (%v), want (4,2)", door, ok)
	}
	if m.HouseCells() != 3 {
		t.Errorf("expected 3 house tiles, got %d", m.HouseCells())
	}

	testCases := []struct {
		cell       core.Cell
		wall       bool
		restricted bool
	}{
		{core.Cell{Col: 0, Row: 0}, true, false},
		{core.Cell{Col: 1, Row: 1}, false, false},
		{core.Cell{Col: 4, Row: 2}, false, false},
		{core.Cell{Col: 3, Row: 3}, false, true},
		{core.Cell{Col: 4, Row: 3}, false, true},
		{core.Cell{Col: -1, Row: 1}, true, false},
		{core.Cell{Col: 9, Row: 1}, true, false},
		{core.Cell{Col: 1, Row: 7}, true, false},
	}
	for _, tc := range testCases {
		if got := m.IsWall(tc.cell); got != tc.wall {
			t.Errorf("IsWall(%v) = %v, want %v", tc.cell, got, tc.wall)
		}
		if got := m.IsRestricted(tc.cell); got != tc.restricted {
			t.Errorf("IsRestricted(%v) = %v, want %v", tc.cell, got, tc.restricted)
		}
	}
}

func TestParseLayoutShortRowsAreWalls(t *testing.T) {
	m := mustMaze(t,
		"#####",
		"#P.",
		"#####",
	)
	if !m.IsWall(core.Cell{Col: 3, Row: 1}) || !m.IsWall(core.Cell{Col: 4, Row: 1}) {
		t.Error("cells past a short row should be walls")
	}
	if m.IsWall(core.Cell{Col: 2, Row: 1}) {
		t.Error("pellet tile should be open")
	}
}

func TestParseLayoutErrors(t *testing.T) {
	testCases := []struct {
		name string
		rows []string
		code string
	}{
		{"no rows", nil, "EMPTY_LAYOUT"},
		{"blank rows", []string{"", ""}, "EMPTY_LAYOUT"},
		{"two players", []string{"#PP#"}, "MULTIPLE_PLAYER_SPAWNS"},
		{"two doors", []string{"#--#"}, "MULTIPLE_DOORS"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.ParseLayout(tc.rows)
			var verr core.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tc.code {
				t.Errorf("code = %s, want %s", verr.Code, tc.code)
			}
		})
	}
}

func TestValidateMaze(t *testing.T) {
	testCases := []struct {
		name string
		rows []string
		code string
	}{
		{"valid house maze", houseLayout, ""},
		{"valid open ghost", []string{"#####", "#P.g#", "#####"}, ""},
		{"no player", []string{"#####", "#..g#", "#####"}, "NO_PLAYER_SPAWN"},
		{"no ghost", []string{"#####", "#P..#", "#####"}, "NO_GHOST_SPAWN"},
		{"house without door", []string{"######", "#P.#G#", "######"}, "NO_DOOR"},
		{"door without house", []string{"######", "#P.-g#", "######"}, "DOOR_WITHOUT_HOUSE"},
		{"detached door", []string{
			"#######",
			"#P.-.g#",
			"#####H#",
			"#######",
		}, "DOOR_DETACHED"},
		{"walled-off pellet", []string{
			"#######",
			"#P.g#.#",
			"#######",
		}, "UNREACHABLE_PELLET"},
		{"walled-off power", []string{
			"#######",
			"#P.g#o#",
			"#######",
		}, "UNREACHABLE_POWER"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := core.ValidateMaze(mustMaze(t, tc.rows...))
			if tc.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr core.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError %s, got %v", tc.code, err)
			}
			if verr.Code != tc.code {
				t.Errorf("code = %s, want %s", verr.Code, tc.code)
			}
		})
	}
}

func TestEatAndClone(t *testing.T) {
	m := mustMaze(t, houseLayout...)
	fresh := m.Clone()

	pellet := core.Cell{Col: 2, Row: 1}
	power := core.Cell{Col: 1, Row: 1}

	if !m.EatPellet(pellet) {
		t.Fatal("expected pellet at (2,1)")
	}
	if m.EatPellet(pellet) {
		t.Error("pellet eaten twice")
	}
	if m.EatPellet(power) {
		t.Error("power pellet must not be eaten as a pellet")
	}
	if !m.EatPower(power) {
		t.Fatal("expected power pellet at (1,1)")
	}

	if m.PelletsLeft() != 16 || m.PowersLeft() != 1 {
		t.Errorf("after eating: %d pellets, %d powers", m.PelletsLeft(), m.PowersLeft())
	}
	if fresh.PelletsLeft() != 17 || fresh.PowersLeft() != 2 {
		t.Errorf("clone was mutated: %d pellets, %d powers", fresh.PelletsLeft(), fresh.PowersLeft())
	}
	if !fresh.HasPellet(pellet) || !fresh.HasPower(power) {
		t.Error("clone lost its pellets")
	}
}

func TestMazeCleared(t *testing.T) {
	m := mustMaze(t, "#####", "#P.o#", "#####")
	if m.Cleared() {
		t.Fatal("fresh maze reported cleared")
	}
	m.EatPellet(core.Cell{Col: 2, Row: 1})
	if m.Cleared() {
		t.Fatal("maze cleared with a power pellet left")
	}
	m.EatPower(core.Cell{Col: 3, Row: 1})
	if !m.Cleared() {
		t.Fatal("maze not cleared with both sets empty")
	}
}

func TestComputeMazeStats(t *testing.T) {
	stats := core.ComputeMazeStats(mustMaze(t, houseLayout...), 10, 50)
	if stats.Pellets != 17 || stats.Powers != 2 || stats.Ghosts != 1 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.MaxPoints != 17*10+2*50 {
		t.Errorf("MaxPoints = %d, want %d", stats.MaxPoints, 17*10+2*50)
	}
	if !stats.HasDoor || stats.HouseTiles != 3 {
		t.Errorf("house info wrong: %+v", stats)
	}
}
