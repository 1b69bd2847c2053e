package core

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateMaze performs comprehensive validation of a parsed maze.
// Checks:
//   - Player spawn present and on open floor
//   - At least one ghost spawn
//   - House door present and attached whenever a house exists
//   - Every pellet reachable by the player
func ValidateMaze(m *Maze) error {
	if err := validateSpawns(m); err != nil {
		return err
	}
	if err := validateHouse(m); err != nil {
		return err
	}
	if err := validateReachable(m); err != nil {
		return err
	}
	return nil
}

func validateSpawns(m *Maze) error {
	spawn, ok := m.PlayerSpawn()
	if !ok {
		return ValidationError{Code: "NO_PLAYER_SPAWN", Message: "layout has no 'P' tile"}
	}
	if m.IsWall(spawn) || m.IsRestricted(spawn) {
		return ValidationError{
			Code:    "BAD_PLAYER_SPAWN",
			Message: fmt.Sprintf("player spawn (%d, %d) is not open floor", spawn.Col, spawn.Row),
		}
	}
	if len(m.ghostSpawns) == 0 {
		return ValidationError{Code: "NO_GHOST_SPAWN", Message: "layout has no 'G' or 'g' tile"}
	}
	return nil
}

func validateHouse(m *Maze) error {
	door, hasDoor := m.Door()
	if m.HouseCells() == 0 {
		if hasDoor {
			return ValidationError{Code: "DOOR_WITHOUT_HOUSE", Message: "house door placed but no house tiles"}
		}
		return nil
	}
	if !hasDoor {
		return ValidationError{Code: "NO_DOOR", Message: "ghost house has no '-' door tile"}
	}

	attached := false
	for _, d := range Directions {
		if m.IsRestricted(door.Step(d)) {
			attached = true
			break
		}
	}
	if !attached {
		return ValidationError{
			Code:    "DOOR_DETACHED",
			Message: fmt.Sprintf("door (%d, %d) does not touch the house", door.Col, door.Row),
		}
	}
	return nil
}

// validateReachable flood-fills from the player spawn over tiles the player
// may enter and reports the first pellet left outside the fill.
func validateReachable(m *Maze) error {
	start, _ := m.PlayerSpawn()
	seen := map[Cell]bool{start: true}
	queue := []Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			n := c.Step(d)
			if seen[n] || !playerMayEnter(m, n) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}

	for _, c := range m.Pellets() {
		if !seen[c] {
			return ValidationError{
				Code:    "UNREACHABLE_PELLET",
				Message: fmt.Sprintf("pellet at (%d, %d) cannot be reached", c.Col, c.Row),
			}
		}
	}
	for _, c := range m.Powers() {
		if !seen[c] {
			return ValidationError{
				Code:    "UNREACHABLE_POWER",
				Message: fmt.Sprintf("power pellet at (%d, %d) cannot be reached", c.Col, c.Row),
			}
		}
	}
	return nil
}

// MazeStats summarizes a maze for listings.
type MazeStats struct {
	Width       int
	Height      int
	Pellets     int
	Powers      int
	Ghosts      int
	HouseTiles  int
	HasDoor     bool
	MaxPoints   int
	WallDensity float64
}

// ComputeMazeStats analyzes a maze and returns statistics.
func ComputeMazeStats(m *Maze, pelletPoints, powerPoints int) MazeStats {
	walls := 0
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.IsWall(Cell{Col: x, Row: y}) {
				walls++
			}
		}
	}
	_, hasDoor := m.Door()

	return MazeStats{
		Width:       m.width,
		Height:      m.height,
		Pellets:     m.PelletsLeft(),
		Powers:      m.PowersLeft(),
		Ghosts:      len(m.ghostSpawns),
		HouseTiles:  m.HouseCells(),
		HasDoor:     hasDoor,
		MaxPoints:   m.PelletsLeft()*pelletPoints + m.PowersLeft()*powerPoints,
		WallDensity: float64(walls) / float64(m.width*m.height),
	}
}
