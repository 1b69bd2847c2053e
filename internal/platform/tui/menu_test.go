package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

type menuStub struct{ id, title string }

func (g menuStub) ID() string                           { return g.id }
func (g menuStub) Title() string                        { return g.title }
func (g menuStub) Reset(core.RuntimeConfig)             {}
func (g menuStub) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g menuStub) Render(*core.Screen)                  {}
func (g menuStub) State() core.GameState                { return core.GameState{} }

func init() {
	registry.Register("stub_a", func() registry.Game { return menuStub{"stub_a", "Stub A"} })
	registry.Register("stub_b", func() registry.Game { return menuStub{"stub_b", "Stub B"} })
}

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestMenuDefaults(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), []string{"One", "Two"}, MenuSelection{})
	sel := m.Selection()

	if sel.GameID != "stub_a" {
		t.Errorf("GameID = %q, want stub_a", sel.GameID)
	}
	if sel.Difficulty != config.DifficultyNormal {
		t.Errorf("Difficulty = %q, want normal", sel.Difficulty)
	}
	if sel.StartLevel != 1 {
		t.Errorf("StartLevel = %d, want 1", sel.StartLevel)
	}
}

func TestMenuInitialSelection(t *testing.T) {
	initial := MenuSelection{GameID: "stub_b", Difficulty: config.DifficultyChaos, StartLevel: 2}
	m := NewMenuModel(core.DefaultConfig(), []string{"One", "Two"}, initial)

	if got := m.Selection(); got != initial {
		t.Errorf("Selection = %+v, want %+v", got, initial)
	}

	// Out of range level falls back to the first.
	m = NewMenuModel(core.DefaultConfig(), []string{"One"}, MenuSelection{StartLevel: 9})
	if got := m.Selection().StartLevel; got != 1 {
		t.Errorf("StartLevel = %d, want 1", got)
	}
}

func TestMenuCycleValues(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), []string{"One", "Two", "Three"}, MenuSelection{})

	// Cursor starts on "Start game"; move up to the level row.
	m, _ = menuKey(t, m, keyUp)
	m, _ = menuKey(t, m, keyLeft)
	if got := m.Selection().StartLevel; got != 3 {
		t.Errorf("level after left wrap = %d, want 3", got)
	}

	m, _ = menuKey(t, m, keyUp)
	m, _ = menuKey(t, m, keyRight)
	m, _ = menuKey(t, m, keyRight)
	if got := m.Selection().Difficulty; got != config.DifficultyChaos {
		t.Errorf("difficulty = %q, want chaos", got)
	}

	m, _ = menuKey(t, m, keyUp)
	m, _ = menuKey(t, m, keyRight)
	if got := m.Selection().GameID; got != "stub_b" {
		t.Errorf("game = %q, want stub_b", got)
	}
	m, _ = menuKey(t, m, keyRight)
	if got := m.Selection().GameID; got != "stub_a" {
		t.Errorf("game after wrap = %q, want stub_a", got)
	}

	// Left/right on an action row is a no-op.
	before := m.Selection()
	m.cursor = rowStart
	m, _ = menuKey(t, m, keyRight)
	if m.Selection() != before {
		t.Error("cycling on an action row changed the selection")
	}
}

func TestMenuCursorWraps(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), nil, MenuSelection{})
	m.cursor = rowMode
	m, _ = menuKey(t, m, keyUp)
	if m.cursor != rowQuit {
		t.Errorf("cursor = %d, want %d", m.cursor, rowQuit)
	}
	m, _ = menuKey(t, m, keyDown)
	if m.cursor != rowMode {
		t.Errorf("cursor = %d, want %d", m.cursor, rowMode)
	}
}

func TestMenuActions(t *testing.T) {
	tests := []struct {
		name       string
		cursor     int
		msg        tea.KeyMsg
		started    bool
		scoreboard bool
		quitting   bool
	}{
		{"enter on start", rowStart, keyEnter, true, false, false},
		{"enter on option row", rowDifficulty, keyEnter, true, false, false},
		{"enter on scores", rowScores, keyEnter, false, true, false},
		{"enter on quit", rowQuit, keyEnter, false, false, true},
		{"tab", rowStart, tea.KeyMsg{Type: tea.KeyTab}, false, true, false},
		{"q", rowStart, runeKey("q"), false, false, true},
		{"esc", rowStart, tea.KeyMsg{Type: tea.KeyEsc}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(core.DefaultConfig(), []string{"One"}, MenuSelection{})
			m.cursor = tt.cursor
			m, cmd := menuKey(t, m, tt.msg)

			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if m.Started() != tt.started || m.WantsScoreboard() != tt.scoreboard || m.IsQuitting() != tt.quitting {
				t.Errorf("started=%v scoreboard=%v quitting=%v", m.Started(), m.WantsScoreboard(), m.IsQuitting())
			}
		})
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), nil, MenuSelection{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(MenuModel)

	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("config = %dx%d, want 120x50", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), []string{"Classic Maze"}, MenuSelection{Difficulty: config.DifficultyHard})
	view := m.View()

	for _, want := range []string{"P A C - M A N", "Stub A", "HARD", "1. Classic Maze", "Start game", "High scores"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 4, "toolong"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
