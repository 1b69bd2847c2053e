package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Menu rows
const (
	rowMode = iota
	rowDifficulty
	rowLevel
	rowStart
	rowScores
	rowQuit
	rowCount
)

// MenuSelection is what the setup menu configures.
type MenuSelection struct {
	GameID     string
	Difficulty config.DifficultyPreset
	StartLevel int // 1-based
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the setup screen.
type MenuModel struct {
	games      []registry.GameInfo
	presets    []config.DifficultyPreset
	levelNames []string

	cursor     int
	gameIdx    int
	presetIdx  int
	levelIdx   int
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	started    bool
	scoreboard bool
}

// NewMenuModel creates a setup menu. levelNames lists the mazes in rotation
// order; initial preselects values and may be partly empty.
func NewMenuModel(cfg core.RuntimeConfig, levelNames []string, initial MenuSelection) MenuModel {
	m := MenuModel{
		games:      registry.List(),
		presets:    config.AllPresets(),
		levelNames: levelNames,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		cursor:     rowStart,
	}
	if len(m.levelNames) == 0 {
		m.levelNames = []string{"Level 1"}
	}

	for i, g := range m.games {
		if g.ID == initial.GameID {
			m.gameIdx = i
		}
	}
	m.presetIdx = 1 // normal
	for i, p := range m.presets {
		if p == initial.Difficulty {
			m.presetIdx = i
		}
	}
	if initial.StartLevel > 0 && initial.StartLevel <= len(m.levelNames) {
		m.levelIdx = initial.StartLevel - 1
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + rowCount - 1) % rowCount

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % rowCount

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case rowScores:
			m.scoreboard = true
		case rowQuit:
			m.quitting = true
		default:
			m.started = true
		}
		return m, tea.Quit
	}

	return m, nil
}

// cycle steps the value on the cursor row, wrapping at both ends.
func (m *MenuModel) cycle(delta int) {
	wrap := func(i, n int) int {
		if n == 0 {
			return 0
		}
		return ((i+delta)%n + n) % n
	}
	switch m.cursor {
	case rowMode:
		m.gameIdx = wrap(m.gameIdx, len(m.games))
	case rowDifficulty:
		m.presetIdx = wrap(m.presetIdx, len(m.presets))
	case rowLevel:
		m.levelIdx = wrap(m.levelIdx, len(m.levelNames))
	}
}

// Selection returns the values currently shown.
func (m MenuModel) Selection() MenuSelection {
	sel := MenuSelection{
		Difficulty: m.presets[m.presetIdx],
		StartLevel: m.levelIdx + 1,
	}
	if len(m.games) > 0 {
		sel.GameID = m.games[m.gameIdx].ID
	}
	return sel
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("P A C - M A N"), m.width))
	b.WriteString("\n\n")

	gameTitle := "-"
	if len(m.games) > 0 {
		gameTitle = m.games[m.gameIdx].Title
	}
	rows := []string{
		fmt.Sprintf("Mode:        < %s >", gameTitle),
		fmt.Sprintf("Difficulty:  < %s >", strings.ToUpper(string(m.presets[m.presetIdx]))),
		fmt.Sprintf("Start level: < %d. %s >", m.levelIdx+1, m.levelNames[m.levelIdx]),
		"Start game",
		"High scores",
		"Quit",
	}

	for i, row := range rows {
		if i == rowStart {
			b.WriteString("\n")
		}
		line := "  " + row
		if i == m.cursor {
			line = menuActiveStyle.Render("> " + row)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.games) > 0 {
		if info := m.games[m.gameIdx]; info.Description != "" {
			b.WriteString("\n")
			b.WriteString(centerText(menuHintStyle.Render(info.Description), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Move  |  Left/Right: Change  |  Enter: Start  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Started returns true if user chose to play.
func (m MenuModel) Started() bool {
	return m.started
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Width is measured in
// terminal cells so styled text centers correctly.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       MenuSelection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the setup menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, levelNames []string, initial MenuSelection) (MenuResult, error) {
	model := NewMenuModel(cfg, levelNames, initial)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Selection: m.Selection(),
		Config:    m.Config(),
	}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Started():
	default:
		result.Quit = true
	}
	return result, nil
}
