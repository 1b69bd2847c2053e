package pacman

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"

	pm "github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

// Visual characters for rendering
const (
	WallChar    = '█'
	PelletChar  = '·'
	PowerChar   = '●'
	DoorChar    = '─'
	GhostChar   = 'ᗣ'
	EyesChar    = '"'
	LifeChar    = '♥'
	BorderHoriz = '─'
)

// PlayerGlyphs are indexed by the direction the player faces.
var PlayerGlyphs = map[pm.Direction]rune{
	pm.DirNone:  'ᗧ',
	pm.DirRight: 'ᗧ',
	pm.DirLeft:  'ᗤ',
	pm.DirUp:    'ᗢ',
	pm.DirDown:  'ᗣ',
}

// GhostColors are the normal-state colors by ghost name.
var GhostColors = map[string]core.Color{
	"blinky": core.ColorRed,
	"pinky":  core.ColorPink,
	"inky":   core.ColorCyan,
	"clyde":  core.ColorOrange,
}

const hudRows = 2

// layout places the maze on the screen.
type layout struct {
	x0, y0 int
	cellW  int
}

// computeLayout fits a maze of mw x mh tiles under the HUD. Two columns per
// tile are used when they fit; ok is false when even one does not.
func computeLayout(screenW, screenH, mw, mh int) (layout, bool) {
	avail := screenH - hudRows
	if mh > avail || mw > screenW {
		return layout{}, false
	}
	cellW := 1
	if mw*2 <= screenW {
		cellW = 2
	}
	return layout{
		x0:    (screenW - mw*cellW) / 2,
		y0:    hudRows + (avail-mh)/2,
		cellW: cellW,
	}, true
}

// cellAt maps a world position to a screen cell. Tile centers land on the
// first column of their tile.
func (l layout) cellAt(pos pm.Vec, tileSize float64) (int, int) {
	tx := pos.X/tileSize - 0.5
	ty := pos.Y/tileSize - 0.5
	x := l.x0 + int(math.Floor(tx*float64(l.cellW)+0.5))
	y := l.y0 + int(math.Floor(ty+0.5))
	return x, y
}

// minScreen returns the smallest screen that fits the current maze.
func (g *Game) minScreen() (int, int) {
	m := g.world.Maze
	return m.Width(), m.Height() + hudRows
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	m := g.world.Maze
	lay, ok := computeLayout(dst.Width(), dst.Height(), m.Width(), m.Height())
	g.tooSmall = !ok
	if !ok {
		w, h := g.minScreen()
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorBrightYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", w, h), core.ColorDefault)
		return
	}

	g.renderHUD(dst)
	g.renderMaze(dst, lay)
	g.renderGhosts(dst, lay)
	g.renderPlayer(dst, lay)
	g.renderOverlay(dst)
}

// renderHUD draws score, level and lives on row 0 and effects on row 1.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextWithColor(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)

	levelText := fmt.Sprintf("Level %d: %s", g.levelNum, g.level.Name)
	dst.DrawTextCentered(0, levelText, core.ColorBrightYellow)

	lives := "Lives: " + strings.Repeat(string(LifeChar), g.lives)
	dst.DrawTextWithColor(dst.Width()-len([]rune(lives))-1, 0, lives, core.ColorRed)

	if effects := g.buildEffectsString(); effects != "" {
		dst.DrawTextWithColor(1, 1, effects, core.ColorBrightCyan)
		if combo := g.world.Combo.Count(); combo > 0 {
			text := fmt.Sprintf("combo x%d", combo)
			dst.DrawTextWithColor(dst.Width()-len(text)-1, 1, text, core.ColorBrightMagenta)
		}
		return
	}
	for x := range dst.Width() {
		dst.SetWithColor(x, 1, BorderHoriz, core.ColorGray)
	}
}

// buildEffectsString lists active effects as glyph, name and seconds left.
func (g *Game) buildEffectsString() string {
	active := g.world.Player.Effects.Active()
	if len(active) == 0 {
		return ""
	}
	parts := make([]string, 0, len(active))
	for _, e := range active {
		parts = append(parts, fmt.Sprintf("%c%s %.1fs", e.Kind.Glyph(), e.Kind, e.Remaining))
	}
	return strings.Join(parts, "  ")
}

func (g *Game) renderMaze(dst *core.Screen, lay layout) {
	m := g.world.Maze
	door, hasDoor := m.Door()

	for row := range m.Height() {
		for col := range m.Width() {
			c := pm.Cell{Col: col, Row: row}
			x := lay.x0 + col*lay.cellW
			y := lay.y0 + row

			switch {
			case m.IsWall(c):
				for dx := range lay.cellW {
					dst.SetWithColor(x+dx, y, WallChar, core.ColorBlue)
				}
			case hasDoor && c == door:
				for dx := range lay.cellW {
					dst.SetWithColor(x+dx, y, DoorChar, core.ColorPink)
				}
			case m.HasPower(c):
				// Blink the power pellets.
				if (g.tickCount/15)%2 == 0 || g.state != StatePlaying {
					dst.SetWithColor(x, y, PowerChar, core.ColorBrightWhite)
				}
			case m.HasPellet(c):
				dst.SetWithColor(x, y, PelletChar, core.ColorYellow)
			}
		}
	}
}

// ghostLook returns the glyph and color for a ghost in its current state.
func (g *Game) ghostLook(gh *pm.Ghost) (rune, core.Color) {
	switch gh.State {
	case pm.GhostEyes:
		return EyesChar, core.ColorBrightWhite
	case pm.GhostFright:
		return GhostChar, core.ColorBrightBlue
	case pm.GhostBlink:
		if (g.tickCount/8)%2 == 0 {
			return GhostChar, core.ColorBrightWhite
		}
		return GhostChar, core.ColorBrightBlue
	}
	if gh.Frozen {
		return GhostChar, core.ColorGray
	}
	if c, ok := GhostColors[gh.Name]; ok {
		return GhostChar, c
	}
	return GhostChar, core.ColorMagenta
}

func (g *Game) renderGhosts(dst *core.Screen, lay layout) {
	ts := g.world.TileSize()
	for _, gh := range g.world.Ghosts {
		x, y := lay.cellAt(gh.Body.Pos, ts)
		r, c := g.ghostLook(gh)
		dst.SetWithColor(x, y, r, c)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, lay layout) {
	p := g.world.Player
	if g.state == StateDying && (g.tickCount/6)%2 == 1 {
		return
	}
	x, y := lay.cellAt(p.Body.Pos, g.world.TileSize())

	dir := p.Body.Dir
	if dir == pm.DirNone {
		dir = p.Desired
	}
	color := core.ColorBrightYellow
	if p.Invincible {
		color = core.ColorBrightGreen
	}
	dst.SetWithColor(x, y, PlayerGlyphs[dir], color)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateReady:
		g.drawCenteredBox(dst, "READY!", fmt.Sprintf("Level %d  |  %s", g.levelNum, g.level.Name))

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightYellow)

	titleX := box.X + (box.W-len([]rune(title)))/2
	dst.DrawTextWithColor(titleX, box.Y+1, title, core.ColorBrightYellow)

	subtitleX := box.X + (box.W-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, box.Y+3, subtitle)
}
