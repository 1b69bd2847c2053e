package core

// Color is a foreground color for a screen cell, mapped to an ANSI
// 256-color code by the platform renderer.
type Color uint8

// Palette used by the maze renderer and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightRed:
		return "bright_red"
	case ColorBrightGreen:
		return "bright_green"
	case ColorBrightYellow:
		return "bright_yellow"
	case ColorBrightBlue:
		return "bright_blue"
	case ColorBrightMagenta:
		return "bright_magenta"
	case ColorBrightCyan:
		return "bright_cyan"
	case ColorBrightWhite:
		return "bright_white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorPink:
		return "pink"
	default:
		return "default"
	}
}
