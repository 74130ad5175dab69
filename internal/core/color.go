package core

// Color is a foreground color for a screen cell.
// The TUI maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the board renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)
