package core

// Color represents a foreground color for a screen cell.
// Rendered by the platform layer using ANSI 256-color codes.
type Color uint8

// Predefined colors for sandbox elements.
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
