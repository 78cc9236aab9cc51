package core

// Color represents a foreground color for a screen cell.
// Hosts map it to ANSI 256-color codes or RGB.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorGray
)
