package core

// Color represents a foreground color for a screen cell.
// The platform layer maps it to a terminal style.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorHighlight // selection and hint markers
	ColorAlert     // rejected swaps and failure messages
)
