package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

// Semantic roles on the board.
const (
	ColorLetter   = ColorDefault
	ColorFound    = ColorGreen
	ColorSelected = ColorBrightYellow
	ColorCursor   = ColorBrightCyan
	ColorFrame    = ColorGray
	ColorTitle    = ColorBrightWhite
	ColorWarning  = ColorRed
)
