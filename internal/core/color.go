package core

// Color is a foreground color for a screen cell. Shells map it to whatever
// their display supports.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorCyan
	ColorRed
	ColorWhite
	ColorGray
)
