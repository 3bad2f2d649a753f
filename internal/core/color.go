package core

// Color represents a foreground color for a screen cell.
// The zero value keeps the terminal's default color.
type Color uint8

// Predefined colors, in ANSI palette order.
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
	ColorGray
)

// ANSI returns the 256-color palette index for c.
// ok is false for ColorDefault.
func (c Color) ANSI() (code int, ok bool) {
	switch {
	case c == ColorDefault:
		return 0, false
	case c <= ColorWhite:
		return int(c), true
	case c <= ColorBrightWhite:
		return int(c) + 1, true // bright colors skip the palette's 8 (bright black)
	case c == ColorGray:
		return 245, true
	default:
		return 0, false
	}
}
