package core

import "strconv"

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes through Code.
type Color uint8

// Predefined colors. The tile shades run from pale to hot as values grow.
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
	ColorBeige
	ColorSand
	ColorCoral
	ColorGold
	ColorPurple
)

var ansiCodes = map[Color]int{
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
	ColorBeige:         230,
	ColorSand:          223,
	ColorCoral:         209,
	ColorGold:          220,
	ColorPurple:        135,
}

// Code returns the ANSI 256-color code as a string, or "" for ColorDefault.
func (c Color) Code() string {
	code, ok := ansiCodes[c]
	if !ok {
		return ""
	}
	return strconv.Itoa(code)
}
