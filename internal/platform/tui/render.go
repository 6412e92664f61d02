package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// styleCache holds one lipgloss style per core.Color, built from its ANSI code.
var styleCache = map[core.Color]lipgloss.Style{}

func init() {
	for c := core.ColorDefault; c <= core.ColorPurple; c++ {
		style := lipgloss.NewStyle()
		if code := c.Code(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styleCache[c] = style
	}
}

// styleFor returns the style for a color, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := styleCache[c]; ok {
		return style
	}
	return styleCache[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
