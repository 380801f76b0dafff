package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// cellStyle is the part of a cell that needs an escape sequence.
type cellStyle struct {
	fg, bg core.Color
	bold   bool
}

// styleCache keeps one lipgloss style per color pair.
type styleCache map[cellStyle]lipgloss.Style

func (c styleCache) get(k cellStyle) lipgloss.Style {
	if s, ok := c[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(k.fg.Hex())).
		Background(lipgloss.Color(k.bg.Hex())).
		Bold(k.bold)
	c[k] = s
	return s
}

var defaultStyles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same style are grouped into one run.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, defaultStyles)
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			key := cellStyle{fg: first.Fg, bg: first.Bg, bold: first.Bold}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg, bold: cell.Bold}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styles.get(key).Render(run.String()))
		}
	}
	return sb.String()
}
