package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// palette holds one style per core.Color, indexed by the colour value.
var palette = [...]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          fg("1"),
	core.ColorGreen:        fg("10").Bold(true),
	core.ColorYellow:       fg("3"),
	core.ColorBlue:         fg("4"),
	core.ColorCyan:         fg("6"),
	core.ColorWhite:        fg("15").Background(lipgloss.Color("236")),
	core.ColorGray:         fg("245"),
	core.ColorBrightYellow: fg("11").Bold(true),
	core.ColorBrightCyan:   fg("14").Bold(true),
	core.ColorOrange:       fg("208"),
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

func styleOf(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns the cell buffer into styled terminal lines.
// Each run of equally coloured cells is styled once.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	var run []rune
	for y := range lines {
		var line strings.Builder
		color := core.ColorDefault
		flush := func() {
			if len(run) > 0 {
				line.WriteString(styleOf(color).Render(string(run)))
				run = run[:0]
			}
		}
		for x := range s.Width() {
			c := s.GetCell(x, y)
			if c.Color != color {
				flush()
				color = c.Color
			}
			run = append(run, c.Rune)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
