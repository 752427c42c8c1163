package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocketdino/internal/core"
)

// inkStyles maps panel ink colors to lipgloss styles.
var inkStyles = map[core.Color]lipgloss.Style{
	core.ColorWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
}

// RenderScreen converts a half-block Screen to a styled string for display.
// Each cell row covers two pixel rows, so it takes the ink of its top row.
func RenderScreen(s *core.Screen, panel core.Panel) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*3 + s.Height()*16)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		style, ok := inkStyles[panel.InkAt(2*y)]
		if !ok {
			style = inkStyles[core.ColorWhite]
		}
		sb.WriteString(style.Render(s.Row(y)))
	}
	return sb.String()
}
