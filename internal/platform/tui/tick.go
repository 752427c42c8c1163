// Package tui plays pocketdino in a terminal with Bubble Tea.
//
// The terminal shows the 128x64 framebuffer as half-block characters, two
// pixel rows per line, tinted like the chosen OLED panel.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to poll the game runner.
type TickMsg time.Time

// pollCmd returns a Bubble Tea command that sends a tick message after
// interval. Polling faster than the simulation rate keeps tick jitter low;
// the runner's scheduler decides when a step is due.
func pollCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
