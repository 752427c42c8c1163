package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocketdino/internal/storage"
)

// maxRuns is how many runs the panel lists.
const maxRuns = 10

// RunSource lists finished runs. *storage.Store satisfies it.
type RunSource interface {
	TopRuns(limit int) ([]storage.Run, error)
}

// newRunsTable creates the table shown by the runs panel.
func newRunsTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "Birds", Width: 7},
		{Title: "Ended", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// runRows converts runs to table rows, best first.
func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.AerialPassed),
			r.EndedAt.Format("15:04:05"),
		}
	}
	return rows
}

// loadRuns refreshes t from src. A nil source leaves the table empty.
func loadRuns(t *table.Model, src RunSource) error {
	if src == nil {
		t.SetRows(nil)
		return nil
	}
	runs, err := src.TopRuns(maxRuns)
	if err != nil {
		t.SetRows(nil)
		return err
	}
	t.SetRows(runRows(runs))
	t.GotoTop()
	return nil
}
