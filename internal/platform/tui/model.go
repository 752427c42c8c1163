package tui

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocketdino/internal/config"
	"github.com/vovakirdan/pocketdino/internal/core"
	"github.com/vovakirdan/pocketdino/internal/games/dino"
	"github.com/vovakirdan/pocketdino/internal/runner"
	"github.com/vovakirdan/pocketdino/internal/storage"
)

// runsPanelWidth is the rendered width of the runs table with its border.
const runsPanelWidth = 48

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// Model is the Bubble Tea model for the game screen.
type Model struct {
	runner  *runner.Runner
	display *Display
	clock   core.Clock
	holds   *Holds
	poll    time.Duration

	keys   KeyMap
	help   help.Model
	runs   table.Model
	source RunSource

	showRuns  bool
	lastPhase dino.Phase
	status    string
	width     int
	quitting  bool
}

// NewModel creates the game screen model. source may be nil.
func NewModel(r *runner.Runner, d *Display, clock core.Clock, cfg config.DinoConfig, source RunSource) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		runner:  r,
		display: d,
		clock:   clock,
		holds:   NewHolds(cfg.Input),
		poll:    cfg.Timing.TickInterval() / 2,
		keys:    DefaultKeyMap(),
		help:    h,
		runs:    newRunsTable(maxRuns),
		source:  source,
	}
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	return pollCmd(m.poll)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionCopy:
		if err := clipboard.WriteAll(m.display.Text()); err != nil {
			m.status = "copy failed: " + err.Error()
		} else {
			m.status = "frame copied"
		}

	case core.ActionRuns:
		m.showRuns = !m.showRuns
		if m.showRuns {
			m.refreshRuns()
		}

	case core.ActionNone:

	default:
		m.holds.Press(action, m.clock.Now())
	}

	return m, nil
}

// handleTick polls the runner and schedules the next poll.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.clock.Now()
	if m.runner.Poll(now, m.holds.Levels(now)) {
		phase := m.runner.State().Phase
		if phase != m.lastPhase {
			m.lastPhase = phase
			m.status = ""
			if phase == dino.PhaseGameOver && m.showRuns {
				m.refreshRuns()
			}
		}
	}
	return m, pollCmd(m.poll)
}

func (m *Model) refreshRuns() {
	if err := loadRuns(&m.runs, m.source); err != nil {
		m.status = "runs unavailable: " + err.Error()
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	field := m.display.View()
	if m.showRuns {
		runs := panelStyle.Render(m.runs.View())
		if m.width >= m.display.screen.Width()+runsPanelWidth+2 {
			field = lipgloss.JoinHorizontal(lipgloss.Top, field, "  ", runs)
		} else {
			field = runs
		}
	}

	s := m.runner.State()
	status := fmt.Sprintf("Score %d  Best %d", s.Score, s.HighScore)
	if m.status != "" {
		status += "  " + m.status
	}

	return field + "\n" + statusStyle.Render(status) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Options configure a terminal session.
type Options struct {
	Config config.DinoConfig
	Seed   int64
	Runs   *storage.Store // nil keeps no run log
	Logger *log.Logger
}

// Run plays the game in the terminal until the player quits.
func Run(opts Options) error {
	cfg := opts.Config
	panel, err := core.ParsePanel(cfg.Display.Panel)
	if err != nil {
		return err
	}

	d := NewDisplay(cfg.Field.Width, cfg.Field.Height, panel, os.Stdout)

	var runLog runner.RunLog
	var source RunSource
	if opts.Runs != nil {
		runLog = opts.Runs
		source = opts.Runs
	}

	r, err := runner.New(cfg, rand.New(rand.NewSource(opts.Seed)), d, runner.Options{
		Logger: opts.Logger,
		Runs:   runLog,
	})
	if err != nil {
		return err
	}

	model := NewModel(r, d, core.NewMonotonicClock(), cfg, source)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
