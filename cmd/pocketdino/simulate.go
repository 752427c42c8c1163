package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocketdino/internal/runner"
	"github.com/vovakirdan/pocketdino/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks uint64
	flagSkill    int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless autopilot games and report",
	Long: `Play games with the built-in autopilot as fast as possible and print
the best runs. Useful for checking how a config or difficulty preset
plays out.

Examples:
  pocketdino simulate
  pocketdino simulate --runs 50 --skill 80 --seed 7
  pocketdino simulate --difficulty hard --config ./configs/dino.toml`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of runs to finish")
	simulateCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 20000, "Tick budget per run before giving up")
	simulateCmd.Flags().IntVar(&flagSkill, "skill", 90, "Autopilot skill in percent (100 never fumbles)")
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func runSimulate(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open()
	if err != nil {
		fail("cannot open run log: %v", err)
	}
	defer store.Close()

	s := seed()
	res, err := runner.Simulate(cfg, runner.SimOptions{
		Runs:     flagRuns,
		MaxTicks: flagMaxTicks,
		Skill:    flagSkill,
		Seed:     s,
		Options:  runner.Options{Logger: logger, Runs: store},
	})
	if err != nil {
		fail("%v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		fail("%v", err)
	}
	stats, err := store.Stats()
	if err != nil {
		fail("%v", err)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Autopilot report - seed %d, skill %d%%", s, flagSkill)))
	fmt.Println()

	if len(top) == 0 {
		fmt.Println("No run finished.")
	} else {
		fmt.Println(runsTable(top).Render())
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Ticks: %d\n", stats.Runs, stats.Best, stats.Average, stats.TotalTicks)
	if res.Capped {
		fmt.Println(dimStyle.Render(fmt.Sprintf("Stopped after %d ticks with %d of %d runs finished.", res.Ticks, res.Finished, flagRuns)))
	}
}

// runsTable renders the best runs as a bordered table.
func runsTable(runs []storage.Run) *table.Table {
	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.AerialPassed),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Rank", "Score", "Ticks", "Birds").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
