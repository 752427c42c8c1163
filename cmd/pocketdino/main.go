// pocketdino is a side-scrolling runner for a 128x64 monochrome panel,
// playable in a terminal or a desktop window.
//
// Usage:
//
//	pocketdino play           - Play in the terminal
//	pocketdino window         - Play in a desktop window
//	pocketdino simulate       - Run headless autopilot games and report
//	pocketdino config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>        - Config file (.yaml or .toml)
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--seed <value>         - RNG seed for reproducible obstacles
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pocketdino",
	Short: "pocketdino - a one-button runner for tiny OLED screens",
	Long: `pocketdino is a side-scrolling runner drawn on a 128x64 monochrome
panel. Jump over cacti, duck under birds, and chase your best score.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  simulate  - Run headless autopilot games
  config    - Print the effective configuration

Examples:
  pocketdino play
  pocketdino play --difficulty hard
  pocketdino window --config ./configs/dino.toml
  pocketdino simulate --runs 20 --seed 42
  pocketdino config --format toml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
