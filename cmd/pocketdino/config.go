package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocketdino/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration pocketdino would run with, after the config
file search and the difficulty preset. The output can be saved and edited.

Examples:
  pocketdino config > ~/.pocketdino/dino.yaml
  pocketdino config --format toml --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}

	if err := config.Encode(os.Stdout, cfg, flagFormat); err != nil {
		fail("%v", err)
	}
}
