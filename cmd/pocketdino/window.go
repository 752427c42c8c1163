package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocketdino/internal/platform/window"
	"github.com/vovakirdan/pocketdino/internal/storage"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play in a desktop window. The panel is scaled up by --scale
(or display.scale from the config).

Controls:
  Space/Up/W   - Jump (also restarts after game over)
  Down/S       - Crouch while held
  R/Enter      - Restart after game over
  C            - Copy the current frame to the clipboard as text
  Q/Esc        - Quit

Examples:
  pocketdino window
  pocketdino window --scale 8`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 0, "Window pixels per panel pixel (0 = from config)")
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}
	if flagScale > 0 {
		cfg.Display.Scale = flagScale
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		store = nil
	}

	runErr := window.Run(window.Options{
		Config: cfg,
		Seed:   seed(),
		Runs:   store,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}
}
