package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapefall/internal/platform/window"
)

var (
	flagWindowWidth  int
	flagWindowHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with the keyboard.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  P/Esc            - Pause
  Enter            - Start a run
  Q                - Quit

Examples:
  shapefall window
  shapefall window --width 1024 --height 768 --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowWidth, "width", 800, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowHeight, "height", 600, "Window height in pixels")
	addShooterFlags(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) error {
	shooterCfg, err := loadShooterConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("opening window", "width", flagWindowWidth, "height", flagWindowHeight)
	return window.Run(window.Config{
		Width:   flagWindowWidth,
		Height:  flagWindowHeight,
		Store:   store,
		Shooter: shooterCfg,
		Runtime: runtimeConfig(),
		Logger:  logger,
	})
}
