package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shapefall/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the current terminal.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  P/Esc            - Pause
  Enter            - Start a run
  S                - Score board (home screen)
  Ctrl+S           - Save a text screenshot to ~/.shapefall/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower shapes, longer spawn interval
  normal - Default tuning
  hard   - Faster shapes, shorter spawn interval

Examples:
  shapefall play
  shapefall play --difficulty hard
  shapefall play --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addShooterFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	shooterCfg, err := loadShooterConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	var shotDir string
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		shotDir = filepath.Join(home, ".shapefall", "screenshots")
	}

	logger.Info("starting terminal game", "width", width, "height", height, "difficulty", flagDifficulty)
	if err := tui.Run(tui.ModelConfig{
		Store:   store,
		Shooter: shooterCfg,
		Runtime: runtimeConfig(),
		Logger:  logger,
		Width:   width,
		Height:  height,

		ScreenshotDir: shotDir,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
