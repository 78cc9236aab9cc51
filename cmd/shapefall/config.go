package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapefall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the game tuning as YAML after resolving the config file and
applying the difficulty preset. The output can be saved to
~/.shapefall/configs/shooter.yaml and edited.

Examples:
  shapefall config
  shapefall config --difficulty hard > ~/.shapefall/configs/shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addShooterFlags(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadShooterConfig()
	if err != nil {
		return err
	}

	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
