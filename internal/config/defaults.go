package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: PlayerConfig{
			Speed:          6,
			Width:          40,
			Height:         20,
			BottomMargin:   20,
			FireCooldownMs: 200,
		},
		Bullet: BulletConfig{
			Speed:  8,
			Width:  4,
			Height: 10,
		},
		Shapes: ShapeConfig{
			Size:     30,
			MinSpeed: 2,
			MaxSpeed: 4,
		},
		Spawn: SpawnConfig{
			BaseIntervalMs: 800,
			MinIntervalMs:  300,
			RampPerPointMs: 10,
		},
		Timing: TimingConfig{
			MaxDeltaMs:       50,
			ReferenceFrameMs: 16.67,
		},
		Display: DisplayConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}
