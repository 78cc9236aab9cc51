package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for unusable tuning values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadShooter loads the game configuration.
// Search order: customPath -> ~/.shapefall/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default.
// Files are overlaid on the defaults, so they only need the keys they change.
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to load %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shooter.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "shooter.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse overlays YAML data on the built-in defaults and validates the result.
func Parse(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, fmt.Errorf("config: failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// Encode renders the configuration as YAML.
func Encode(cfg ShooterConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate checks that every value can drive the simulation.
func (c ShooterConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"player.speed", c.Player.Speed},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"bullet.speed", c.Bullet.Speed},
		{"bullet.width", c.Bullet.Width},
		{"bullet.height", c.Bullet.Height},
		{"shapes.size", c.Shapes.Size},
		{"shapes.min_speed", c.Shapes.MinSpeed},
		{"spawn.base_interval_ms", c.Spawn.BaseIntervalMs},
		{"spawn.min_interval_ms", c.Spawn.MinIntervalMs},
		{"timing.max_delta_ms", c.Timing.MaxDeltaMs},
		{"timing.reference_frame_ms", c.Timing.ReferenceFrameMs},
		{"display.cell_width", c.Display.CellWidth},
		{"display.cell_height", c.Display.CellHeight},
	}
	for _, p := range positive {
		if !(p.val > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.val)
		}
	}

	if c.Player.FireCooldownMs < 0 {
		return fmt.Errorf("%w: player.fire_cooldown_ms must not be negative", ErrInvalidConfig)
	}
	if c.Player.BottomMargin < 0 {
		return fmt.Errorf("%w: player.bottom_margin must not be negative", ErrInvalidConfig)
	}
	if c.Spawn.RampPerPointMs < 0 {
		return fmt.Errorf("%w: spawn.ramp_per_point_ms must not be negative", ErrInvalidConfig)
	}
	if c.Shapes.MaxSpeed < c.Shapes.MinSpeed {
		return fmt.Errorf("%w: shapes.max_speed (%v) is below shapes.min_speed (%v)",
			ErrInvalidConfig, c.Shapes.MaxSpeed, c.Shapes.MinSpeed)
	}
	if c.Spawn.BaseIntervalMs < c.Spawn.MinIntervalMs {
		return fmt.Errorf("%w: spawn.base_interval_ms (%v) is below spawn.min_interval_ms (%v)",
			ErrInvalidConfig, c.Spawn.BaseIntervalMs, c.Spawn.MinIntervalMs)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shapefall", "configs", filename)
}

// ApplyShooterPreset rescales the loaded config for a difficulty preset.
// Only the spawn ramp and the shape speed range change, and they are
// scaled rather than replaced so values from a config file carry through.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.BaseIntervalMs *= 1.25
		cfg.Spawn.MinIntervalMs *= 1.25
		cfg.Shapes.MinSpeed *= 0.75
		cfg.Shapes.MaxSpeed *= 0.75
	case DifficultyHard:
		cfg.Spawn.BaseIntervalMs *= 0.8
		cfg.Spawn.MinIntervalMs *= 0.8
		cfg.Spawn.RampPerPointMs *= 1.2
		cfg.Shapes.MinSpeed *= 1.25
		cfg.Shapes.MaxSpeed *= 1.25
	}
}
