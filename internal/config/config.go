// Package config provides YAML-based tuning for the shooter and difficulty
// presets.
package config

// ShooterConfig contains all tunable constants for the game.
// Distances are in viewport units (pixels), times in milliseconds, and
// speeds in units per reference frame.
type ShooterConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Bullet  BulletConfig  `yaml:"bullet"`
	Shapes  ShapeConfig   `yaml:"shapes"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
}

// PlayerConfig defines the paddle.
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"` // per tick, not delta scaled
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	BottomMargin   float64 `yaml:"bottom_margin"`
	FireCooldownMs float64 `yaml:"fire_cooldown_ms"`
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShapeConfig defines the falling squares.
type ShapeConfig struct {
	Size     float64 `yaml:"size"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// SpawnConfig defines the linear spawn-interval ramp.
type SpawnConfig struct {
	BaseIntervalMs float64 `yaml:"base_interval_ms"`
	MinIntervalMs  float64 `yaml:"min_interval_ms"`
	RampPerPointMs float64 `yaml:"ramp_per_point_ms"`
}

// TimingConfig defines frame timing.
type TimingConfig struct {
	MaxDeltaMs       float64 `yaml:"max_delta_ms"`
	ReferenceFrameMs float64 `yaml:"reference_frame_ms"`
}

// DisplayConfig defines how the terminal host maps viewport units to cells.
type DisplayConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), true
	default:
		return "", false
	}
}
