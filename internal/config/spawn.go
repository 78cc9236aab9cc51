package config

import "math"

// SpawnSchedule computes the spawn interval from the current score.
// The interval shrinks linearly with score and never drops below the floor.
type SpawnSchedule struct {
	BaseMs float64
	MinMs  float64
	RampMs float64
}

// NewSpawnSchedule builds a schedule from the spawn section of the config.
func NewSpawnSchedule(cfg SpawnConfig) SpawnSchedule {
	return SpawnSchedule{
		BaseMs: cfg.BaseIntervalMs,
		MinMs:  cfg.MinIntervalMs,
		RampMs: cfg.RampPerPointMs,
	}
}

// Interval returns max(MinMs, BaseMs - score*RampMs).
func (s SpawnSchedule) Interval(score int) float64 {
	return math.Max(s.MinMs, s.BaseMs-float64(score)*s.RampMs)
}
