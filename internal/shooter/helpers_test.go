package shooter

import (
	"errors"
	"testing"

	"github.com/vovakirdan/shapefall/internal/config"
)

const (
	testW = 800.0
	testH = 600.0
)

// memoryScores is an in-memory HighScoreStore and RunRecorder.
type memoryScores struct {
	high    int
	readErr error
	writes  []int
	runs    []int
}

func (m *memoryScores) HighScore() (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	return m.high, nil
}

func (m *memoryScores) SetHighScore(score int) error {
	m.high = score
	m.writes = append(m.writes, score)
	return nil
}

func (m *memoryScores) RecordRun(score int) error {
	m.runs = append(m.runs, score)
	return nil
}

// resizableViewport lets tests change the size between ticks.
type resizableViewport struct {
	w, h float64
}

func (v *resizableViewport) Size() (float64, float64) {
	return v.w, v.h
}

var errStoreDown = errors.New("store down")

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	return newTestSessionWithConfig(t, config.DefaultShooterConfig(), opts...)
}

func newTestSessionWithConfig(t *testing.T, cfg config.ShooterConfig, opts ...Option) *Session {
	t.Helper()
	all := append([]Option{WithSeed(1)}, opts...)
	return NewSession(cfg, &resizableViewport{w: testW, h: testH}, all...)
}

// noSpawnConfig returns defaults with spawning pushed out of reach.
func noSpawnConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Spawn.BaseIntervalMs = 1e9
	cfg.Spawn.MinIntervalMs = 1e9
	return cfg
}

// endRunWithShape drops a shape onto the bottom edge and ticks once.
func endRunWithShape(t *testing.T, s *Session) {
	t.Helper()
	size := s.cfg.Shapes.Size
	s.world.Shapes = append(s.world.Shapes, Shape{X: 0, Y: testH - size, Size: size, Speed: 2})
	if ev := s.Tick(0); ev != EventGameOver {
		t.Fatalf("Tick() = %v, expected EventGameOver", ev)
	}
}
