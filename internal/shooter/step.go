package shooter

import (
	"math"

	"github.com/vovakirdan/shapefall/internal/core"
)

// StepEvent reports what collision resolution did during a tick.
type StepEvent int

const (
	EventNone     StepEvent = iota
	EventHit                // A bullet destroyed a shape
	EventGameOver           // A shape reached the bottom and the run ended
)

// Tick advances the simulation by deltaMs milliseconds. The delta is
// clamped to [0, MaxDeltaMs]. Nothing moves unless the session is playing.
func (s *Session) Tick(deltaMs float64) StepEvent {
	if s.state != StatePlaying {
		return EventNone
	}
	delta := core.ClampF(deltaMs, 0, s.cfg.Timing.MaxDeltaMs)
	w, h := s.viewport.Size()

	s.coolDown(delta)
	s.movePlayer(w)
	s.spawn(delta, w)
	s.advance(delta)

	ev := s.resolveCollisions(h)
	if ev != EventGameOver {
		s.world.pruneBullets()
	}
	return ev
}

// Fire creates one bullet centred on the player's top edge. It is a no-op
// while the cooldown is running or the session is not playing.
func (s *Session) Fire() bool {
	p := &s.world.Player
	if s.state != StatePlaying || p.FireCooldownMs > 0 {
		return false
	}

	bc := s.cfg.Bullet
	s.world.Bullets = append(s.world.Bullets, Bullet{
		X:     p.X + p.W/2 - bc.Width/2,
		Y:     p.Y,
		W:     bc.Width,
		H:     bc.Height,
		Speed: bc.Speed,
	})
	p.FireCooldownMs = s.cfg.Player.FireCooldownMs
	return true
}

// SpawnInterval returns the current time between spawns in milliseconds.
func (s *Session) SpawnInterval() float64 {
	return s.schedule.Interval(s.score)
}

func (s *Session) coolDown(delta float64) {
	p := &s.world.Player
	p.FireCooldownMs = math.Max(0, p.FireCooldownMs-delta)
}

// movePlayer applies held movement as a fixed per-tick step and clamps the
// paddle to the current viewport width.
func (s *Session) movePlayer(viewportW float64) {
	p := &s.world.Player
	if s.moveLeft {
		p.X -= s.cfg.Player.Speed
	}
	if s.moveRight {
		p.X += s.cfg.Player.Speed
	}
	p.X = core.ClampF(p.X, 0, math.Max(0, viewportW-p.W))
}

// spawn accumulates time and emits as many shapes as whole intervals elapsed.
func (s *Session) spawn(delta, viewportW float64) {
	s.spawnTimer += delta
	interval := s.SpawnInterval()
	if interval <= 0 {
		return
	}
	for s.spawnTimer >= interval {
		s.world.Shapes = append(s.world.Shapes, s.spawner.Spawn(viewportW))
		s.spawnTimer -= interval
	}
}

// advance moves bullets up and shapes down, scaled to the reference frame.
func (s *Session) advance(delta float64) {
	frames := delta / s.cfg.Timing.ReferenceFrameMs
	for i := range s.world.Bullets {
		b := &s.world.Bullets[i]
		b.Y -= b.Speed * frames
	}
	for i := range s.world.Shapes {
		sh := &s.world.Shapes[i]
		sh.Y += sh.Speed * frames
	}
}
