package shooter

import (
	"math"
	"testing"

	"github.com/vovakirdan/shapefall/internal/config"
)

func TestPlayerStaysInBounds(t *testing.T) {
	for delta := 0.0; delta <= 50; delta += 5 {
		s := newTestSessionWithConfig(t, noSpawnConfig())
		s.Start()
		maxX := testW - s.world.Player.W

		s.SetMoveLeft(true)
		for i := 0; i < 200; i++ {
			s.Tick(delta)
			if x := s.world.Player.X; x < 0 || x > maxX {
				t.Fatalf("delta=%v: Player.X = %v outside [0, %v]", delta, x, maxX)
			}
		}
		if s.world.Player.X != 0 {
			t.Errorf("delta=%v: holding left should reach 0, got %v", delta, s.world.Player.X)
		}

		s.SetMoveLeft(false)
		s.SetMoveRight(true)
		for i := 0; i < 200; i++ {
			s.Tick(delta)
			if x := s.world.Player.X; x < 0 || x > maxX {
				t.Fatalf("delta=%v: Player.X = %v outside [0, %v]", delta, x, maxX)
			}
		}
		if s.world.Player.X != maxX {
			t.Errorf("delta=%v: holding right should reach %v, got %v", delta, maxX, s.world.Player.X)
		}
	}
}

func TestMovementIsPerTickNotDeltaScaled(t *testing.T) {
	for _, delta := range []float64{1, 16.67, 50} {
		s := newTestSessionWithConfig(t, noSpawnConfig())
		s.Start()
		x0 := s.world.Player.X

		s.SetMoveRight(true)
		s.Tick(delta)

		if got := s.world.Player.X - x0; got != s.cfg.Player.Speed {
			t.Errorf("delta=%v: moved %v, expected %v", delta, got, s.cfg.Player.Speed)
		}
	}
}

func TestViewportResizeReclampsNextTick(t *testing.T) {
	vp := &resizableViewport{w: 800, h: 600}
	s := NewSession(noSpawnConfig(), vp, WithSeed(1))
	s.Start()
	s.world.Player.X = 700

	vp.w = 400
	if s.world.Player.X != 700 {
		t.Fatal("resize must not move the player before the next tick")
	}

	s.Tick(16)
	if want := 400 - s.world.Player.W; s.world.Player.X != want {
		t.Errorf("Player.X = %v, expected re-clamped to %v", s.world.Player.X, want)
	}

	// Narrower than the paddle pins it to the left edge
	vp.w = 10
	s.Tick(16)
	if s.world.Player.X != 0 {
		t.Errorf("Player.X = %v, expected 0 on a tiny viewport", s.world.Player.X)
	}
}

func TestFireCooldown(t *testing.T) {
	s := newTestSessionWithConfig(t, noSpawnConfig())
	s.Start()
	cooldown := s.cfg.Player.FireCooldownMs

	if !s.Fire() {
		t.Fatal("first Fire() should create a bullet")
	}
	if len(s.world.Bullets) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(s.world.Bullets))
	}
	if s.world.Player.FireCooldownMs != cooldown {
		t.Errorf("FireCooldownMs = %v, expected %v", s.world.Player.FireCooldownMs, cooldown)
	}

	if s.Fire() {
		t.Error("Fire() during cooldown should be a no-op")
	}

	// Deltas above MaxDeltaMs are clamped, so drive the cooldown in
	// 50ms ticks: 200 -> 100
	s.Tick(50)
	s.Tick(50)
	if s.world.Player.FireCooldownMs != cooldown-100 {
		t.Errorf("FireCooldownMs = %v, expected %v", s.world.Player.FireCooldownMs, cooldown-100)
	}
	if s.Fire() {
		t.Error("Fire() with cooldown remaining should be a no-op")
	}
	if len(s.world.Bullets) != 1 {
		t.Errorf("expected still 1 bullet, got %d", len(s.world.Bullets))
	}

	// A single oversized delta only removes MaxDeltaMs
	s.Tick(cooldown)
	if s.world.Player.FireCooldownMs != cooldown-150 {
		t.Errorf("FireCooldownMs = %v, expected %v after a clamped tick", s.world.Player.FireCooldownMs, cooldown-150)
	}

	// Overshooting the remaining time floors the cooldown at 0
	s.Tick(50)
	s.Tick(50)
	if s.world.Player.FireCooldownMs != 0 {
		t.Errorf("FireCooldownMs = %v, expected floor at 0", s.world.Player.FireCooldownMs)
	}
	if !s.Fire() {
		t.Error("Fire() after cooldown should create a bullet")
	}
	if len(s.world.Bullets) != 2 {
		t.Errorf("expected 2 bullets, got %d", len(s.world.Bullets))
	}
	if s.world.Player.FireCooldownMs != cooldown {
		t.Errorf("FireCooldownMs = %v, expected reset to %v", s.world.Player.FireCooldownMs, cooldown)
	}
}

func TestBulletSpawnsCentredOnPlayer(t *testing.T) {
	s := newTestSession(t)
	s.Start()
	s.Fire()

	p := s.world.Player
	b := s.world.Bullets[0]
	if b.X+b.W/2 != p.X+p.W/2 {
		t.Errorf("bullet centre %v, expected player centre %v", b.X+b.W/2, p.X+p.W/2)
	}
	if b.Y != p.Y {
		t.Errorf("bullet Y = %v, expected player top %v", b.Y, p.Y)
	}
}

func TestPressFireIsEdgeTriggered(t *testing.T) {
	s := newTestSessionWithConfig(t, noSpawnConfig())

	if s.PressFire() {
		t.Error("PressFire() on HOME should not fire")
	}

	s.Start()
	if !s.PressFire() {
		t.Fatal("first press should fire")
	}

	// Held key: wait out the cooldown, still no second bullet
	s.Tick(50)
	s.Tick(50)
	s.Tick(50)
	s.Tick(50)
	if s.PressFire() {
		t.Error("press while held should be suppressed")
	}

	s.ReleaseFire()
	if !s.PressFire() {
		t.Error("press after release should fire")
	}
	if len(s.world.Bullets) != 2 {
		t.Errorf("expected 2 bullets, got %d", len(s.world.Bullets))
	}
}

func TestTickOutsidePlayingDoesNothing(t *testing.T) {
	s := newTestSession(t)
	p := s.world.Player

	for i := 0; i < 100; i++ {
		if ev := s.Tick(50); ev != EventNone {
			t.Fatalf("Tick on HOME returned %v", ev)
		}
	}
	if s.world.Player != p || len(s.world.Shapes) != 0 || s.spawnTimer != 0 {
		t.Error("Tick on HOME changed the world")
	}
}

func TestTickClampsDelta(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  float64 // spawn timer after one tick
	}{
		{"negative", -100, 0},
		{"nan", math.NaN(), 0},
		{"within range", 30, 30},
		{"huge", 10_000, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSessionWithConfig(t, noSpawnConfig())
			s.Start()
			s.Fire()
			y0 := s.world.Bullets[0].Y

			s.Tick(tc.delta)

			if s.spawnTimer != tc.want {
				t.Errorf("spawnTimer = %v, expected %v", s.spawnTimer, tc.want)
			}
			moved := y0 - s.world.Bullets[0].Y
			if want := s.cfg.Bullet.Speed * tc.want / s.cfg.Timing.ReferenceFrameMs; math.Abs(moved-want) > 1e-9 {
				t.Errorf("bullet moved %v, expected %v", moved, want)
			}
		})
	}
}

func TestEntitiesMoveFrameRateIndependent(t *testing.T) {
	s := newTestSessionWithConfig(t, noSpawnConfig())
	s.Start()
	s.Fire()
	s.world.Shapes = append(s.world.Shapes, Shape{X: 0, Y: 0, Size: 30, Speed: 3})

	// One 33.34ms tick equals two reference frames
	s.Tick(33.34)

	if got, want := s.world.Shapes[0].Y, 6.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("shape Y = %v, expected %v", got, want)
	}
	p := s.world.Player
	if got, want := s.world.Bullets[0].Y, p.Y-16; math.Abs(got-want) > 1e-9 {
		t.Errorf("bullet Y = %v, expected %v", got, want)
	}
}

func TestSpawnIntervalRamp(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	prev := s.SpawnInterval()
	if prev != s.cfg.Spawn.BaseIntervalMs {
		t.Errorf("SpawnInterval() at score 0 = %v, expected %v", prev, s.cfg.Spawn.BaseIntervalMs)
	}
	for score := 1; score <= 100; score++ {
		s.score = score
		cur := s.SpawnInterval()
		if cur > prev {
			t.Fatalf("interval increased at score %d: %v -> %v", score, prev, cur)
		}
		if cur < s.cfg.Spawn.MinIntervalMs {
			t.Fatalf("interval %v below floor at score %d", cur, score)
		}
		prev = cur
	}
	if prev != s.cfg.Spawn.MinIntervalMs {
		t.Errorf("interval at score 100 = %v, expected floor %v", prev, s.cfg.Spawn.MinIntervalMs)
	}
}

func TestSpawnAccumulatesAndCatchesUp(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Spawn.BaseIntervalMs = 20
	cfg.Spawn.MinIntervalMs = 20
	s := newTestSessionWithConfig(t, cfg)
	s.Start()

	s.Tick(50)
	if len(s.world.Shapes) != 2 {
		t.Errorf("expected 2 shapes from a 50ms tick at 20ms interval, got %d", len(s.world.Shapes))
	}
	if s.spawnTimer != 10 {
		t.Errorf("spawnTimer = %v, expected remainder 10", s.spawnTimer)
	}

	s.Tick(10)
	if len(s.world.Shapes) != 3 {
		t.Errorf("expected a third shape once the remainder filled up, got %d", len(s.world.Shapes))
	}
}

func TestSpawnAtDefaultInterval(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	// 47 ticks of 16.67ms stay under 800ms
	for i := 0; i < 47; i++ {
		s.Tick(16.67)
	}
	if len(s.world.Shapes) != 0 {
		t.Fatalf("expected no shapes before 800ms, got %d", len(s.world.Shapes))
	}
	s.Tick(16.67)
	if len(s.world.Shapes) != 1 {
		t.Errorf("expected one shape after 800ms, got %d", len(s.world.Shapes))
	}
}

func TestOffscreenBulletsArePruned(t *testing.T) {
	s := newTestSessionWithConfig(t, noSpawnConfig())
	s.Start()
	s.world.Bullets = append(s.world.Bullets,
		Bullet{X: 10, Y: -9, W: 4, H: 10, Speed: 8},   // bottom at 1, leaves this tick
		Bullet{X: 20, Y: 100, W: 4, H: 10, Speed: 8},  // stays
		Bullet{X: 30, Y: -10.5, W: 4, H: 10, Speed: 0}, // already above
	)

	s.Tick(16.67)

	if len(s.world.Bullets) != 1 {
		t.Fatalf("expected 1 bullet left, got %d", len(s.world.Bullets))
	}
	if s.world.Bullets[0].X != 20 {
		t.Errorf("wrong bullet kept: %+v", s.world.Bullets[0])
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	run := func() []Shape {
		s := newTestSession(t)
		s.Start()
		for i := 0; i < 300; i++ {
			if s.Tick(16.67) == EventGameOver {
				break
			}
		}
		return s.Snapshot().Shapes
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("shape counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("shape %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
