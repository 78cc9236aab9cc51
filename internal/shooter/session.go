// Package shooter implements the falling-shapes shooter: the entity store,
// spawner, simulation step, collision resolver, session state machine and a
// surface-agnostic renderer.
//
// A Session is single-threaded. Hosts deliver input events and ticks from
// one goroutine and read a Snapshot for drawing.
package shooter

import (
	"slices"
	"time"

	"github.com/vovakirdan/shapefall/internal/config"
	"github.com/vovakirdan/shapefall/internal/core"
)

// GameID identifies the game in persistent storage.
const GameID = "shapefall"

// State is the session state.
type State int

const (
	StateHome State = iota
	StatePlaying
	StatePaused
)

// String returns the HUD label for the state.
func (s State) String() string {
	switch s {
	case StateHome:
		return "HOME"
	case StatePlaying:
		return "PLAYING"
	case StatePaused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// Session owns the world, the score and the state machine.
type Session struct {
	cfg      config.ShooterConfig
	schedule config.SpawnSchedule
	viewport Viewport
	spawner  *Spawner

	scores   HighScoreStore
	recorder RunRecorder
	onError  func(error)
	seed     int64

	world      World
	state      State
	score      int
	highScore  int
	spawnTimer float64
	runs       int

	moveLeft  bool
	moveRight bool
	fireHeld  bool
}

// Option configures a Session.
type Option func(*Session)

// WithHighScoreStore sets the persistent high-score store.
func WithHighScoreStore(store HighScoreStore) Option {
	return func(s *Session) {
		s.scores = store
	}
}

// WithRunRecorder sets a recorder that receives every scoring run.
func WithRunRecorder(r RunRecorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithSeed fixes the spawner seed. Zero means time based.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithErrorHandler receives persistence errors. They never affect the game.
func WithErrorHandler(fn func(error)) Option {
	return func(s *Session) {
		s.onError = fn
	}
}

// NewSession creates a session on the home screen. The high score is read
// once from the store; a read error counts as 0.
func NewSession(cfg config.ShooterConfig, vp Viewport, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		schedule: config.NewSpawnSchedule(cfg.Spawn),
		viewport: vp,
		state:    StateHome,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	s.spawner = NewSpawner(s.seed, cfg.Shapes)

	if s.scores != nil {
		high, err := s.scores.HighScore()
		if err != nil {
			s.reportError(err)
			high = 0
		}
		s.highScore = max(high, 0)
	}

	s.world.Player = Player{W: cfg.Player.Width, H: cfg.Player.Height}
	s.resetPlayer()
	return s
}

// Start begins a new run from the home screen. It is a no-op in any other
// state.
func (s *Session) Start() bool {
	if s.state != StateHome {
		return false
	}
	s.score = 0
	s.spawnTimer = 0
	s.world.clear()
	s.moveLeft = false
	s.moveRight = false
	s.fireHeld = false
	s.resetPlayer()
	s.state = StatePlaying
	return true
}

// TogglePause switches between Playing and Paused. Pausing drops movement
// intents so the paddle does not drift when play resumes.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
		s.moveLeft = false
		s.moveRight = false
	case StatePaused:
		s.state = StatePlaying
	}
}

// HandleInput applies a key transition. Movement presses only count while
// playing; releases always clear the intent.
func (s *Session) HandleInput(ev core.InputEvent) {
	switch ev.Action {
	case core.ActionLeft:
		s.moveLeft = ev.Pressed && s.state == StatePlaying
	case core.ActionRight:
		s.moveRight = ev.Pressed && s.state == StatePlaying
	case core.ActionFire:
		if ev.Pressed {
			s.PressFire()
		} else {
			s.ReleaseFire()
		}
	case core.ActionPause:
		if ev.Pressed {
			s.TogglePause()
		}
	case core.ActionStart:
		if ev.Pressed {
			s.Start()
		}
	}
}

// SetMoveLeft sets the move-left intent.
func (s *Session) SetMoveLeft(held bool) {
	s.HandleInput(core.InputEvent{Action: core.ActionLeft, Pressed: held})
}

// SetMoveRight sets the move-right intent.
func (s *Session) SetMoveRight(held bool) {
	s.HandleInput(core.InputEvent{Action: core.ActionRight, Pressed: held})
}

// PressFire is the edge-triggered fire input: it fires once per press and
// is suppressed until ReleaseFire. Returns true if a bullet was created.
func (s *Session) PressFire() bool {
	if s.state != StatePlaying || s.fireHeld {
		return false
	}
	s.fireHeld = true
	return s.Fire()
}

// ReleaseFire re-arms PressFire.
func (s *Session) ReleaseFire() {
	s.fireHeld = false
}

// endRun returns to the home screen and hands the score over to storage.
func (s *Session) endRun() {
	s.state = StateHome
	s.runs++

	if s.score > s.highScore {
		s.highScore = s.score
		if s.scores != nil {
			if err := s.scores.SetHighScore(s.highScore); err != nil {
				s.reportError(err)
			}
		}
	}

	if s.recorder != nil && s.score > 0 {
		if err := s.recorder.RecordRun(s.score); err != nil {
			s.reportError(err)
		}
	}
}

// resetPlayer moves the paddle to the bottom centre of the viewport.
func (s *Session) resetPlayer() {
	w, h := s.viewport.Size()
	p := &s.world.Player
	p.X = w/2 - p.W/2
	p.Y = h - p.H - s.cfg.Player.BottomMargin
	p.FireCooldownMs = 0
}

func (s *Session) reportError(err error) {
	if s.onError != nil {
		s.onError(err)
	}
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Score returns the score of the current or most recent run.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int {
	return s.highScore
}

// Runs returns how many runs have ended in this session.
func (s *Session) Runs() int {
	return s.runs
}

// World returns the live entity store. Callers must not keep it across ticks.
func (s *Session) World() *World {
	return &s.world
}

// Snapshot is a read-only copy of everything the renderer draws.
type Snapshot struct {
	State     State
	Score     int
	HighScore int
	Width     float64
	Height    float64
	Player    Player
	Bullets   []Bullet
	Shapes    []Shape
}

// Snapshot copies the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	w, h := s.viewport.Size()
	return Snapshot{
		State:     s.state,
		Score:     s.score,
		HighScore: s.highScore,
		Width:     w,
		Height:    h,
		Player:    s.world.Player,
		Bullets:   slices.Clone(s.world.Bullets),
		Shapes:    slices.Clone(s.world.Shapes),
	}
}
