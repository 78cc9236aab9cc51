// Package window runs the shooter in a desktop window with ebiten.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/shapefall/internal/config"
	"github.com/vovakirdan/shapefall/internal/core"
	"github.com/vovakirdan/shapefall/internal/shooter"
	"github.com/vovakirdan/shapefall/internal/storage"
)

// Config holds window and game settings.
type Config struct {
	Width   int
	Height  int
	Title   string
	Store   *storage.Store // May be nil
	Shooter config.ShooterConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Game adapts a shooter session to ebiten's Game interface. It is also the
// session's Viewport: the size follows the window through Layout.
type Game struct {
	session *shooter.Session
	clock   *core.FrameClock
	keys    KeySource
	logger  *log.Logger
	now     func() time.Time
	width   int
	height  int
}

// NewGame creates a game on the home screen.
func NewGame(cfg Config) *Game {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		clock:  core.NewFrameClock(cfg.Shooter.Timing.MaxDeltaMs),
		keys:   ebitenKeys{},
		logger: logger,
		now:    time.Now,
		width:  cfg.Width,
		height: cfg.Height,
	}

	opts := []shooter.Option{
		shooter.WithSeed(cfg.Runtime.Seed),
		shooter.WithErrorHandler(func(err error) {
			logger.Warn("score persistence failed", "error", err)
		}),
	}
	if cfg.Store != nil {
		slot := cfg.Store.Slot(shooter.GameID)
		opts = append(opts, shooter.WithHighScoreStore(slot), shooter.WithRunRecorder(slot))
	}
	g.session = shooter.NewSession(cfg.Shooter, g, opts...)
	return g
}

// Size implements shooter.Viewport.
func (g *Game) Size() (float64, float64) {
	return float64(g.width), float64(g.height)
}

// Session returns the running session.
func (g *Game) Session() *shooter.Session {
	return g.session
}

// Update polls input and advances the simulation by the measured delta.
func (g *Game) Update() error {
	if g.keys.JustPressed(core.ActionQuit) {
		return ebiten.Termination
	}

	if g.keys.JustPressed(core.ActionStart) && g.session.Start() {
		g.clock.Reset()
	}
	if g.keys.JustPressed(core.ActionPause) {
		g.session.TogglePause()
		if g.session.State() == shooter.StatePlaying {
			g.clock.Reset()
		}
	}

	g.session.SetMoveLeft(g.keys.Pressed(core.ActionLeft))
	g.session.SetMoveRight(g.keys.Pressed(core.ActionRight))
	if g.keys.JustPressed(core.ActionFire) {
		g.session.PressFire()
	}
	if g.keys.JustReleased(core.ActionFire) {
		g.session.ReleaseFire()
	}

	if g.session.Tick(g.clock.Advance(g.now())) == shooter.EventGameOver {
		g.logger.Debug("run ended",
			"score", g.session.Score(),
			"high", g.session.HighScore(),
			"runs", g.session.Runs(),
		)
	}
	return nil
}

// Draw renders the session and, on the home screen, the title panel.
func (g *Game) Draw(screen *ebiten.Image) {
	surface := imageSurface{dst: screen}
	shooter.Render(g.session.Snapshot(), surface)
	if g.session.State() == shooter.StateHome {
		drawHomePanel(surface, g.session.HighScore(), float64(g.width), float64(g.height))
	}
}

// drawHomePanel writes the title and prompts below the centre line.
func drawHomePanel(dst shooter.Surface, highScore int, w, h float64) {
	lines := []string{
		"SHAPEFALL",
		fmt.Sprintf("HIGH SCORE: %d", highScore),
		"ENTER start   SPACE fire   P pause   Q quit",
	}
	for i, line := range lines {
		dst.FillText(line, w/2, h/2+20+float64(i)*24, shooter.AlignCenter, shooter.BaselineTop)
	}
}

// Layout uses the window size as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(cfg Config) error {
	if cfg.Title == "" {
		cfg.Title = "shapefall"
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Runtime.TickRate > 0 {
		ebiten.SetTPS(cfg.Runtime.TickRate)
	}

	if err := ebiten.RunGame(NewGame(cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
