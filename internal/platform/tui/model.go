package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shapefall/internal/config"
	"github.com/vovakirdan/shapefall/internal/core"
	"github.com/vovakirdan/shapefall/internal/shooter"
	"github.com/vovakirdan/shapefall/internal/storage"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// ModelConfig holds everything needed to build a game model.
type ModelConfig struct {
	Store   *storage.Store // May be nil; the game then runs without persistence
	Shooter config.ShooterConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Width   int
	Height  int

	// ScreenshotDir receives plain-text screen dumps on ctrl+s.
	// Empty disables screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one shooter session.
type Model struct {
	session  *shooter.Session
	screen   *core.Screen
	surface  *CellSurface
	clock    *core.FrameClock
	hold     *KeyHold
	keys     GameKeyMap
	help     help.Model
	store    *storage.Store
	logger   *log.Logger
	tickRate int
	width    int
	height   int
	board    *ScoreboardModel
	shotDir  string
	quitting bool
}

// NewModel creates a game model on the home screen.
func NewModel(cfg ModelConfig) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.Width, max(cfg.Height-helpHeight, 1))
	surface := NewCellSurface(screen, cfg.Shooter.Display.CellWidth, cfg.Shooter.Display.CellHeight)

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

	h := help.New()
	h.Width = cfg.Width

	return Model{
		session:  shooter.NewSession(cfg.Shooter, surface, opts...),
		screen:   screen,
		surface:  surface,
		clock:    core.NewFrameClock(cfg.Shooter.Timing.MaxDeltaMs),
		hold:     NewKeyHold(DefaultHoldInitial, DefaultHoldRepeat),
		keys:     DefaultGameKeyMap(),
		help:     h,
		store:    cfg.Store,
		logger:   logger,
		tickRate: cfg.Runtime.TickRate,
		width:    cfg.Width,
		height:   cfg.Height,
		shotDir:  cfg.ScreenshotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if m.shotDir != "" {
			if path, err := m.saveScreenshot(now); err != nil {
				m.logger.Warn("screenshot failed", "error", err)
			} else {
				m.logger.Info("screenshot saved", "path", path)
			}
		}
		return m, nil
	}

	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight, core.ActionFire:
		m.apply(m.hold.Press(action, now))

	case core.ActionPause:
		m.apply(m.hold.ReleaseAll())
		m.session.TogglePause()
		if m.session.State() == shooter.StatePlaying {
			m.clock.Reset()
		}

	case core.ActionStart:
		if m.session.State() != shooter.StateHome {
			return m, nil
		}
		m.apply(m.hold.ReleaseAll())
		m.session.Start()
		m.clock.Reset()
		m.logger.Debug("run started", "high", m.session.HighScore())

	case core.ActionScores:
		if m.session.State() == shooter.StateHome {
			board := NewScoreboardModel(m.store, shooter.GameID, m.width, m.height)
			board.embedded = true
			m.board = &board
		}
	}

	return m, nil
}

// updateBoard forwards input to the open score board.
func (m Model) updateBoard(msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case board.IsQuitting():
		m.quitting = true
		m.board = nil
		return m, tea.Quit
	case board.IsGoingBack():
		m.board = nil
		return m, nil
	}
	m.board = &board
	return m, cmd
}

// apply feeds input events to the session.
func (m Model) apply(events []core.InputEvent) {
	for _, ev := range events {
		m.session.HandleInput(ev)
	}
}

// handleResize processes window resize events. The session keeps running;
// the paddle is re-clamped on the next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width

	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m, nil
}

// handleTick releases expired keys and advances the simulation.
func (m Model) handleTick(now time.Time) (Model, tea.Cmd) {
	m.apply(m.hold.Expire(now))

	delta := m.clock.Advance(now)
	if m.session.Tick(delta) == shooter.EventGameOver {
		m.logger.Debug("run ended",
			"score", m.session.Score(),
			"high", m.session.HighScore(),
			"runs", m.session.Runs(),
		)
	}

	return m, tickCmd(m.tickRate)
}

// saveScreenshot renders the current frame and writes it as plain text.
func (m Model) saveScreenshot(now time.Time) (string, error) {
	m.draw()
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", shooter.GameID, now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// Session returns the running session.
func (m Model) Session() *shooter.Session {
	return m.session
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.draw()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// draw renders the session into the cell screen.
func (m Model) draw() {
	shooter.Render(m.session.Snapshot(), m.surface)
	if m.session.State() == shooter.StateHome {
		drawHomePanel(m.screen, m.session.HighScore())
	}
}

// drawHomePanel draws the title box with the high score below the centre
// line, leaving room for the GAME OVER overlay above it.
func drawHomePanel(screen *core.Screen, highScore int) {
	lines := []string{
		"S H A P E F A L L",
		"",
		fmt.Sprintf("HIGH SCORE: %d", highScore),
		"",
		"ENTER start  S scores  Q quit",
	}

	inner := 0
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l))
	}
	w, h := inner+4, len(lines)+2
	x := (screen.Width() - w) / 2
	y := screen.Height()/2 + 1
	if y+h > screen.Height() {
		y = max(screen.Height()-h, 0)
	}

	screen.FillCells(x, y, w, h, ' ', core.ColorDefault)
	screen.DrawBox(x, y, w, h, core.ColorCyan)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightGreen
		}
		screen.DrawTextCentered(y+1+i, l, color)
	}
}

// Run starts the Bubble Tea program for a local terminal.
func Run(cfg ModelConfig) error {
	p := tea.NewProgram(
		NewModel(cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
