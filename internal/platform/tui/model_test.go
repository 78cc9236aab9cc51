package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shapefall/internal/config"
	"github.com/vovakirdan/shapefall/internal/core"
	"github.com/vovakirdan/shapefall/internal/shooter"
	"github.com/vovakirdan/shapefall/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(ModelConfig{
		Store:   store,
		Shooter: config.DefaultShooterConfig(),
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 1},
		Width:   80,
		Height:  24,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModelStartsOnHomePanel(t *testing.T) {
	m := newTestModel(t, nil)

	if m.Session().State() != shooter.StateHome {
		t.Fatalf("expected home state, got %v", m.Session().State())
	}

	m.View()
	text := m.screen.String()
	for _, want := range []string{"HIGH SCORE: 0", "ENTER start", "STATE: HOME"} {
		if !strings.Contains(text, want) {
			t.Errorf("home screen missing %q", want)
		}
	}
}

func TestModelEnterStartsRun(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Session().State() != shooter.StatePlaying {
		t.Fatalf("expected playing after enter, got %v", m.Session().State())
	}

	m.View()
	if strings.Contains(m.screen.String(), "ENTER start") {
		t.Error("home panel should not be drawn while playing")
	}
}

func TestModelHeldMoveReleasesAfterGrace(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	start := time.Unix(1000, 0)
	m, _ = m.handleTick(start)
	x0 := m.Session().World().Player.X

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyLeft}, start)
	m, _ = m.handleTick(start.Add(16 * time.Millisecond))
	x1 := m.Session().World().Player.X
	if x1 != x0-6 {
		t.Fatalf("expected one step left: x0=%v x1=%v", x0, x1)
	}

	// No repeats arrive, so the key is released once the grace ends
	m, _ = m.handleTick(start.Add(DefaultHoldInitial + 50*time.Millisecond))
	x2 := m.Session().World().Player.X
	m, _ = m.handleTick(start.Add(DefaultHoldInitial + 66*time.Millisecond))
	if got := m.Session().World().Player.X; got != x2 {
		t.Errorf("paddle kept moving after release: %v -> %v", x2, got)
	}
}

func TestModelFireOncePerHold(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	now := time.Unix(1000, 0)
	m, _ = m.handleTick(now)
	for i := 0; i < 5; i++ {
		m, _ = m.handleKey(runeKey(' '), now.Add(time.Duration(i)*30*time.Millisecond))
	}
	if got := len(m.Session().World().Bullets); got != 1 {
		t.Errorf("auto-repeat fired %d bullets, want 1", got)
	}
}

func TestModelPauseToggle(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, runeKey('p'))
	if m.Session().State() != shooter.StatePaused {
		t.Fatalf("expected paused, got %v", m.Session().State())
	}
	m.View()
	if !strings.Contains(m.screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	m, _ = update(t, m, runeKey('p'))
	if m.Session().State() != shooter.StatePlaying {
		t.Errorf("expected playing after second pause, got %v", m.Session().State())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("expected quitting")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelScoreBoardFromHome(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore(shooter.GameID, 12)
	store.SetHighScore(shooter.GameID, 12)

	m := newTestModel(t, store)
	if m.Session().HighScore() != 12 {
		t.Fatalf("high score not loaded from store: %d", m.Session().HighScore())
	}

	m, _ = update(t, m, runeKey('s'))
	if m.board == nil {
		t.Fatal("score board should be open")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("score board view missing title")
	}

	m, cmd := update(t, m, runeKey('b'))
	if m.board != nil {
		t.Error("score board should be closed after back")
	}
	if cmd != nil {
		t.Error("back should not quit the program")
	}
}

func TestModelScoresIgnoredWhilePlaying(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, runeKey('s'))
	if m.board != nil {
		t.Error("score board must not open during a run")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 11})
	if m.Session().State() != shooter.StatePlaying {
		t.Error("resize should not end the run")
	}
	if w, h := m.surface.Size(); w != 400 || h != 200 {
		t.Errorf("viewport after resize = %v,%v, want 400,200", w, h)
	}

	m, _ = m.handleTick(time.Unix(1000, 0))
	p := m.Session().World().Player
	if p.X+p.W > 400 {
		t.Errorf("paddle not re-clamped: x=%v", p.X)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m := NewModel(ModelConfig{
		Shooter:       config.DefaultShooterConfig(),
		Runtime:       core.RuntimeConfig{TickRate: 60, Seed: 1},
		Width:         80,
		Height:        24,
		ScreenshotDir: dir,
	})

	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlS}, now)

	data, err := os.ReadFile(filepath.Join(dir, "shapefall_20240506_070809.txt"))
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "HIGH SCORE: 0") {
		t.Errorf("screenshot missing home panel:\n%s", text)
	}
	if lines := strings.Count(text, "\n") + 1; lines != 23 {
		t.Errorf("screenshot has %d rows, want 23", lines)
	}
	if m.Session().State() != shooter.StateHome {
		t.Error("screenshot key should not change the session")
	}
}

func TestModelScreenshotDisabledWithoutDir(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlS}, time.Now())
	if cmd != nil || m.quitting {
		t.Error("ctrl+s without a directory should do nothing")
	}
}
