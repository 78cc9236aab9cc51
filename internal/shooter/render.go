package shooter

import "fmt"

// HUD placement in viewport units.
const (
	scoreX       = 20
	scoreY       = 30
	stateInsetX  = 140
	stateY       = 10
	gameOverLift = 20
)

// Render draws a snapshot. Call order is fixed: clear, player, bullets,
// shapes, score, state label, then the PAUSED or GAME OVER overlay.
// GAME OVER only shows on the home screen after a run that scored.
func Render(snap Snapshot, dst Surface) {
	dst.Clear()

	p := snap.Player
	dst.FillRect(p.X, p.Y, p.W, p.H)

	for _, b := range snap.Bullets {
		dst.FillRect(b.X, b.Y, b.W, b.H)
	}
	for _, sh := range snap.Shapes {
		dst.FillRect(sh.X, sh.Y, sh.Size, sh.Size)
	}

	dst.FillText(fmt.Sprintf("SCORE: %d", snap.Score), scoreX, scoreY, AlignLeft, BaselineTop)
	dst.FillText("STATE: "+snap.State.String(), snap.Width-stateInsetX, stateY, AlignLeft, BaselineTop)

	switch {
	case snap.State == StatePaused:
		dst.FillText("PAUSED", snap.Width/2, snap.Height/2, AlignCenter, BaselineMiddle)
	case snap.State == StateHome && snap.Score > 0:
		dst.FillText("GAME OVER", snap.Width/2, snap.Height/2-gameOverLift, AlignCenter, BaselineTop)
	}
}
