package shooter

// Viewport reports the current drawable size in viewport units.
// The size may change between ticks; the session re-reads it every tick.
type Viewport interface {
	Size() (w, h float64)
}

// Align is the horizontal anchor of a text draw call.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Baseline is the vertical anchor of a text draw call.
type Baseline int

const (
	BaselineTop Baseline = iota
	BaselineMiddle
	BaselineBottom
)

// Surface is the drawing capability the renderer needs.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64)
	FillText(text string, x, y float64, align Align, baseline Baseline)
}

// HighScoreStore persists the single high-score scalar.
type HighScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// RunRecorder receives the final score of every run that scored.
type RunRecorder interface {
	RecordRun(score int) error
}
