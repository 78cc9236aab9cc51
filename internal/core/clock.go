package core

import "time"

// FrameClock measures the elapsed time between host ticks in milliseconds.
// The first Advance returns 0 and every result is clamped to [0, maxDelta].
type FrameClock struct {
	last     time.Time
	maxDelta float64
}

// NewFrameClock creates a clock that never reports more than maxDeltaMs.
func NewFrameClock(maxDeltaMs float64) *FrameClock {
	return &FrameClock{maxDelta: maxDeltaMs}
}

// Advance records now as the current frame time and returns the delta since
// the previous frame.
func (c *FrameClock) Advance(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := float64(now.Sub(c.last)) / float64(time.Millisecond)
	c.last = now
	return ClampF(delta, 0, c.maxDelta)
}

// Reset forgets the previous frame, so the next Advance returns 0.
// Hosts call this after a pause so the gap is not replayed.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
