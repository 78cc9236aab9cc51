package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/shapefall/internal/core"
	"github.com/vovakirdan/shapefall/internal/shooter"
)

// Fill runes for projected rectangles.
const (
	blockRune = '█'
	barRune   = '│'
)

// CellSurface projects the pixel-space renderer onto a cell screen.
// Each cell covers CellW x CellH viewport units. It is also the session's
// Viewport, so the playfield follows the terminal size.
type CellSurface struct {
	screen *core.Screen
	cellW  float64
	cellH  float64

	RectColor core.Color
	BarColor  core.Color
	TextColor core.Color
}

// NewCellSurface creates a surface over screen with the given cell size.
func NewCellSurface(screen *core.Screen, cellW, cellH float64) *CellSurface {
	return &CellSurface{
		screen:    screen,
		cellW:     cellW,
		cellH:     cellH,
		RectColor: core.ColorBrightGreen,
		BarColor:  core.ColorYellow,
		TextColor: core.ColorWhite,
	}
}

// Size implements shooter.Viewport.
func (s *CellSurface) Size() (float64, float64) {
	return float64(s.screen.Width()) * s.cellW, float64(s.screen.Height()) * s.cellH
}

// Clear implements shooter.Surface.
func (s *CellSurface) Clear() {
	s.screen.Clear()
}

// FillRect implements shooter.Surface. Every cell the rectangle touches is
// filled; rectangles narrower than half a cell draw as a thin bar.
func (s *CellSurface) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	c0 := int(math.Floor(x / s.cellW))
	c1 := int(math.Ceil((x + w) / s.cellW))
	r0 := int(math.Floor(y / s.cellH))
	r1 := int(math.Ceil((y + h) / s.cellH))

	fill, color := blockRune, s.RectColor
	if w < s.cellW/2 {
		fill, color = barRune, s.BarColor
	}
	s.screen.FillCells(c0, r0, c1-c0, r1-r0, fill, color)
}

// FillText implements shooter.Surface.
func (s *CellSurface) FillText(text string, x, y float64, align shooter.Align, baseline shooter.Baseline) {
	col := int(math.Floor(x / s.cellW))
	n := utf8.RuneCountInString(text)
	switch align {
	case shooter.AlignCenter:
		col -= n / 2
	case shooter.AlignRight:
		col -= n
	}

	row := int(math.Floor(y / s.cellH))
	if baseline == shooter.BaselineBottom {
		row = int(math.Ceil(y/s.cellH)) - 1
	}
	s.screen.DrawText(col, row, text, s.TextColor)
}
