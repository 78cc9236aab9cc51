package window

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/shapefall/internal/shooter"
)

// Debug font metrics used to anchor text.
const (
	glyphW = 6
	glyphH = 16
)

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x18, 0xff}
	fillColor       = color.RGBA{0x7c, 0xfc, 0x8c, 0xff}
)

// imageSurface draws the renderer's calls onto an ebiten image.
type imageSurface struct {
	dst *ebiten.Image
}

func (s imageSurface) Clear() {
	s.dst.Fill(backgroundColor)
}

func (s imageSurface) FillRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), fillColor, false)
}

func (s imageSurface) FillText(text string, x, y float64, align shooter.Align, baseline shooter.Baseline) {
	tx, ty := textOrigin(text, x, y, align, baseline)
	ebitenutil.DebugPrintAt(s.dst, text, tx, ty)
}

// textOrigin converts an anchored text position into the top-left corner
// DebugPrintAt expects.
func textOrigin(text string, x, y float64, align shooter.Align, baseline shooter.Baseline) (int, int) {
	w := float64(utf8.RuneCountInString(text) * glyphW)
	switch align {
	case shooter.AlignCenter:
		x -= w / 2
	case shooter.AlignRight:
		x -= w
	}
	switch baseline {
	case shooter.BaselineMiddle:
		y -= glyphH / 2
	case shooter.BaselineBottom:
		y -= glyphH
	}
	return int(x), int(y)
}
