package shooter

import (
	"slices"

	"github.com/vovakirdan/shapefall/internal/core"
)

// Player is the paddle at the bottom of the viewport.
type Player struct {
	X, Y           float64
	W, H           float64
	FireCooldownMs float64 // Counts down to 0; firing is allowed only at 0
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Bullet is a projectile travelling upward at a constant speed.
type Bullet struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Rect returns the bullet's bounding box.
func (b Bullet) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Shape is a falling square with a speed sampled at spawn time.
type Shape struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Rect returns the shape's bounding box.
func (s Shape) Rect() core.Rect {
	return core.NewRect(s.X, s.Y, s.Size, s.Size)
}

// World holds every entity of a session. Bullets and shapes are kept in
// creation order, oldest first.
type World struct {
	Player  Player
	Bullets []Bullet
	Shapes  []Shape
}

// clear drops all bullets and shapes but keeps the backing arrays.
func (w *World) clear() {
	w.Bullets = w.Bullets[:0]
	w.Shapes = w.Shapes[:0]
}

func (w *World) removeBullet(i int) {
	w.Bullets = slices.Delete(w.Bullets, i, i+1)
}

func (w *World) removeShape(i int) {
	w.Shapes = slices.Delete(w.Shapes, i, i+1)
}

// pruneBullets removes bullets whose bottom edge has passed above y=0.
func (w *World) pruneBullets() {
	w.Bullets = slices.DeleteFunc(w.Bullets, func(b Bullet) bool {
		return b.Rect().Bottom() < 0
	})
}
