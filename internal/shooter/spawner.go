package shooter

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/shapefall/internal/config"
)

// Spawner creates falling shapes at random positions and speeds.
type Spawner struct {
	rng *rand.Rand
	cfg config.ShapeConfig
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.ShapeConfig) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Spawn returns a new shape just above the top edge of a viewport of the
// given width.
func (sp *Spawner) Spawn(viewportW float64) Shape {
	maxX := math.Max(0, viewportW-sp.cfg.Size)
	return Shape{
		X:     sp.rng.Float64() * maxX,
		Y:     -sp.cfg.Size,
		Size:  sp.cfg.Size,
		Speed: sp.cfg.MinSpeed + sp.rng.Float64()*(sp.cfg.MaxSpeed-sp.cfg.MinSpeed),
	}
}
