package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/shapefall/internal/core"
)

// KeySource reports keyboard state per action for the current frame.
type KeySource interface {
	Pressed(a core.Action) bool
	JustPressed(a core.Action) bool
	JustReleased(a core.Action) bool
}

// bindings maps each action to its physical keys.
var bindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionFire:  {ebiten.KeySpace},
	core.ActionPause: {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionStart: {ebiten.KeyEnter},
	core.ActionQuit:  {ebiten.KeyQ},
}

// ebitenKeys polls ebiten's keyboard state.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(a core.Action) bool {
	for _, k := range bindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (ebitenKeys) JustPressed(a core.Action) bool {
	for _, k := range bindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (ebitenKeys) JustReleased(a core.Action) bool {
	for _, k := range bindings[a] {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}
