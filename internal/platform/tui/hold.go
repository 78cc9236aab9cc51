package tui

import (
	"time"

	"github.com/vovakirdan/shapefall/internal/core"
)

// Terminals report key presses and auto-repeats but never releases.
// KeyHold turns that stream back into press/release pairs: a key counts as
// held until no repeat has arrived within the grace window.
const (
	// DefaultHoldInitial covers the pause before the terminal starts repeating.
	DefaultHoldInitial = 260 * time.Millisecond
	// DefaultHoldRepeat is the grace between consecutive auto-repeats.
	DefaultHoldRepeat = 120 * time.Millisecond
)

// holdable lists the actions KeyHold tracks, in release order.
var holdable = []core.Action{core.ActionLeft, core.ActionRight, core.ActionFire}

// KeyHold emulates key-up events for a terminal.
type KeyHold struct {
	initial  time.Duration
	repeat   time.Duration
	deadline map[core.Action]time.Time
}

// NewKeyHold creates a KeyHold with the given grace windows.
func NewKeyHold(initial, repeat time.Duration) *KeyHold {
	return &KeyHold{
		initial:  initial,
		repeat:   repeat,
		deadline: make(map[core.Action]time.Time),
	}
}

// IsHoldable reports whether an action is tracked as a held key.
func IsHoldable(a core.Action) bool {
	for _, h := range holdable {
		if h == a {
			return true
		}
	}
	return false
}

// Press records a key press at now. It returns the press event when the key
// was not already held, and a release of the opposite direction if that
// one was held.
func (k *KeyHold) Press(a core.Action, now time.Time) []core.InputEvent {
	if !IsHoldable(a) {
		return []core.InputEvent{core.Press(a)}
	}

	var events []core.InputEvent
	if opp := opposite(a); opp != core.ActionNone {
		if _, ok := k.deadline[opp]; ok {
			delete(k.deadline, opp)
			events = append(events, core.Release(opp))
		}
	}

	if _, ok := k.deadline[a]; ok {
		k.deadline[a] = now.Add(k.repeat)
		return events
	}
	k.deadline[a] = now.Add(k.initial)
	return append(events, core.Press(a))
}

// Expire releases every key whose grace window ended before now.
func (k *KeyHold) Expire(now time.Time) []core.InputEvent {
	var events []core.InputEvent
	for _, a := range holdable {
		d, ok := k.deadline[a]
		if ok && now.After(d) {
			delete(k.deadline, a)
			events = append(events, core.Release(a))
		}
	}
	return events
}

// ReleaseAll releases every held key.
func (k *KeyHold) ReleaseAll() []core.InputEvent {
	var events []core.InputEvent
	for _, a := range holdable {
		if _, ok := k.deadline[a]; ok {
			delete(k.deadline, a)
			events = append(events, core.Release(a))
		}
	}
	return events
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
