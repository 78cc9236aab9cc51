package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow, A - move left while held
	ActionRight         // Right arrow, D - move right while held
	ActionFire          // Space - fire once per press
	ActionPause         // P - pause/unpause
	ActionStart         // Enter - start a run from the home screen
	ActionScores        // S - open the score board from the home screen
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is a single key transition mapped to an action.
// Pressed is false for the release half of a key-down/key-up pair.
type InputEvent struct {
	Action  Action
	Pressed bool
}

// Press returns the key-down event for an action.
func Press(a Action) InputEvent {
	return InputEvent{Action: a, Pressed: true}
}

// Release returns the key-up event for an action.
func Release(a Action) InputEvent {
	return InputEvent{Action: a, Pressed: false}
}
