package core

// Action is a semantic player intent, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - move cursor left
	ActionRight          // D, L, Right arrow - move cursor right
	ActionFlip           // Space, Enter - flip the card under the cursor
	ActionPause          // P - pause/unpause
	ActionRestart        // R - reshuffle and restart at the same difficulty
	ActionBack           // B, Escape - leave the board
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFlip:
		return "Flip"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the cursor step for a movement action.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	}
	return 0, 0
}
