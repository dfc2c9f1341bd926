package core

// Action represents a semantic puzzle action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, K, Up arrow - move cursor up
	ActionDown              // S, J, Down arrow - move cursor down
	ActionLeft              // A, H, Left arrow - move cursor left
	ActionRight             // D, L, Right arrow - move cursor right
	ActionSelect            // Space - select the cell under the cursor
	ActionCheck             // Enter - check the current selection
	ActionToggleMode        // Tab - switch between drag and manual mode
	ActionCancel            // Esc - discard the current selection
	ActionNewPuzzle         // N - generate a new grid
	ActionHelp              // ? - toggle full help
	ActionBack              // B - back to the preset menu
	ActionQuit              // Q, Ctrl+C - exit
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
	case ActionSelect:
		return "Select"
	case ActionCheck:
		return "Check"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionCancel:
		return "Cancel"
	case ActionNewPuzzle:
		return "NewPuzzle"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the cursor movement for a directional action.
func (a Action) Delta() (dr, dc int) {
	switch a {
	case ActionUp:
		return -1, 0
	case ActionDown:
		return 1, 0
	case ActionLeft:
		return 0, -1
	case ActionRight:
		return 0, 1
	default:
		return 0, 0
	}
}
