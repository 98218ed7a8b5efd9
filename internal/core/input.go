// Package core provides platform-level types shared by the terminal front end
// and the game: the screen buffer, input frames and runtime configuration.
// It has no external dependencies (especially no Bubble Tea) so game logic
// stays pure and testable.
package core

// Action is a logical input, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - run left / move along ladders
	ActionRight          // Right arrow, D, L - run right
	ActionUp             // Up arrow, W, K - climb up
	ActionDown           // Down arrow, S, J - climb down
	ActionJump           // Space, Z - jump
	ActionDebug          // F3, ` - toggle the debug overlay
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - restart the current level
	ActionNext           // N, Enter - continue to the next level after completion
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionDebug:
		return "Debug"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionNext:
		return "Next"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction converts a lower-case action name back to an Action.
// Used by input scripts.
func ParseAction(name string) (Action, bool) {
	switch name {
	case "left":
		return ActionLeft, true
	case "right":
		return ActionRight, true
	case "up":
		return ActionUp, true
	case "down":
		return ActionDown, true
	case "jump":
		return ActionJump, true
	case "debug":
		return ActionDebug, true
	case "pause":
		return ActionPause, true
	case "restart":
		return ActionRestart, true
	case "next":
		return ActionNext, true
	case "quit":
		return ActionQuit, true
	}
	return ActionNone, false
}

// InputFrame is the snapshot of actions held during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds an input frame with the given actions held.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
