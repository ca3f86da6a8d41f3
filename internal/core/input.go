package core

import "sync/atomic"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up - jump if grounded
	ActionConfirm        // Enter - dismiss the game over prompt
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
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

// JumpLatch is a "jump requested" flag shared between an input goroutine
// and the tick loop. Any number of requests between two ticks collapse into one.
type JumpLatch struct {
	pending atomic.Bool
}

// Request records a jump request. Safe to call from any goroutine.
func (l *JumpLatch) Request() {
	l.pending.Store(true)
}

// Take reports whether a jump was requested since the last Take and clears the flag.
func (l *JumpLatch) Take() bool {
	return l.pending.Swap(false)
}

// Frame drains the latch into a fresh input frame.
func (l *JumpLatch) Frame() InputFrame {
	frame := NewInputFrame()
	if l.Take() {
		frame.Set(ActionJump)
	}
	return frame
}
