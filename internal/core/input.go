package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveUp           // W, Up arrow
	ActionMoveDown         // S, Down arrow
	ActionMoveLeft         // A, Left arrow
	ActionMoveRight        // D, Right arrow
	ActionAttack           // Space - attack toward the last pointer position
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionAttack:
		return "Attack"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Opposite returns the movement action pointing the other way,
// or ActionNone for non-movement actions.
func (a Action) Opposite() Action {
	switch a {
	case ActionMoveUp:
		return ActionMoveDown
	case ActionMoveDown:
		return ActionMoveUp
	case ActionMoveLeft:
		return ActionMoveRight
	case ActionMoveRight:
		return ActionMoveLeft
	default:
		return ActionNone
	}
}

// Pointer is the mouse state sampled for one frame, in screen cells.
type Pointer struct {
	X, Y    int
	Valid   bool // a pointer position has been reported
	Pressed bool // the primary button went down this frame
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
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

// Clear resets actions and the press edge for the next frame.
// The pointer position persists; only Pressed is an edge.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Pressed = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}

// HeldKeys turns key-press events into held states.
//
// Terminals report presses and auto-repeats but never releases, so a
// key counts as held for a fixed number of ticks after its last press.
type HeldKeys struct {
	hold      int
	remaining map[Action]int
}

// NewHeldKeys returns a latch that keeps each press alive for hold ticks.
func NewHeldKeys(hold int) *HeldKeys {
	if hold < 1 {
		hold = 1
	}
	return &HeldKeys{hold: hold, remaining: make(map[Action]int)}
}

// Press refreshes the hold window of a. Pressing a direction cancels
// the opposite one so reversing does not stall on the latch.
func (h *HeldKeys) Press(a Action) {
	if opp := a.Opposite(); opp != ActionNone {
		delete(h.remaining, opp)
	}
	h.remaining[a] = h.hold
}

// Release drops a immediately.
func (h *HeldKeys) Release(a Action) {
	delete(h.remaining, a)
}

// Apply sets every held action on f and ages the latch by one tick.
func (h *HeldKeys) Apply(f *InputFrame) {
	for a, n := range h.remaining {
		f.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
}
