package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // A, Left arrow
	ActionMoveRight        // D, Right arrow
	ActionShoot            // Space, W, Up arrow
	ActionPause            // Esc, P - pause while playing, close the pause menu
	ActionQuit             // Q - leave the game from a menu
	ActionConfirm          // Enter - activate the default menu entry
	ActionRestart          // R - new run after a win or loss
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionShoot:
		return "Shoot"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Input is the per-frame view of the player's controls.
// Held reports an action that is currently down; JustPressed reports an
// action that went down since the previous frame. Reset forgets every fact,
// so a key that is still physically down is not replayed as a fresh press.
type Input interface {
	Held(a Action) bool
	JustPressed(a Action) bool
	Reset()
}

// InputFrame is a plain Input value whose facts are set explicitly.
// Tests and scripted runs use it in place of a keyboard.
type InputFrame struct {
	held    map[Action]bool
	pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Press marks an action as both just pressed and held.
func (f *InputFrame) Press(a Action) {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	f.pressed[a] = true
	f.Hold(a)
}

// Release clears an action entirely.
func (f *InputFrame) Release(a Action) {
	delete(f.held, a)
	delete(f.pressed, a)
}

// Held implements Input.
func (f *InputFrame) Held(a Action) bool {
	return f.held[a]
}

// JustPressed implements Input.
func (f *InputFrame) JustPressed(a Action) bool {
	return f.pressed[a]
}

// Reset implements Input.
func (f *InputFrame) Reset() {
	clear(f.held)
	clear(f.pressed)
}

// EndFrame drops the edge-triggered facts, keeping held actions for the next frame.
func (f *InputFrame) EndFrame() {
	clear(f.pressed)
}

// Clone creates a copy of this input frame.
func (f *InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.held {
		clone.held[k] = v
	}
	for k, v := range f.pressed {
		clone.pressed[k] = v
	}
	return clone
}

var _ Input = (*InputFrame)(nil)
