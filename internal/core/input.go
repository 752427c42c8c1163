package core

// Action represents a semantic button, abstracted from physical keys.
// The handheld has two buttons (jump and crouch); front-ends map keys onto them.
type Action int

const (
	ActionNone   Action = iota
	ActionJump          // Space, Up, W - jump; also restarts after game over
	ActionCrouch        // Down, S - crouch while held
	ActionReset         // R - restart after game over
	ActionCopy          // C - copy the current frame to the clipboard
	ActionRuns          // Tab - toggle the run log panel
	ActionQuit          // Q, Ctrl+C, Esc
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionCrouch:
		return "Crouch"
	case ActionReset:
		return "Reset"
	case ActionCopy:
		return "Copy"
	case ActionRuns:
		return "Runs"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the button levels observed for one poll.
// A set action means the button is currently down.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action's button as down.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the action's button is down.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear releases every button.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Button tracks a single digital input across samples and reports
// rising edges, so holding a button produces exactly one press.
type Button struct {
	down bool
}

// Sample records the current level and returns whether it is a new press.
func (b *Button) Sample(down bool) (pressed bool) {
	pressed = down && !b.down
	b.down = down
	return pressed
}

// Down returns the last sampled level.
func (b *Button) Down() bool {
	return b.down
}

// Intents is what the simulation consumes each tick.
type Intents struct {
	Jump   bool // edge-triggered
	Crouch bool // level-triggered
	Reset  bool // edge-triggered, only meaningful during game over
}

// Sampler turns button levels into per-tick intents.
// It must be sampled exactly once per simulation tick.
type Sampler struct {
	jump  Button
	reset Button
}

// Sample converts the levels in f into intents.
// The jump button doubles as the reset button, as on the two-button handheld.
func (s *Sampler) Sample(f InputFrame) Intents {
	jumped := s.jump.Sample(f.Has(ActionJump))
	resetPressed := s.reset.Sample(f.Has(ActionReset))

	return Intents{
		Jump:   jumped,
		Crouch: f.Has(ActionCrouch),
		Reset:  jumped || resetPressed,
	}
}
