package components

import (
	cfg "github.com/bdore/slate2d/config"
	"github.com/yohamta/donburi"
)

// InputMode represents the device family currently driving the application
type InputMode int

const (
	ModePointerKeyboard InputMode = iota
	ModeController
)

// String returns the display name of the input mode
func (m InputMode) String() string {
	if m == ModeController {
		return "Controller"
	}
	return "Keyboard/Mouse"
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// DirEdges holds one flag per stick direction. Used both as persistent
// edge-latch state and as the per-frame one-shot result derived from it.
type DirEdges struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// InputData stores the per-frame input state for the whole application:
// action buffers for edge derivation, the arbitrated input mode, and the
// pointer/discrete-navigation bookkeeping that drives cursor visibility.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	// Left stick, deadzone not applied. Range [-1, 1] per axis.
	StickX float64
	StickY float64

	// One-shot stick-as-dpad presses for this frame, and the latches
	// they are derived from.
	StickNav   DirEdges
	StickLatch DirEdges

	Mode InputMode

	// True while the user navigates menus with keys/buttons rather than
	// the pointer. Cleared by pointer motion or a click on a menu item.
	DiscreteNav bool

	CursorVisible bool

	// Pointer state for hover tests and click activation.
	MouseX     int
	MouseY     int
	MouseClick bool // left button just pressed this frame
}

var Input = donburi.NewComponentType[InputData]()
