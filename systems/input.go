package systems

import (
	"math"

	"github.com/bdore/slate2d/components"
	cfg "github.com/bdore/slate2d/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid per-frame allocations
var gamepadIDs []ebiten.GamepadID
var pressedKeys []ebiten.Key

// Frame is one tick's raw input snapshot. Polling fills it from Ebiten;
// everything downstream operates on the snapshot only, so the arbitration
// and navigation logic runs the same way under test.
type Frame struct {
	Actions [cfg.ActionCount]bool // merged key + gamepad button levels

	StickX float64 // left stick, [-1, 1], deadzone not applied
	StickY float64

	ControllerPresent bool
	GamepadActive     bool // any bound button held this frame

	KeyPressed bool // any keyboard key went down this frame

	MouseX     int
	MouseY     int
	MouseClick bool // left button just pressed
}

// UpdateInput polls raw input, derives edges and arbitrates the input
// mode. Must run before every other system.
func UpdateInput(e *ecs.ECS) {
	input := GetOrCreateInput(e)

	prevVisible := input.CursorVisible
	frame := pollFrame()
	ApplyFrame(input, &frame)

	if input.CursorVisible != prevVisible {
		if input.CursorVisible {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		}
	}
}

// pollFrame reads the raw device state from Ebiten
func pollFrame() Frame {
	var f Frame

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				f.Actions[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					f.Actions[actionID] = true
					f.GamepadActive = true
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		f.ControllerPresent = true
		f.StickX = ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		f.StickY = ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		break
	}

	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	f.KeyPressed = len(pressedKeys) > 0

	f.MouseX, f.MouseY = ebiten.CursorPosition()
	f.MouseClick = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	return f
}

// ApplyFrame folds one raw frame into the input state: swaps the action
// buffers, merges the stick into movement and navigation actions, and
// runs the input-mode arbitration.
func ApplyFrame(in *components.InputData, f *Frame) {
	in.Previous = in.Current
	in.Current = f.Actions

	in.StickX = f.StickX
	in.StickY = f.StickY

	// Stick held past the movement deadzone counts as a held direction
	deadzone := cfg.Input.AnalogDeadzone
	if f.StickX < -deadzone {
		in.Current[cfg.ActionMoveLeft] = true
	}
	if f.StickX > deadzone {
		in.Current[cfg.ActionMoveRight] = true
	}
	if f.StickY < -deadzone {
		in.Current[cfg.ActionMoveUp] = true
	}
	if f.StickY > deadzone {
		in.Current[cfg.ActionMoveDown] = true
	}

	// Stick-as-dpad navigation fires one notch per deflection
	threshold := cfg.Input.MenuNavThreshold
	in.StickNav = components.DirEdges{
		Up:    JustPressedAnalog(&in.StickLatch.Up, -f.StickY, threshold),
		Down:  JustPressedAnalog(&in.StickLatch.Down, f.StickY, threshold),
		Left:  JustPressedAnalog(&in.StickLatch.Left, -f.StickX, threshold),
		Right: JustPressedAnalog(&in.StickLatch.Right, f.StickX, threshold),
	}

	mouseDX := f.MouseX - in.MouseX
	mouseDY := f.MouseY - in.MouseY
	mouseMoved := mouseDX != 0 || mouseDY != 0
	in.MouseX = f.MouseX
	in.MouseY = f.MouseY
	in.MouseClick = f.MouseClick

	arbitrateMode(in, f, mouseMoved)
}

// arbitrateMode picks the input mode for this frame and reconciles
// cursor visibility with it. Controller activity proposes Controller;
// pointer/keyboard activity is checked second and overwrites, so it wins
// when both fire. No activity keeps the previous mode.
func arbitrateMode(in *components.InputData, f *Frame, mouseMoved bool) {
	previousMode := in.Mode

	stickActive := math.Abs(f.StickX) > cfg.Input.AnalogDeadzone ||
		math.Abs(f.StickY) > cfg.Input.AnalogDeadzone
	if f.ControllerPresent && (f.GamepadActive || stickActive) {
		in.Mode = components.ModeController
	}
	if f.MouseClick || mouseMoved || f.KeyPressed {
		in.Mode = components.ModePointerKeyboard
	}

	if in.Mode != previousMode {
		if in.Mode == components.ModeController {
			in.CursorVisible = false
		} else {
			in.CursorVisible = true
			in.DiscreteNav = false
		}
	}

	// Within pointer/keyboard mode the cursor follows actual activity:
	// pointer motion or a click takes the cursor back, keyboard-only
	// navigation hides it.
	if in.Mode == components.ModePointerKeyboard {
		if mouseMoved || f.MouseClick {
			in.CursorVisible = true
			in.DiscreteNav = false
		} else if in.DiscreteNav {
			in.CursorVisible = false
		}
	}
}

// JustPressed reports a rising edge of level, using state as the
// per-signal latch. It fires exactly once per press: true on the first
// call where level is true, false while held, reset when released.
func JustPressed(state *bool, level bool) bool {
	if level && !*state {
		*state = true
		return true
	}
	if !level {
		*state = false
	}
	return false
}

// JustPressedAnalog derives a boolean level from an axis deflection past
// threshold, then applies the same edge logic as JustPressed. One
// sustained push yields a single navigation step.
func JustPressedAnalog(state *bool, axisValue, threshold float64) bool {
	return JustPressed(state, math.Abs(axisValue) > threshold)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// GetOrCreateInput returns the singleton Input component, creating it if
// needed. The cursor starts visible in pointer/keyboard mode.
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Input))
		components.Input.SetValue(ent, components.InputData{
			Mode:          components.ModePointerKeyboard,
			CursorVisible: true,
		})
	}

	ent, _ := components.Input.First(e.World)
	return components.Input.Get(ent)
}
