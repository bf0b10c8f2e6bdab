package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical application action
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionPause
	ActionToMenu
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key and button bindings for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding

	// Deadzone for analog stick movement input (0.0 to 1.0).
	// Matches a raw threshold of 8000 on a signed 16-bit axis.
	AnalogDeadzone float64

	// Deflection past which the stick counts as a discrete
	// menu-navigation press.
	MenuNavThreshold float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone:   8000.0 / 32767.0,
		MenuNavThreshold: 0.5,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMenuRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// B / Circle and Back / Share buttons
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionToMenu: {
				Keys: []ebiten.Key{ebiten.KeyM},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
		},
	}
}
