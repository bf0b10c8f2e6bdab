package systems

import (
	"testing"

	"github.com/bdore/slate2d/components"
	cfg "github.com/bdore/slate2d/config"
	"github.com/stretchr/testify/assert"
)

func TestJustPressedFiresOncePerPress(t *testing.T) {
	var latch bool

	assert.True(t, JustPressed(&latch, true), "first frame of a press fires")
	assert.False(t, JustPressed(&latch, true), "held press does not fire again")
	assert.False(t, JustPressed(&latch, true))
	assert.False(t, JustPressed(&latch, false), "release never fires")
	assert.True(t, JustPressed(&latch, true), "next press fires again")
}

func TestJustPressedAnalogThreshold(t *testing.T) {
	var latch bool

	assert.False(t, JustPressedAnalog(&latch, 0.4, 0.5), "below threshold is not a press")
	assert.True(t, JustPressedAnalog(&latch, 0.6, 0.5))
	assert.False(t, JustPressedAnalog(&latch, 0.9, 0.5), "sustained deflection is one press")
	assert.False(t, JustPressedAnalog(&latch, 0.1, 0.5), "returning to center resets")
	assert.True(t, JustPressedAnalog(&latch, -0.7, 0.5), "magnitude counts, sign does not")
}

func TestApplyFrameEdgeDerivation(t *testing.T) {
	in := &components.InputData{}

	frame := Frame{}
	frame.Actions[cfg.ActionMenuSelect] = true
	ApplyFrame(in, &frame)

	act := GetAction(in, cfg.ActionMenuSelect)
	assert.True(t, act.Pressed)
	assert.True(t, act.JustPressed)
	assert.False(t, act.JustReleased)

	ApplyFrame(in, &frame)
	act = GetAction(in, cfg.ActionMenuSelect)
	assert.True(t, act.Pressed)
	assert.False(t, act.JustPressed, "holding does not re-trigger")

	ApplyFrame(in, &Frame{})
	act = GetAction(in, cfg.ActionMenuSelect)
	assert.False(t, act.Pressed)
	assert.True(t, act.JustReleased)
}

func TestApplyFrameStickMergesIntoMovement(t *testing.T) {
	in := &components.InputData{}

	ApplyFrame(in, &Frame{StickX: 0.1, StickY: -0.1})
	assert.False(t, GetAction(in, cfg.ActionMoveRight).Pressed, "inside deadzone is ignored")
	assert.False(t, GetAction(in, cfg.ActionMoveUp).Pressed)

	ApplyFrame(in, &Frame{StickX: 0.3, StickY: -0.9})
	assert.True(t, GetAction(in, cfg.ActionMoveRight).Pressed)
	assert.True(t, GetAction(in, cfg.ActionMoveUp).Pressed)
	assert.False(t, GetAction(in, cfg.ActionMoveLeft).Pressed)
	assert.False(t, GetAction(in, cfg.ActionMoveDown).Pressed)
}

func TestApplyFrameStickNavIsOneShot(t *testing.T) {
	in := &components.InputData{}

	held := Frame{StickY: 0.8}
	ApplyFrame(in, &held)
	assert.True(t, in.StickNav.Down)

	ApplyFrame(in, &held)
	assert.False(t, in.StickNav.Down, "held deflection fires a single notch")

	ApplyFrame(in, &Frame{})
	ApplyFrame(in, &held)
	assert.True(t, in.StickNav.Down, "recentering re-arms the notch")
}

func TestModeArbitration(t *testing.T) {
	t.Run("controller activity switches to controller", func(t *testing.T) {
		in := &components.InputData{Mode: components.ModePointerKeyboard, CursorVisible: true}

		ApplyFrame(in, &Frame{ControllerPresent: true, StickX: 0.9})
		assert.Equal(t, components.ModeController, in.Mode)
		assert.False(t, in.CursorVisible)
	})

	t.Run("pointer and keyboard win simultaneous frames", func(t *testing.T) {
		in := &components.InputData{Mode: components.ModeController}

		ApplyFrame(in, &Frame{ControllerPresent: true, GamepadActive: true, KeyPressed: true})
		assert.Equal(t, components.ModePointerKeyboard, in.Mode)
		assert.True(t, in.CursorVisible)
	})

	t.Run("no activity holds the previous mode", func(t *testing.T) {
		in := &components.InputData{Mode: components.ModeController}

		ApplyFrame(in, &Frame{ControllerPresent: true})
		assert.Equal(t, components.ModeController, in.Mode)

		in.Mode = components.ModePointerKeyboard
		in.CursorVisible = true
		ApplyFrame(in, &Frame{ControllerPresent: true})
		assert.Equal(t, components.ModePointerKeyboard, in.Mode)
	})

	t.Run("mouse motion restores the cursor and pointer navigation", func(t *testing.T) {
		in := &components.InputData{Mode: components.ModeController, DiscreteNav: true}

		ApplyFrame(in, &Frame{MouseX: 5, MouseY: 5})
		assert.Equal(t, components.ModePointerKeyboard, in.Mode)
		assert.True(t, in.CursorVisible)
		assert.False(t, in.DiscreteNav)
	})

	t.Run("discrete navigation hides the cursor", func(t *testing.T) {
		in := &components.InputData{Mode: components.ModePointerKeyboard, CursorVisible: true, DiscreteNav: true}

		ApplyFrame(in, &Frame{})
		assert.False(t, in.CursorVisible)
	})
}
