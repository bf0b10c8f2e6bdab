package systems

import (
	"github.com/bdore/slate2d/components"
	cfg "github.com/bdore/slate2d/config"
)

// Activation is the result of the user triggering a menu item this
// frame, either by pointer click or by discrete confirm. The two paths
// are mutually exclusive within a single frame.
type Activation struct {
	Index      int
	Action     components.MenuAction
	ViaPointer bool
}

// navigateMenu runs one frame of navigation over a menu and returns the
// activation, if any. It re-wraps a stale selection index, recomputes
// the Hovered/Selected flags from scratch, and keeps pointer and
// discrete navigation in separate branches.
func navigateMenu(in *components.InputData, menu *components.MenuData) *Activation {
	n := len(menu.Items)
	if n == 0 {
		return nil
	}

	// Item lists can shrink between frames (menus differ in length), so
	// the cursor is normalized before anything reads it.
	menu.SelectedIndex = ((menu.SelectedIndex % n) + n) % n

	for i := range menu.Items {
		menu.Items[i].Hovered = false
		menu.Items[i].Selected = false
	}

	if in.Mode == components.ModeController {
		step := 0
		if GetAction(in, cfg.ActionMenuUp).JustPressed || in.StickNav.Up {
			step--
		}
		if GetAction(in, cfg.ActionMenuDown).JustPressed || in.StickNav.Down {
			step++
		}
		menu.SelectedIndex = (menu.SelectedIndex + step + n) % n
		menu.Items[menu.SelectedIndex].Selected = true

		if GetAction(in, cfg.ActionMenuSelect).JustPressed {
			return &Activation{
				Index:  menu.SelectedIndex,
				Action: menu.Items[menu.SelectedIndex].Action,
			}
		}
		return nil
	}

	step := 0
	if GetAction(in, cfg.ActionMenuUp).JustPressed {
		step--
	}
	if GetAction(in, cfg.ActionMenuDown).JustPressed {
		step++
	}
	// Any discrete key, confirm included, takes navigation away from the
	// pointer for this frame onward.
	if step != 0 || GetAction(in, cfg.ActionMenuSelect).JustPressed {
		in.DiscreteNav = true
	}

	if !in.DiscreteNav {
		mx, my := float64(in.MouseX), float64(in.MouseY)
		for i := range menu.Items {
			if !menu.Items[i].Bounds.Contains(mx, my) {
				continue
			}
			menu.Items[i].Hovered = true
			menu.SelectedIndex = i
			if in.MouseClick {
				return &Activation{
					Index:      i,
					Action:     menu.Items[i].Action,
					ViaPointer: true,
				}
			}
			break
		}
		return nil
	}

	menu.SelectedIndex = (menu.SelectedIndex + step + n) % n
	menu.Items[menu.SelectedIndex].Selected = true

	if GetAction(in, cfg.ActionMenuSelect).JustPressed {
		return &Activation{
			Index:  menu.SelectedIndex,
			Action: menu.Items[menu.SelectedIndex].Action,
		}
	}
	return nil
}

// volumeIndex returns the position of the volume row in a menu, or -1
func volumeIndex(menu *components.MenuData) int {
	for i := range menu.Items {
		if menu.Items[i].Action == components.MenuAdjustVolume {
			return i
		}
	}
	return -1
}

// volumeDelta returns the volume adjustment requested this frame:
// one step left/right while the volume row is the current selection
// (hovered or cursor-selected), or a click on its minus/plus boxes in
// pointer navigation.
func volumeDelta(in *components.InputData, menu *components.MenuData) float64 {
	idx := volumeIndex(menu)
	if idx < 0 {
		return 0
	}

	var delta float64
	if menu.SelectedIndex == idx {
		if GetAction(in, cfg.ActionMenuLeft).JustPressed || in.StickNav.Left {
			delta -= cfg.VolumeStep
		}
		if GetAction(in, cfg.ActionMenuRight).JustPressed || in.StickNav.Right {
			delta += cfg.VolumeStep
		}
	}

	if in.Mode == components.ModePointerKeyboard && !in.DiscreteNav && in.MouseClick {
		minus, plus := VolumeBoxes(menu.Items[idx].Bounds)
		mx, my := float64(in.MouseX), float64(in.MouseY)
		if minus.Contains(mx, my) {
			delta -= cfg.VolumeStep
		}
		if plus.Contains(mx, my) {
			delta += cfg.VolumeStep
		}
	}
	return delta
}
