package components

import "github.com/yohamta/donburi"

// MenuAction identifies what activating a menu item does. Dispatch is a
// switch over this closed set rather than a label comparison.
type MenuAction int

const (
	MenuStartGame MenuAction = iota
	MenuOpenSettings
	MenuSaveGame
	MenuExit
	MenuAdjustVolume
	MenuToggleFullscreen
	MenuBackToMenu
	MenuResume
	MenuMainMenu
)

// Rect is an axis-aligned rectangle in window pixel space
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point (px, py) lies inside the rectangle
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// MenuItem is one selectable row of a menu. Bounds are absolute pixels,
// rebuilt from fractional layout rules when the window size changes.
// Hovered and Selected are recomputed every frame; at most one item of a
// menu carries either flag, and Hovered is never set in controller mode.
type MenuItem struct {
	Label    string
	Action   MenuAction
	Bounds   Rect
	Hovered  bool
	Selected bool
}

// MenuData stores one menu's items and the discrete-navigation cursor
type MenuData struct {
	Items         []MenuItem
	SelectedIndex int
}

// MenusData is the singleton holding every menu of the application
type MenusData struct {
	Main     MenuData
	Settings MenuData
	Pause    MenuData
}

var Menus = donburi.NewComponentType[MenusData]()

// ByState returns the menu shown in the given application state, or nil
// for states without a menu.
func (m *MenusData) ByState(s AppState) *MenuData {
	switch s {
	case StateMenu:
		return &m.Main
	case StateSettings:
		return &m.Settings
	case StatePaused:
		return &m.Pause
	}
	return nil
}
