package systems

import (
	"log"

	"github.com/bdore/slate2d/components"
	cfg "github.com/bdore/slate2d/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession advances the application state machine: per-state menu
// navigation and hotkeys, the fullscreen resize settle countdown, and
// the save popup fade.
func UpdateSession(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	input := GetOrCreateInput(e)
	menus := GetOrCreateMenus(e)

	// Window managers apply fullscreen changes asynchronously; keep
	// reasserting the windowed size until the countdown runs out, then
	// place the player back from the saved fractions.
	if session.PendingResizeFrames > 0 {
		if !ebiten.IsFullscreen() {
			ebiten.SetWindowSize(cfg.Window.WindowedWidth, cfg.Window.WindowedHeight)
		}
		session.PendingResizeFrames--
		if session.PendingResizeFrames == 0 {
			session.ForceLayout = true
			restorePlayerPosition(session)
		}
	}

	session.Popup.Advance(1.0 / float64(ebiten.TPS()))

	switch session.State {
	case components.StateMenu:
		if act := navigateMenu(input, &menus.Main); act != nil {
			dispatch(session, input, menus, act)
		}

	case components.StateSettings:
		if delta := volumeDelta(input, &menus.Settings); delta != 0 {
			adjustVolume(session, delta)
		}
		if act := navigateMenu(input, &menus.Settings); act != nil {
			dispatch(session, input, menus, act)
		} else if GetAction(input, cfg.ActionMenuBack).JustPressed {
			closeSettings(session)
		}

	case components.StatePlaying:
		if GetAction(input, cfg.ActionPause).JustPressed {
			session.State = components.StatePaused
			menus.Pause.SelectedIndex = 0
		}

	case components.StatePaused:
		if act := navigateMenu(input, &menus.Pause); act != nil {
			dispatch(session, input, menus, act)
			break
		}
		// ToMenu first: the controller back button maps to both it and
		// MenuBack, and leaving to the menu is the stronger intent.
		if GetAction(input, cfg.ActionToMenu).JustPressed {
			saveGame(session, input, false)
			session.State = components.StateMenu
		} else if GetAction(input, cfg.ActionPause).JustPressed ||
			GetAction(input, cfg.ActionMenuBack).JustPressed {
			session.State = components.StatePlaying
		}
	}
}

// dispatch executes an activated menu item
func dispatch(session *components.SessionData, input *components.InputData, menus *components.MenusData, act *Activation) {
	playClick()

	switch act.Action {
	case components.MenuStartGame:
		session.State = components.StatePlaying
		restorePlayerPosition(session)

	case components.MenuOpenSettings:
		session.State = components.StateSettings
		menus.Settings.SelectedIndex = 0

	case components.MenuSaveGame:
		saveGame(session, input, true)

	case components.MenuExit:
		saveGame(session, input, false)
		session.ShouldExit = true

	case components.MenuAdjustVolume:
		// Adjusted via left/right and the +/- boxes, not by activation

	case components.MenuToggleFullscreen:
		toggleFullscreen(session)

	case components.MenuBackToMenu:
		closeSettings(session)

	case components.MenuResume:
		session.State = components.StatePlaying

	case components.MenuMainMenu:
		saveGame(session, input, false)
		session.State = components.StateMenu
		menus.Main.SelectedIndex = 0
	}
}

// adjustVolume applies one volume change, snapped to the step grid, and
// persists it silently.
func adjustVolume(session *components.SessionData, delta float64) {
	session.Save.Volume = cfg.SnapVolume(session.Save.Volume + delta)
	SetMasterVolume(session.Save.Volume)
	playClick()
	if err := StoreSaveRecord(session.Save); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// closeSettings returns to the main menu, persisting the settings
func closeSettings(session *components.SessionData) {
	session.State = components.StateMenu
	if err := StoreSaveRecord(session.Save); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// saveGame snapshots the session into the save record and persists it.
// Player position is stored as window fractions so it survives display
// changes. showPopup controls the on-screen confirmation.
func saveGame(session *components.SessionData, input *components.InputData, showPopup bool) {
	w, h := canvasSize()
	if w > 0 && h > 0 {
		session.Save.RelX = clamp01(session.PlayerX / float64(w))
		session.Save.RelY = clamp01(session.PlayerY / float64(h))
	}
	session.Save.Fullscreen = ebiten.IsFullscreen()
	session.Save.TargetTPS = ebiten.TPS()
	session.Save.Mode = input.Mode
	session.Save.Volume = MasterVolume()

	if err := StoreSaveRecord(session.Save); err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	if showPopup {
		session.Popup.Show()
	}
}

// toggleFullscreen flips display modes. The player's fractional position
// is captured first and restored once the resize settles.
func toggleFullscreen(session *components.SessionData) {
	w, h := canvasSize()
	if w > 0 && h > 0 {
		session.Save.RelX = clamp01(session.PlayerX / float64(w))
		session.Save.RelY = clamp01(session.PlayerY / float64(h))
	}

	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		ebiten.SetWindowSize(cfg.Window.WindowedWidth, cfg.Window.WindowedHeight)
	}
	session.Save.Fullscreen = fullscreen
	session.PendingResizeFrames = cfg.Window.ResizeSettleFrames
	session.ForceLayout = true
}

// restorePlayerPosition places the player from the saved fractions at
// the current window size.
func restorePlayerPosition(session *components.SessionData) {
	w, h := canvasSize()
	placePlayerFromRecord(session, w, h)
}

// placePlayerFromRecord converts the saved fractional position back to
// pixels, clamped so the player stays fully on screen.
func placePlayerFromRecord(session *components.SessionData, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	size := float64(w) * cfg.Player.SizeFrac
	session.PlayerX = clampF(session.Save.RelX*float64(w), 0, float64(w)-size)
	session.PlayerY = clampF(session.Save.RelY*float64(h), 0, float64(h)-size)
}

func clamp01(v float64) float64 {
	return clampF(v, 0, 1)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SaveSession persists the current session without showing the popup.
// Used for the final save when the window closes.
func SaveSession(e *ecs.ECS) {
	saveGame(GetOrCreateSession(e), GetOrCreateInput(e), false)
}

// GetOrCreateSession returns the singleton Session component, creating
// it in the menu state with default save values if needed.
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	if _, ok := components.Session.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Session))
		components.Session.SetValue(ent, components.SessionData{
			State:       components.StateMenu,
			Save:        components.DefaultSaveRecord(),
			ForceLayout: true,
		})
	}

	ent, _ := components.Session.First(e.World)
	return components.Session.Get(ent)
}
