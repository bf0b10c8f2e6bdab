package systems

import (
	"os"
	"testing"

	"github.com/bdore/slate2d/components"
	cfg "github.com/bdore/slate2d/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestMain(m *testing.M) {
	// No audio device in test runs
	playClick = func() {}
	os.Exit(m.Run())
}

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestDispatchTransitions(t *testing.T) {
	cases := []struct {
		name   string
		from   components.AppState
		action components.MenuAction
		want   components.AppState
	}{
		{"start game enters playing", components.StateMenu, components.MenuStartGame, components.StatePlaying},
		{"settings opens from menu", components.StateMenu, components.MenuOpenSettings, components.StateSettings},
		{"back returns to menu", components.StateSettings, components.MenuBackToMenu, components.StateMenu},
		{"resume returns to playing", components.StatePaused, components.MenuResume, components.StatePlaying},
		{"main menu leaves pause", components.StatePaused, components.MenuMainMenu, components.StateMenu},
		{"save keeps the current state", components.StateMenu, components.MenuSaveGame, components.StateMenu},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestECS()
			session := GetOrCreateSession(e)
			input := GetOrCreateInput(e)
			menus := GetOrCreateMenus(e)
			session.State = tc.from

			dispatch(session, input, menus, &Activation{Action: tc.action})
			assert.Equal(t, tc.want, session.State)
		})
	}
}

func TestDispatchExitFlagsTermination(t *testing.T) {
	e := newTestECS()
	session := GetOrCreateSession(e)

	dispatch(session, GetOrCreateInput(e), GetOrCreateMenus(e), &Activation{Action: components.MenuExit})
	assert.True(t, session.ShouldExit)
}

func TestOpenSettingsResetsSelection(t *testing.T) {
	e := newTestECS()
	session := GetOrCreateSession(e)
	menus := GetOrCreateMenus(e)
	menus.Settings.SelectedIndex = 2

	dispatch(session, GetOrCreateInput(e), menus, &Activation{Action: components.MenuOpenSettings})
	assert.Equal(t, 0, menus.Settings.SelectedIndex)
}

func TestPauseResumeRoundTrip(t *testing.T) {
	e := newTestECS()
	session := GetOrCreateSession(e)
	input := GetOrCreateInput(e)
	session.State = components.StatePlaying
	session.PlayerX = 240
	session.PlayerY = 180

	pressAction(input, cfg.ActionPause)
	UpdateSession(e)
	assert.Equal(t, components.StatePaused, session.State)

	// Release, then press again
	input.Previous = input.Current
	input.Current[cfg.ActionPause] = false
	UpdateSession(e)
	assert.Equal(t, components.StatePaused, session.State, "releasing the key changes nothing")

	pressAction(input, cfg.ActionPause)
	UpdateSession(e)
	assert.Equal(t, components.StatePlaying, session.State)
	assert.Equal(t, 240.0, session.PlayerX, "pausing does not move the player")
	assert.Equal(t, 180.0, session.PlayerY)
}

func TestHeldPauseKeyTogglesOnce(t *testing.T) {
	e := newTestECS()
	session := GetOrCreateSession(e)
	input := GetOrCreateInput(e)
	session.State = components.StatePlaying

	pressAction(input, cfg.ActionPause)
	UpdateSession(e)
	assert.Equal(t, components.StatePaused, session.State)

	input.Previous = input.Current
	UpdateSession(e)
	assert.Equal(t, components.StatePaused, session.State, "holding the key is one edge")
}

func TestMainMenuFromPauseSaves(t *testing.T) {
	e := newTestECS()
	session := GetOrCreateSession(e)
	session.State = components.StatePaused
	session.Save.Volume = 0.9
	SetMasterVolume(0.35)

	dispatch(session, GetOrCreateInput(e), GetOrCreateMenus(e), &Activation{Action: components.MenuMainMenu})
	assert.Equal(t, components.StateMenu, session.State)
	assert.Equal(t, 0.35, session.Save.Volume, "leaving to the menu snapshots the session")
}

func TestPausedResumesOnBackButton(t *testing.T) {
	e := newTestECS()
	session := GetOrCreateSession(e)
	input := GetOrCreateInput(e)
	session.State = components.StatePaused

	pressAction(input, cfg.ActionMenuBack)
	UpdateSession(e)
	assert.Equal(t, components.StatePlaying, session.State)
}

func TestPausedBackButtonYieldsToToMenu(t *testing.T) {
	e := newTestECS()
	session := GetOrCreateSession(e)
	input := GetOrCreateInput(e)
	session.State = components.StatePaused

	// The controller back button maps to both actions in one frame
	pressAction(input, cfg.ActionMenuBack)
	pressAction(input, cfg.ActionToMenu)
	UpdateSession(e)
	assert.Equal(t, components.StateMenu, session.State)
}

func TestPausedToMenuSaves(t *testing.T) {
	e := newTestECS()
	session := GetOrCreateSession(e)
	input := GetOrCreateInput(e)
	session.State = components.StatePaused

	pressAction(input, cfg.ActionToMenu)
	UpdateSession(e)
	assert.Equal(t, components.StateMenu, session.State)
}

func TestAdjustVolumeClampsAndSnaps(t *testing.T) {
	e := newTestECS()
	session := GetOrCreateSession(e)
	session.Save.Volume = 0.95
	SetMasterVolume(session.Save.Volume)

	adjustVolume(session, cfg.VolumeStep)
	assert.Equal(t, 1.0, session.Save.Volume)
	adjustVolume(session, cfg.VolumeStep)
	assert.Equal(t, 1.0, session.Save.Volume, "volume is capped at full")
	assert.Equal(t, 1.0, MasterVolume())

	for i := 0; i < 25; i++ {
		adjustVolume(session, -cfg.VolumeStep)
	}
	assert.Equal(t, 0.0, session.Save.Volume, "volume bottoms out at mute")
	assert.Equal(t, 0.0, MasterVolume())
}

func TestPopupFadesOutOverDuration(t *testing.T) {
	var popup components.PopupData
	popup.Show()
	assert.True(t, popup.Visible)
	assert.Equal(t, 1.0, popup.Alpha)

	popup.Advance(cfg.Popup.DurationSeconds / 2)
	assert.True(t, popup.Visible)
	assert.InDelta(t, 0.5, popup.Alpha, 0.01)

	popup.Advance(cfg.Popup.DurationSeconds)
	assert.False(t, popup.Visible)
}

func TestPlayerPlacementFromSavedFractions(t *testing.T) {
	const w, h = 1280, 720
	size := float64(w) * cfg.Player.SizeFrac

	session := &components.SessionData{}
	session.Save.RelX = 0.5
	session.Save.RelY = 0.25
	placePlayerFromRecord(session, w, h)
	assert.Equal(t, 640.0, session.PlayerX)
	assert.Equal(t, 180.0, session.PlayerY)

	// Fractions near the edge still leave the whole square visible
	session.Save.RelX = 1.0
	session.Save.RelY = 0.999
	placePlayerFromRecord(session, w, h)
	assert.Equal(t, float64(w)-size, session.PlayerX)
	assert.Equal(t, float64(h)-size, session.PlayerY)
}

func TestSessionStartsInMenuWithDefaults(t *testing.T) {
	e := newTestECS()
	session := GetOrCreateSession(e)

	assert.Equal(t, components.StateMenu, session.State)
	assert.Equal(t, components.DefaultSaveRecord(), session.Save)
	assert.False(t, session.ShouldExit)
}
