package components

import (
	cfg "github.com/bdore/slate2d/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// AppState represents the top-level application state
type AppState int

const (
	StateMenu AppState = iota
	StatePlaying
	StateSettings
	StatePaused
)

// String returns the string representation of the application state
func (s AppState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateSettings:
		return "Settings"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// SaveRecord is the persisted state. Player position is stored as a
// fraction of the window size so it survives resolution changes.
type SaveRecord struct {
	RelX       float64 // [0, 1]
	RelY       float64 // [0, 1]
	Fullscreen bool
	TargetTPS  int
	Mode       InputMode
	Volume     float64 // [0, 1]
}

// DefaultSaveRecord returns the record used when nothing was persisted
// yet or the stored record cannot be read.
func DefaultSaveRecord() SaveRecord {
	return SaveRecord{
		RelX:       cfg.Settings.DefaultRelX,
		RelY:       cfg.Settings.DefaultRelY,
		Fullscreen: cfg.Settings.DefaultFullscreen,
		TargetTPS:  cfg.Settings.DefaultTPS,
		Mode:       ModePointerKeyboard,
		Volume:     cfg.Settings.DefaultVolume,
	}
}

// PopupData is the transient "Game Saved!" confirmation. Alpha fades out
// over the popup duration via a tween.
type PopupData struct {
	Visible bool
	Alpha   float64
	fade    *gween.Tween
}

// Show restarts the popup fade
func (p *PopupData) Show() {
	p.Visible = true
	p.Alpha = 1
	p.fade = gween.New(1, 0, float32(cfg.Popup.DurationSeconds), ease.Linear)
}

// Advance steps the fade by dt seconds and hides the popup when done
func (p *PopupData) Advance(dt float64) {
	if !p.Visible || p.fade == nil {
		return
	}
	alpha, done := p.fade.Update(float32(dt))
	p.Alpha = float64(alpha)
	if done {
		p.Visible = false
		p.fade = nil
	}
}

// SessionData is the singleton owning all mutable application state:
// the current top-level state, the player, the in-memory save record and
// the window bookkeeping used for layout recomputation.
type SessionData struct {
	State AppState

	// Player position in window pixels (top-left corner)
	PlayerX float64
	PlayerY float64

	Save       SaveRecord
	ShouldExit bool

	// Window size seen last frame; a mismatch triggers a menu rebuild
	LastWindowW int
	LastWindowH int
	ForceLayout bool

	// Countdown reasserting the window size after a fullscreen toggle
	PendingResizeFrames int

	Popup PopupData
}

var Session = donburi.NewComponentType[SessionData]()
