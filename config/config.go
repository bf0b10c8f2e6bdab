package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer used by all renderers.
const Default ecs.LayerID = 0

// WindowConfig contains window and display configuration values
type WindowConfig struct {
	Title          string
	WindowedWidth  int
	WindowedHeight int

	// Frames to keep reasserting the window size after a fullscreen
	// toggle, while the window manager settles.
	ResizeSettleFrames int
}

// LayoutConfig contains menu layout rules expressed as fractions of the
// current window size. Pixel bounds are recomputed whenever the window
// dimensions change.
type LayoutConfig struct {
	ButtonWidthFrac  float64 // of window width
	ButtonHeightFrac float64 // of window height
	ButtonGapFrac    float64 // of window height
	TitleYFrac       float64 // of window height
	TitleSizeFrac    float64 // of window height
	BodySizeFrac     float64 // of window height
	HintSizeFrac     float64 // of window height

	// Volume row minus/plus boxes
	VolumeBoxFrac  float64 // of button height
	VolumeBoxInset float64 // pixels from the button edge
}

// PlayerConfig contains player movement and sizing configuration
type PlayerConfig struct {
	SizeFrac  float64 // of window width
	SpeedFrac float64 // of min(window width, height), per second
}

// PopupConfig contains the save confirmation popup configuration
type PopupConfig struct {
	Text            string
	DurationSeconds float64
	Margin          float64
}

// UIConfig contains shared colors for menus and HUD
type UIConfig struct {
	BackgroundColor   color.RGBA
	ButtonColor       color.RGBA
	ButtonHoverColor  color.RGBA
	ButtonOutline     color.RGBA
	TitleColor        color.RGBA
	TextColor         color.RGBA
	HintColor         color.RGBA
	OverlayColor      color.RGBA
	PopupColor        color.RGBA
	VolumeButtonColor color.RGBA
}

// Global configuration instances
var Window WindowConfig
var Layout LayoutConfig
var Player PlayerConfig
var Popup PopupConfig
var UI UIConfig

func init() {
	Window = WindowConfig{
		Title:              "Slate 2D",
		WindowedWidth:      1280,
		WindowedHeight:     720,
		ResizeSettleFrames: 10,
	}

	Layout = LayoutConfig{
		ButtonWidthFrac:  0.20,
		ButtonHeightFrac: 0.06,
		ButtonGapFrac:    0.02,
		TitleYFrac:       0.10,
		TitleSizeFrac:    0.05,
		BodySizeFrac:     0.03,
		HintSizeFrac:     0.02,
		VolumeBoxFrac:    0.7,
		VolumeBoxInset:   8,
	}

	Player = PlayerConfig{
		SizeFrac:  0.03,
		SpeedFrac: 0.5,
	}

	Popup = PopupConfig{
		Text:            "Game Saved!",
		DurationSeconds: 2.0,
		Margin:          30,
	}

	UI = UIConfig{
		BackgroundColor:   color.RGBA{R: 30, G: 30, B: 46, A: 255},
		ButtonColor:       color.RGBA{R: 80, G: 80, B: 88, A: 255},
		ButtonHoverColor:  color.RGBA{R: 0, G: 100, B: 255, A: 255},
		ButtonOutline:     color.RGBA{R: 0, G: 0, B: 0, A: 255},
		TitleColor:        color.RGBA{R: 180, G: 180, B: 190, A: 255},
		TextColor:         color.RGBA{R: 255, G: 255, B: 255, A: 255},
		HintColor:         color.RGBA{R: 140, G: 140, B: 150, A: 255},
		OverlayColor:      color.RGBA{R: 0, G: 0, B: 0, A: 128},
		PopupColor:        color.RGBA{R: 0, G: 255, B: 60, A: 255},
		VolumeButtonColor: color.RGBA{R: 120, G: 120, B: 128, A: 255},
	}
}
