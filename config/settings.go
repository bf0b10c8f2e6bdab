package config

import "math"

// Volume adjustment granularity. Values are snapped to multiples of the
// step so repeated adjustments always land on the same 21 positions.
const (
	VolumeStep     = 0.05
	volumeDivision = 1.0 / VolumeStep
)

// SettingsConfig contains the default persisted record values, used when
// no save file exists or the stored record cannot be read.
type SettingsConfig struct {
	DefaultRelX       float64
	DefaultRelY       float64
	DefaultFullscreen bool
	DefaultTPS        int
	DefaultVolume     float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		DefaultRelX:       0.1,
		DefaultRelY:       0.1,
		DefaultFullscreen: true,
		DefaultTPS:        120,
		DefaultVolume:     0.5,
	}
}

// SnapVolume clamps v to [0, 1] and snaps it to the nearest volume step.
func SnapVolume(v float64) float64 {
	v = math.Round(v*volumeDivision) / volumeDivision
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
