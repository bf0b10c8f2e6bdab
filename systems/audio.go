package systems

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const audioSampleRate = 44100

var audioContext *audio.Context
var audioOnce sync.Once

var masterVolume = 1.0

// clickPCM is the UI click sample, synthesized once: a short sine blip
// with a linear decay so it ends without a pop.
var clickPCM []byte

func getAudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(audioSampleRate)
		clickPCM = synthesizeClick()
	})
	return audioContext
}

// SetMasterVolume sets the volume applied to every subsequently played
// sound. The value is expected to already be clamped to [0, 1].
func SetMasterVolume(v float64) {
	masterVolume = v
}

// MasterVolume returns the current master volume
func MasterVolume() float64 {
	return masterVolume
}

// playClick is called wherever a menu interaction should click.
// Indirect so tests can silence it.
var playClick = PlayClick

// PlayClick plays the menu click sound at the master volume
func PlayClick() {
	ctx := getAudioContext()
	player, err := ctx.NewPlayer(bytes.NewReader(clickPCM))
	if err != nil {
		log.Printf("Warning: could not create audio player: %v", err)
		return
	}
	player.SetVolume(masterVolume)
	player.Play()
}

// synthesizeClick renders ~50ms of a 880Hz sine as 16-bit LE stereo
func synthesizeClick() []byte {
	const (
		freq     = 880.0
		duration = 0.05
		peak     = 0.35
	)
	samples := int(audioSampleRate * duration)
	buf := make([]byte, 0, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / audioSampleRate
		decay := 1 - float64(i)/float64(samples)
		v := int16(peak * decay * math.Sin(2*math.Pi*freq*t) * math.MaxInt16)
		buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
	}
	return buf
}
