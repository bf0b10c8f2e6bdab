package systems

import (
	"math"
	"testing"

	"github.com/bdore/slate2d/components"
	cfg "github.com/bdore/slate2d/config"
	"github.com/stretchr/testify/assert"
)

func TestMovePlayerClampsToWindow(t *testing.T) {
	const w, h = 1280, 720
	size := float64(w) * cfg.Player.SizeFrac

	session := &components.SessionData{PlayerX: float64(w) - size - 1, PlayerY: 100}
	for i := 0; i < 60; i++ {
		movePlayer(session, 1, 0, w, h, 1.0/60)
	}
	assert.Equal(t, float64(w)-size, session.PlayerX, "stops flush with the right edge")

	session.PlayerX, session.PlayerY = 1, 1
	for i := 0; i < 60; i++ {
		movePlayer(session, -1, -1, w, h, 1.0/60)
	}
	assert.Equal(t, 0.0, session.PlayerX)
	assert.Equal(t, 0.0, session.PlayerY)
}

func TestMovePlayerDiagonalSpeedMatchesAxial(t *testing.T) {
	const w, h = 1280, 720
	const dt = 1.0 / 120

	axial := &components.SessionData{PlayerX: 100, PlayerY: 100}
	movePlayer(axial, 1, 0, w, h, dt)
	axialDist := axial.PlayerX - 100

	diagonal := &components.SessionData{PlayerX: 100, PlayerY: 100}
	movePlayer(diagonal, 1, 1, w, h, dt)
	dx := diagonal.PlayerX - 100
	dy := diagonal.PlayerY - 100
	diagonalDist := math.Hypot(dx, dy)

	assert.InDelta(t, axialDist, diagonalDist, 1e-9, "diagonal travel covers the same distance")
}

func TestMovePlayerSpeedScalesWithMinDimension(t *testing.T) {
	const dt = 1.0 / 60

	small := &components.SessionData{PlayerX: 100, PlayerY: 100}
	movePlayer(small, 1, 0, 1280, 720, dt)

	expected := cfg.Player.SpeedFrac * 720 * dt
	assert.InDelta(t, expected, small.PlayerX-100, 1e-9)

	tall := &components.SessionData{PlayerX: 100, PlayerY: 100}
	movePlayer(tall, 1, 0, 600, 1200, dt)
	assert.InDelta(t, cfg.Player.SpeedFrac*600*dt, tall.PlayerX-100, 1e-9)
}

func TestMovePlayerIgnoresDegenerateWindow(t *testing.T) {
	session := &components.SessionData{PlayerX: 50, PlayerY: 50}
	movePlayer(session, 1, 1, 0, 0, 1.0/60)
	assert.Equal(t, 50.0, session.PlayerX)
	assert.Equal(t, 50.0, session.PlayerY)
}
