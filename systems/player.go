package systems

import (
	"math"

	"github.com/bdore/slate2d/components"
	cfg "github.com/bdore/slate2d/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player while the game runs. Held directions
// come from keys or the stick past the deadzone; diagonals are
// normalized so speed stays constant.
func UpdatePlayer(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	if session.State != components.StatePlaying {
		return
	}
	input := GetOrCreateInput(e)

	var mvx, mvy float64
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		mvx--
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		mvx++
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		mvy--
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		mvy++
	}

	w, h := canvasSize()
	dt := 1.0 / float64(ebiten.TPS())
	movePlayer(session, mvx, mvy, w, h, dt)
}

// movePlayer applies one tick of movement and clamps the player to the
// window. Speed scales with the smaller window dimension so travel time
// across the screen is resolution independent.
func movePlayer(session *components.SessionData, mvx, mvy float64, w, h int, dt float64) {
	if w <= 0 || h <= 0 {
		return
	}

	if mvx != 0 && mvy != 0 {
		mvx *= math.Sqrt2 / 2
		mvy *= math.Sqrt2 / 2
	}

	speed := cfg.Player.SpeedFrac * math.Min(float64(w), float64(h))
	session.PlayerX += mvx * speed * dt
	session.PlayerY += mvy * speed * dt

	size := float64(w) * cfg.Player.SizeFrac
	session.PlayerX = clampF(session.PlayerX, 0, float64(w)-size)
	session.PlayerY = clampF(session.PlayerY, 0, float64(h)-size)
}
