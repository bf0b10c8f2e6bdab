package systems

import (
	"fmt"
	"image/color"

	"github.com/bdore/slate2d/components"
	cfg "github.com/bdore/slate2d/config"
	"github.com/bdore/slate2d/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawBackground clears the frame
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)
}

// DrawWorld renders the play field: the player square and the HUD.
// Also drawn underneath the pause menu.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	if session.State != components.StatePlaying && session.State != components.StatePaused {
		return
	}
	input := GetOrCreateInput(e)

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	size := float32(float64(w) * cfg.Player.SizeFrac)

	vector.DrawFilledRect(screen,
		float32(session.PlayerX), float32(session.PlayerY),
		size, size, cfg.UI.TextColor, false)

	hintFace := fonts.Face(float64(h) * cfg.Layout.HintSizeFrac)
	hint := "WASD/arrows to move, Esc to pause, M for menu"
	if input.Mode == components.ModeController {
		hint = "Stick/D-pad to move, Start to pause"
	}
	status := fmt.Sprintf("%s  |  %s  |  %.0f, %.0f",
		session.State, input.Mode, session.PlayerX, session.PlayerY)

	text.Draw(screen, status, hintFace, 10, 10+textHeight(hintFace), cfg.UI.HintColor)
	text.Draw(screen, hint, hintFace, 10, h-10, cfg.UI.HintColor)
}

// DrawMenus renders whichever menu the current state shows. The pause
// menu gets a dimming overlay so the play field stays visible behind it.
func DrawMenus(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	menus := GetOrCreateMenus(e)

	menu := menus.ByState(session.State)
	if menu == nil {
		return
	}

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	if session.State == components.StatePaused {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), cfg.UI.OverlayColor, false)
	}

	title := cfg.Window.Title
	switch session.State {
	case components.StateSettings:
		title = "Settings"
	case components.StatePaused:
		title = "Paused"
	}
	titleFace := fonts.Face(float64(h) * cfg.Layout.TitleSizeFrac)
	drawCenteredText(screen, title, titleFace,
		float64(w)/2, float64(h)*cfg.Layout.TitleYFrac, cfg.UI.TitleColor)

	bodyFace := fonts.Face(float64(h) * cfg.Layout.BodySizeFrac)
	for i := range menu.Items {
		drawMenuItem(screen, session, &menu.Items[i], bodyFace)
	}
}

func drawMenuItem(screen *ebiten.Image, session *components.SessionData, item *components.MenuItem, face font.Face) {
	fill := cfg.UI.ButtonColor
	if item.Hovered || item.Selected {
		fill = cfg.UI.ButtonHoverColor
	}
	b := item.Bounds
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, cfg.UI.ButtonOutline, false)

	label := item.Label
	if item.Action == components.MenuAdjustVolume {
		label = fmt.Sprintf("Volume: %.0f%%", session.Save.Volume*100)
	}
	drawCenteredText(screen, label, face, b.X+b.W/2, b.Y+b.H/2, cfg.UI.TextColor)

	if item.Action == components.MenuAdjustVolume {
		minus, plus := VolumeBoxes(b)
		drawVolumeBox(screen, minus, "-", face)
		drawVolumeBox(screen, plus, "+", face)
	}
}

func drawVolumeBox(screen *ebiten.Image, box components.Rect, label string, face font.Face) {
	vector.DrawFilledRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H),
		cfg.UI.VolumeButtonColor, false)
	vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H),
		1, cfg.UI.ButtonOutline, false)
	drawCenteredText(screen, label, face, box.X+box.W/2, box.Y+box.H/2, cfg.UI.TextColor)
}

// DrawPopup renders the fading save confirmation in the top-right corner
func DrawPopup(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	if !session.Popup.Visible {
		return
	}

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	face := fonts.Face(float64(h) * cfg.Layout.BodySizeFrac)

	bounds := text.BoundString(face, cfg.Popup.Text)
	x := float64(w) - cfg.Popup.Margin - float64(bounds.Dx())
	y := cfg.Popup.Margin + float64(bounds.Dy())

	text.Draw(screen, cfg.Popup.Text, face, int(x), int(y),
		fadeColor(cfg.UI.PopupColor, session.Popup.Alpha))
}

// fadeColor scales a color by alpha, keeping it premultiplied
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func drawCenteredText(screen *ebiten.Image, str string, face font.Face, cx, cy float64, clr color.RGBA) {
	bounds := text.BoundString(face, str)
	x := cx - float64(bounds.Dx())/2
	y := cy + float64(bounds.Dy())/2
	text.Draw(screen, str, face, int(x), int(y), clr)
}

func textHeight(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}
