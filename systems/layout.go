package systems

import (
	"github.com/bdore/slate2d/components"
	cfg "github.com/bdore/slate2d/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// canvasSize returns the pixel size of the drawing canvas. WindowSize
// keeps reporting the windowed size while fullscreened, where the
// canvas covers the monitor instead.
func canvasSize() (int, int) {
	if ebiten.IsFullscreen() {
		return ebiten.Monitor().Size()
	}
	return ebiten.WindowSize()
}

// UpdateLayout rebuilds menu bounds when the canvas size changes. Runs
// after input so hover tests the same frame already use fresh bounds.
func UpdateLayout(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	menus := GetOrCreateMenus(e)

	w, h := canvasSize()
	if w <= 0 || h <= 0 {
		return
	}

	if !session.ForceLayout && w == session.LastWindowW && h == session.LastWindowH {
		return
	}
	session.LastWindowW = w
	session.LastWindowH = h
	session.ForceLayout = false

	RebuildMenus(menus, w, h)
}

// RebuildMenus recomputes every menu item's pixel bounds from the
// fractional layout rules for a window of the given size. Selection
// indices are preserved; stale indices are re-wrapped by navigation.
func RebuildMenus(menus *components.MenusData, w, h int) {
	layoutMenu(&menus.Main, w, h)
	layoutMenu(&menus.Settings, w, h)
	layoutMenu(&menus.Pause, w, h)
}

func layoutMenu(menu *components.MenuData, w, h int) {
	bw := float64(w) * cfg.Layout.ButtonWidthFrac
	bh := float64(h) * cfg.Layout.ButtonHeightFrac
	gap := float64(h) * cfg.Layout.ButtonGapFrac

	n := len(menu.Items)
	total := float64(n)*bh + float64(n-1)*gap
	x := (float64(w) - bw) / 2
	y := (float64(h) - total) / 2

	for i := range menu.Items {
		menu.Items[i].Bounds = components.Rect{
			X: x,
			Y: y + float64(i)*(bh+gap),
			W: bw,
			H: bh,
		}
	}
}

// VolumeBoxes returns the minus and plus click boxes inset into the left
// and right edges of the volume row.
func VolumeBoxes(bounds components.Rect) (minus, plus components.Rect) {
	size := bounds.H * cfg.Layout.VolumeBoxFrac
	inset := cfg.Layout.VolumeBoxInset
	top := bounds.Y + (bounds.H-size)/2

	minus = components.Rect{X: bounds.X + inset, Y: top, W: size, H: size}
	plus = components.Rect{X: bounds.X + bounds.W - inset - size, Y: top, W: size, H: size}
	return minus, plus
}

// GetOrCreateMenus returns the singleton Menus component, creating the
// three menus with their default items if needed.
func GetOrCreateMenus(e *ecs.ECS) *components.MenusData {
	if _, ok := components.Menus.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menus))
		components.Menus.SetValue(ent, components.MenusData{
			Main: components.MenuData{
				Items: []components.MenuItem{
					{Label: "Start Game", Action: components.MenuStartGame},
					{Label: "Settings", Action: components.MenuOpenSettings},
					{Label: "Save Game", Action: components.MenuSaveGame},
					{Label: "Exit", Action: components.MenuExit},
				},
			},
			Settings: components.MenuData{
				Items: []components.MenuItem{
					{Label: "Volume", Action: components.MenuAdjustVolume},
					{Label: "Toggle Fullscreen", Action: components.MenuToggleFullscreen},
					{Label: "Back to Menu", Action: components.MenuBackToMenu},
				},
			},
			Pause: components.MenuData{
				Items: []components.MenuItem{
					{Label: "Resume", Action: components.MenuResume},
					{Label: "Save Game", Action: components.MenuSaveGame},
					{Label: "Main Menu", Action: components.MenuMainMenu},
				},
			},
		})
	}

	ent, _ := components.Menus.First(e.World)
	return components.Menus.Get(ent)
}
