package main

import (
	"log"

	"github.com/bdore/slate2d/components"
	cfg "github.com/bdore/slate2d/config"
	"github.com/bdore/slate2d/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type Game struct {
	ecs *ecs.ECS
}

func NewGame() *Game {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateLayout)
	e.AddSystem(systems.UpdateSession)
	e.AddSystem(systems.UpdatePlayer)

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawMenus)
	e.AddRenderer(cfg.Default, systems.DrawPopup)

	return &Game{ecs: e}
}

func (g *Game) Update() error {
	g.ecs.Update()
	if systems.GetOrCreateSession(g.ecs).ShouldExit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ecs.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	systems.InitPersistence()
	record := systems.LoadSaveRecord()

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.WindowedWidth, cfg.Window.WindowedHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(record.Fullscreen)
	if record.TargetTPS > 0 {
		ebiten.SetTPS(record.TargetTPS)
	}
	systems.SetMasterVolume(record.Volume)

	game := NewGame()

	session := systems.GetOrCreateSession(game.ecs)
	session.Save = record

	input := systems.GetOrCreateInput(game.ecs)
	input.Mode = record.Mode
	input.CursorVisible = record.Mode == components.ModePointerKeyboard
	if !input.CursorVisible {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	// Closing the window skips the in-game exit path, so persist here
	systems.SaveSession(game.ecs)
}
