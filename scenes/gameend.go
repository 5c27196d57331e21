package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameEndScene is shown after the last level is won
type GameEndScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewGameEndScene creates a new game end scene
func NewGameEndScene(sc SceneChanger) *GameEndScene {
	return &GameEndScene{sceneChanger: sc}
}

func (gs *GameEndScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameEndScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameEndScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameEnd(func() { goToMenu(gs.sceneChanger) }))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameEnd)
}
