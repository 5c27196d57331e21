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

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	level        int
}

// NewGameOverScene creates the game over screen for a failed level n
func NewGameOverScene(sc SceneChanger, n int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, level: n}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(
		func() { goToLevel(gs.sceneChanger, gs.level, nil) },
		func() { goToMenu(gs.sceneChanger) },
	))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}
