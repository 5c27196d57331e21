package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/spiritfire/assets"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/dialogue"
	"github.com/automoto/spiritfire/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TransitionScene shows the story lines for a level, then starts it
type TransitionScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	level        int
}

// NewTransitionScene creates the story card for level n
func NewTransitionScene(sc SceneChanger, n int) *TransitionScene {
	return &TransitionScene{sceneChanger: sc, level: n}
}

func (ts *TransitionScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TransitionScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TransitionScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	lines := assets.MustLoadScript().Lines(dialogue.LevelTag(ts.level))
	systems.CreateDialogue(ts.ecs, ts.level, lines)

	ts.ecs.AddSystem(systems.UpdateAudio)
	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.NewUpdateDialogue(func() {
		goToLevel(ts.sceneChanger, ts.level, nil)
	}))

	ts.ecs.AddRenderer(cfg.Default, systems.DrawDialogue)
}
