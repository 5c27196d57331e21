package scenes

import (
	"image/color"

	"github.com/automoto/spiritfire/assets"
	"github.com/automoto/spiritfire/systems"
	"github.com/automoto/spiritfire/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// LevelSelectScene lets the player start any unlocked level
type LevelSelectScene struct {
	sceneChanger SceneChanger
	ui           *ui.LevelSelectUI
}

// NewLevelSelectScene creates a new level selection scene
func NewLevelSelectScene(sc SceneChanger) *LevelSelectScene {
	ls := &LevelSelectScene{sceneChanger: sc}
	ls.ui = ui.NewLevelSelectUI(assets.LevelCount(), systems.UnlockedLevel(),
		func(n int) { goToTransition(sc, n) },
		func() { goToMenu(sc) },
	)
	return ls
}

func (ls *LevelSelectScene) Update() {
	ls.ui.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		goToMenu(ls.sceneChanger)
	}
}

func (ls *LevelSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ls.ui.UI.Draw(screen)
}
