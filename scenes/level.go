package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/spiritfire/assets"
	"github.com/automoto/spiritfire/components"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/locale"
	"github.com/automoto/spiritfire/savegame"
	"github.com/automoto/spiritfire/systems"
	"github.com/automoto/spiritfire/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene is a level being played
type LevelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	number   int
	restored *savegame.Restored

	// leaving is set once the scene has asked for the next scene
	leaving bool

	offscreen *ebiten.Image
}

// NewLevelScene creates level n. A non-nil restored resumes a saved game
// instead of starting fresh.
func NewLevelScene(sc SceneChanger, n int, restored *savegame.Restored) *LevelScene {
	return &LevelScene{sceneChanger: sc, number: n, restored: restored}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ls.ecs == nil {
		return
	}

	shader := assets.Shaders.Get("scanlines")
	if !systems.ShaderEnabled() || shader == nil {
		ls.ecs.Draw(screen)
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if ls.offscreen == nil || ls.offscreen.Bounds().Dx() != w || ls.offscreen.Bounds().Dy() != h {
		ls.offscreen = ebiten.NewImage(w, h)
	}
	ls.offscreen.Clear()
	ls.ecs.Draw(ls.offscreen)

	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = ls.offscreen
	screen.DrawRectShader(w, h, shader, op)
}

func (ls *LevelScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		panic("failed to load shaders: " + err.Error())
	}

	ls.ecs = ecs.NewECS(donburi.NewWorld())

	if ls.restored != nil {
		systems.RestoreSnapshot(ls.ecs, ls.restored, assets.LevelCount())
	} else {
		factory.CreateLevel(ls.ecs, assets.MustLoadLevel(ls.number), assets.LevelCount())
	}

	// Audio system (runs first, even when paused for menu sounds)
	ls.ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ls.ecs.AddSystem(systems.UpdateInput)
	ls.ecs.AddSystem(systems.NewUpdatePause(func() { goToMenu(ls.sceneChanger) }))
	ls.ecs.AddSystem(systems.UpdateMessage)

	// Gameplay, in tick order
	ls.ecs.AddSystem(systems.WithPauseCheck(ls.updateShortcuts))
	ls.ecs.AddSystem(systems.WithPauseCheck(systems.RemoveDeadSpirits))
	ls.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSpirits))
	ls.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEnemies))
	ls.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateOrders))
	ls.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateOrderLine))
	ls.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateLevelProgress))
	ls.ecs.AddSystem(ls.updateOutcome)

	ls.ecs.AddRenderer(cfg.Default, systems.DrawBoard)
	ls.ecs.AddRenderer(cfg.Default, systems.DrawUnits)
	ls.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ls.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ls.ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ls.ecs.AddRenderer(cfg.Default, systems.DrawMessage)

	systems.PlayMusic()
}

// updateShortcuts handles quick save, quick load and restart.
func (ls *LevelScene) updateShortcuts(e *ecs.ECS) {
	if ls.leaving {
		return
	}
	input := systems.GetInput(e)

	switch {
	case systems.GetAction(input, cfg.ActionQuickSave).JustPressed:
		if err := systems.SaveGame(e); err != nil {
			systems.ShowMessage(e, locale.Get("HUD_NO_SAVE"))
		} else {
			systems.ShowMessage(e, locale.Get("HUD_SAVED"))
		}
	case systems.GetAction(input, cfg.ActionQuickLoad).JustPressed:
		restored, err := systems.LoadGame()
		if errors.Is(err, savegame.ErrNoSave) {
			systems.ShowMessage(e, locale.Get("HUD_NO_SAVE"))
			return
		}
		if err != nil {
			panic(fmt.Sprintf("Failed to load saved game: %v", err))
		}
		ls.leaving = goToLevel(ls.sceneChanger, restored.Level.Number, restored)
	case systems.GetAction(input, cfg.ActionRestart).JustPressed:
		ls.leaving = goToLevel(ls.sceneChanger, ls.number, nil)
	}
}

// updateOutcome leaves the level once it is won or lost.
func (ls *LevelScene) updateOutcome(e *ecs.ECS) {
	if ls.leaving {
		return
	}
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(entry)

	switch lvl.Status {
	case components.LevelWon:
		if systems.HasNextLevel(lvl) {
			systems.UnlockLevel(lvl.Current.Number + 1)
			ls.leaving = goToTransition(ls.sceneChanger, lvl.Current.Number+1)
		} else {
			ls.leaving = goToGameEnd(ls.sceneChanger)
		}
	case components.LevelLost:
		ls.leaving = goToGameOver(ls.sceneChanger, lvl.Current.Number)
	}
}
