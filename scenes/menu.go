package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sync"

	"github.com/automoto/spiritfire/components"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/savegame"
	"github.com/automoto/spiritfire/settings"
	"github.com/automoto/spiritfire/systems"
	"github.com/automoto/spiritfire/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	// settingsUI is non-nil while the settings screen is open
	settingsUI *ui.SettingsUI
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	if ms.settingsUI != nil {
		ms.settingsUI.Update()
		if ms.settingsUI != nil && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			ms.settingsUI.Close()
		}
		return
	}
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.settingsUI != nil {
		ms.settingsUI.UI.Draw(screen)
		return
	}
	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.choose))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	systems.PlayMusic()
}

func (ms *MenuScene) choose(option components.MainMenuOption) {
	switch option {
	case components.MainMenuStart:
		goToTransition(ms.sceneChanger, 1)
	case components.MainMenuContinue:
		ms.continueGame()
	case components.MainMenuLevels:
		goToLevelSelection(ms.sceneChanger)
	case components.MainMenuSettings:
		ms.openSettings()
	case components.MainMenuExit:
		os.Exit(0)
	}
}

func (ms *MenuScene) continueGame() {
	restored, err := systems.LoadGame()
	if errors.Is(err, savegame.ErrNoSave) {
		// The slot was emptied since the menu was built.
		menu := systems.GetOrCreateMenu(ms.ecs)
		menu.HasSaveGame = false
		menu.VisibleOptions = systems.MenuOptions(false)
		menu.SelectedIndex = 0
		return
	}
	if err != nil {
		panic(fmt.Sprintf("Failed to load saved game: %v", err))
	}
	goToLevel(ms.sceneChanger, restored.Level.Number, restored)
}

func (ms *MenuScene) openSettings() {
	ms.settingsUI = ui.NewSettingsUI(systems.LoadSettings(),
		func(s settings.Settings) {
			systems.ApplySettings(s)
			_ = systems.SaveSettings(s)
		},
		func() {
			ms.settingsUI = nil
		},
	)
}
