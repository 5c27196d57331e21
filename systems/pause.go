package systems

import (
	"github.com/automoto/spiritfire/components"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/fonts"
	"github.com/automoto/spiritfire/locale"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePause creates the pause toggle and pause menu system.
// It should run AFTER UpdateInput but BEFORE the gameplay systems.
func NewUpdatePause(exit func()) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionPause).JustPressed {
			pause.IsPaused = !pause.IsPaused
			if pause.IsPaused {
				pause.SelectedOption = components.PauseResume
				PauseMusic()
			} else {
				ResumeMusic()
			}
			return
		}

		if !pause.IsPaused {
			return
		}

		numOptions := int(components.PauseExit) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		selected := GetAction(input, cfg.ActionMenuSelect).JustPressed
		if _, y, ok := pointerClicked(input); ok {
			if i := menuItemAt(y, cfg.Pause.MenuStartY, cfg.Pause.MenuItemHeight, cfg.Pause.MenuItemGap, numOptions); i >= 0 {
				pause.SelectedOption = components.PauseMenuOption(i)
				selected = true
			}
		}
		if !selected {
			return
		}

		PlaySFX(e, cfg.SoundMenuSelect)
		switch pause.SelectedOption {
		case components.PauseResume:
			pause.IsPaused = false
			ResumeMusic()
		case components.PauseSave:
			if err := SaveGame(e); err != nil {
				ShowMessage(e, locale.Get("HUD_NO_SAVE"))
			} else {
				ShowMessage(e, locale.Get("HUD_SAVED"))
			}
		case components.PauseExit:
			pause.IsPaused = false
			ResumeMusic()
			exit()
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.BackgroundColor, false)

	drawCentered(screen, locale.Get("PAUSE_TITLE"), fonts.Title.Get(), int(cfg.Pause.TitleY), cfg.Pause.TitleColor)

	fontFace := fonts.Bold.Get()
	labels := []string{locale.Get("PAUSE_RESUME"), locale.Get("PAUSE_SAVE"), locale.Get("PAUSE_EXIT")}
	for i, label := range labels {
		y := cfg.Pause.MenuStartY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}
		drawCentered(screen, label, fontFace, int(y+cfg.Pause.MenuItemHeight), textColor)
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			SelectedOption: components.PauseResume,
		})
	}

	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}
