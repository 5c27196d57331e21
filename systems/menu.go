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

// NewUpdateMenu creates the main menu system. choose is called with the
// option the player picked.
func NewUpdateMenu(choose func(components.MainMenuOption)) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		selected := GetAction(input, cfg.ActionMenuSelect).JustPressed
		if _, y, ok := pointerClicked(input); ok {
			if i := menuItemAt(y, cfg.Menu.MenuStartY, cfg.Menu.MenuItemHeight, cfg.Menu.MenuItemGap, numOptions); i >= 0 {
				menu.SelectedIndex = i
				selected = true
			}
		}

		if selected {
			PlaySFX(e, cfg.SoundMenuSelect)
			choose(menu.VisibleOptions[menu.SelectedIndex])
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	drawCentered(screen, locale.Get("GAME_TITLE"), fonts.Title.Get(), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, getOptionLabel(option), menuFont, int(y+cfg.Menu.MenuItemHeight), textColor)
	}
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuStart:
		return locale.Get("MENU_START")
	case components.MainMenuContinue:
		return locale.Get("MENU_CONTINUE")
	case components.MainMenuLevels:
		return locale.Get("MENU_LEVELS")
	case components.MainMenuSettings:
		return locale.Get("MENU_SETTINGS")
	case components.MainMenuExit:
		return locale.Get("MENU_EXIT")
	default:
		return ""
	}
}

// MenuOptions lists the main menu entries. Continue is only offered when
// there is a saved game.
func MenuOptions(hasSave bool) []components.MainMenuOption {
	options := []components.MainMenuOption{components.MainMenuStart}
	if hasSave {
		options = append(options, components.MainMenuContinue)
	}
	return append(options,
		components.MainMenuLevels,
		components.MainMenuSettings,
		components.MainMenuExit,
	)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		hasSave := HasSaveGame()
		selected := 0
		if hasSave {
			// Continue sits right below Start.
			selected = 1
		}
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex:  selected,
			VisibleOptions: MenuOptions(hasSave),
			HasSaveGame:    hasSave,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
