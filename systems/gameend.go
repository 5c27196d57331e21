package systems

import (
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/fonts"
	"github.com/automoto/spiritfire/locale"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameEnd returns to the menu on select or click.
func NewUpdateGameEnd(toMenu func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		_, _, clicked := pointerClicked(input)
		if clicked || GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			toMenu()
		}
	}
}

// DrawGameEnd renders the closing screen after the last level.
func DrawGameEnd(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)
	drawCentered(screen, locale.Get("GAMEEND_TITLE"), fonts.Title.Get(), int(height/2), cfg.Menu.TitleColor)
	drawCentered(screen, locale.Get("GAMEEND_HINT"), fonts.Small.Get(), int(height)-12, cfg.Menu.TextColorNormal)
}
