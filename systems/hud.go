package systems

import (
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/fonts"
	"github.com/automoto/spiritfire/locale"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudHeight = 20

// DrawHUD renders the level number, wood count and spirit tally along the
// top edge.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	lvl, ok := getLevel(e)
	if !ok {
		return
	}
	orders := GetOrCreateOrders(e)
	width := float32(screen.Bounds().Dx())

	vector.FillRect(screen, 0, 0, width, hudHeight, cfg.HUD.BgColor, false)

	face := fonts.Small.Get()
	baseline := hudHeight - int(cfg.HUD.Margin)
	margin := int(cfg.HUD.Margin)

	text.Draw(screen, locale.Get("HUD_LEVEL", lvl.Current.Number), face, margin, baseline, cfg.HUD.TextColor)
	text.Draw(screen, locale.Get("HUD_WOOD", orders.Wood), face, margin+80, baseline, cfg.HUD.TextColor)

	tally := locale.Get("HUD_SPIRITS", LiveSpirits(e), lvl.Escaped, lvl.Current.Meta.Survive)
	drawRightAligned(screen, tally, face, margin, baseline)
}
