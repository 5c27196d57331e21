package systems

import (
	"image/color"

	"github.com/automoto/spiritfire/components"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/level"
	"github.com/automoto/spiritfire/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and traces each enemy's
// planned path when the debug overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSpirit) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255} // Red
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		x, y := components.Object.Get(e).Center()
		for _, c := range components.Enemy.Get(e).Path {
			nx, ny := level.Center(c, cfg.C.TileSize)
			vector.StrokeLine(screen, float32(x), float32(y), float32(nx), float32(ny), 1, color.RGBA{255, 0, 0, 160}, false)
			x, y = nx, ny
		}
	})
}
