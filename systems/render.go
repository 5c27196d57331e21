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

// DrawBoard renders the level grid, one flat colored cell per tile with a
// small mark for fire and exit variants.
func DrawBoard(e *ecs.ECS, screen *ebiten.Image) {
	lvl, ok := getLevel(e)
	if !ok {
		return
	}
	grid := lvl.Current.Grid
	ts := float32(cfg.C.TileSize)

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			px, py := float32(x)*ts, float32(y)*ts
			drawTile(screen, grid.Get(x, y), px, py, ts)
			vector.StrokeRect(screen, px, py, ts, ts, 1, cfg.Board.GridLine, false)
		}
	}
}

func drawTile(screen *ebiten.Image, t level.Tile, px, py, ts float32) {
	cx, cy := px+ts/2, py+ts/2
	vector.FillRect(screen, px, py, ts, ts, cfg.Board.Air, false)

	switch v := t.(type) {
	case level.Air:
	case level.Tree:
		vector.FillCircle(screen, cx, cy, ts*0.4, cfg.Board.Tree, true)
	case level.Fire:
		clr := cfg.Board.FireInactive
		if v.Active {
			clr = cfg.Board.FireActive
		}
		switch v.Kind {
		case level.FireTopDown:
			vector.FillRect(screen, cx-ts/8, py+2, ts/4, ts-4, clr, false)
		case level.FireLeftRight:
			vector.FillRect(screen, px+2, cy-ts/8, ts-4, ts/4, clr, false)
		case level.FireStop:
			vector.FillRect(screen, px+ts/4, py+ts/4, ts/2, ts/2, clr, false)
		}
	case level.Swamp:
		vector.FillRect(screen, px, py, ts, ts, cfg.Board.Swamp, false)
		vector.StrokeCircle(screen, cx, cy, ts/4, 2, cfg.Board.Air, true)
	case level.Exit:
		vector.FillRect(screen, px, py, ts, ts, cfg.Board.Exit, false)
		dx, dy := v.Facing.Delta()
		vector.StrokeLine(screen, cx, cy, cx+float32(dx)*ts/3, cy+float32(dy)*ts/3, 3, cfg.Board.Air, true)
	}
}

// DrawUnits renders enemies, then live spirits, the selection ring and the
// pending order line.
func DrawUnits(e *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.Board.Enemy, false)
	})

	orders := GetOrCreateOrders(e)
	tags.Spirit.Each(e.World, func(entry *donburi.Entry) {
		if !components.Spirit.Get(entry).Alive {
			return
		}
		cx, cy := components.Object.Get(entry).Center()
		r := float32(cfg.Spirit.Size / 2)
		vector.FillCircle(screen, float32(cx), float32(cy), r, cfg.Board.Spirit, true)

		if entry.Entity() != orders.Selected {
			return
		}
		vector.StrokeCircle(screen, float32(cx), float32(cy), r+3, 2, cfg.Board.Selected, true)
		if orders.HasLine {
			drawOrderLine(screen, cx, cy, orders.LineX, orders.LineY, cfg.Board.OrderLine)
		}
	})
}

func drawOrderLine(screen *ebiten.Image, x0, y0, x1, y1 float64, clr color.Color) {
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, clr, true)
	vector.FillCircle(screen, float32(x1), float32(y1), 3, clr, true)
}
