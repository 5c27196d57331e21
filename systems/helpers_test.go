package systems

import (
	"testing"

	"github.com/automoto/spiritfire/components"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/level"
	"github.com/automoto/spiritfire/systems/factory"
	"github.com/automoto/spiritfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// newTestWorld builds a 16x9 all-Air level, lets setup place tiles, and
// returns a world holding the level singletons and no units.
func newTestWorld(t *testing.T, meta *level.Metadata, setup func(g *level.Grid)) *ecs.ECS {
	t.Helper()
	g := level.NewGrid(cfg.C.GridWidth, cfg.C.GridHeight)
	if setup != nil {
		setup(g)
	}
	if meta == nil {
		meta = &level.Metadata{}
	}
	lvl, err := level.Assemble(1, g, meta)
	if err != nil {
		t.Fatalf("assemble test level: %v", err)
	}
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateEmptyLevel(e, lvl, 3)
	return e
}

func spawnSpirit(e *ecs.ECS, c level.Coord, dx, dy float64) *donburi.Entry {
	lvl := components.Level.Get(components.Level.MustFirst(e.World))
	x, y := level.Center(c, cfg.C.TileSize)
	entry := factory.CreateSpirit(e, lvl.NextID, x, y, math.Vec2{X: dx, Y: dy})
	lvl.NextID++
	return entry
}

func testGrid(e *ecs.ECS) *level.Grid {
	return components.Level.Get(components.Level.MustFirst(e.World)).Current.Grid
}

func spiritCount(e *ecs.ECS) int {
	n := 0
	tags.Spirit.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func tickSpiritsUntil(t *testing.T, e *ecs.ECS, limit int, done func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		UpdateSpirits(e)
		if done() {
			return
		}
	}
	t.Fatalf("condition not reached after %d ticks", limit)
}

func forEachSpirit(e *ecs.ECS, fn func(*donburi.Entry)) {
	var entries []*donburi.Entry
	tags.Spirit.Each(e.World, func(entry *donburi.Entry) { entries = append(entries, entry) })
	for _, entry := range entries {
		fn(entry)
	}
}
