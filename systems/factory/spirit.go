package factory

import (
	"github.com/automoto/spiritfire/archetypes"
	"github.com/automoto/spiritfire/components"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/level"
	"github.com/automoto/spiritfire/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateSpirit spawns a live patrolling spirit centered on (x,y) in pixels.
func CreateSpirit(ecs *ecs.ECS, id int, x, y float64, dir math.Vec2) *donburi.Entry {
	spirit := archetypes.Spirit.Spawn(ecs)

	size := cfg.Spirit.Size
	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	components.Object.SetValue(spirit, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags(tags.ResolvSpirit)
	obj.Data = spirit
	addToSpace(ecs, obj)

	components.Spirit.SetValue(spirit, components.SpiritData{
		ID:        id,
		Direction: dir,
		Behavior:  components.Patrol,
		Alive:     true,
		LastTile:  level.TileAt(x, y, cfg.C.TileSize),
	})

	return spirit
}

// CreateSpiritGroup spawns one spawn group's worth of spirits on its cell.
func CreateSpiritGroup(ecs *ecs.ECS, group level.SpawnGroup) {
	lvl := components.Level.Get(components.Level.MustFirst(ecs.World))
	x, y := level.Center(group.Position, cfg.C.TileSize)
	dir := math.Vec2{X: float64(group.Direction.X), Y: float64(group.Direction.Y)}
	for i := 0; i < group.Amount; i++ {
		CreateSpirit(ecs, lvl.NextID, x, y, dir)
		lvl.NextID++
	}
}
