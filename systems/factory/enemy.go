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
)

// CreateEnemy spawns an enemy centered on cell c.
func CreateEnemy(ecs *ecs.ECS, c level.Coord) *donburi.Entry {
	x, y := level.Center(c, cfg.C.TileSize)
	return CreateEnemyAt(ecs, x, y)
}

// CreateEnemyAt spawns an enemy centered on (x,y) in pixels.
func CreateEnemyAt(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	size := cfg.Enemy.Size
	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{})
	return enemy
}
