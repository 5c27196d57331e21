package factory

import (
	"github.com/automoto/spiritfire/archetypes"
	"github.com/automoto/spiritfire/components"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level singleton together with its collision space
// and order coordinator, then populates spirits and enemies from metadata.
func CreateLevel(ecs *ecs.ECS, lvl *level.Level, levelCount int) *donburi.Entry {
	entry := CreateEmptyLevel(ecs, lvl, levelCount)
	for _, group := range lvl.Meta.Spirits {
		CreateSpiritGroup(ecs, group)
	}
	for _, c := range lvl.Meta.Enemies {
		CreateEnemy(ecs, c)
	}
	return entry
}

// CreateEmptyLevel spawns the level singletons without any spirits or enemies.
func CreateEmptyLevel(ecs *ecs.ECS, lvl *level.Level, levelCount int) *donburi.Entry {
	g := lvl.Grid
	tile := int(cfg.C.TileSize)
	CreateSpace(ecs, g.Width()*tile, g.Height()*tile, tile, tile)
	CreateOrders(ecs)

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		Current:    lvl,
		LevelCount: levelCount,
	})
	return entry
}

// CreateOrders spawns the order coordinator singleton with nothing selected.
func CreateOrders(ecs *ecs.ECS) *donburi.Entry {
	orders := archetypes.Orders.Spawn(ecs)
	components.Orders.SetValue(orders, components.OrdersData{Selected: donburi.Null})
	return orders
}
