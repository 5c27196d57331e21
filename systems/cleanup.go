package systems

import (
	"github.com/automoto/spiritfire/components"
	"github.com/automoto/spiritfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RemoveDeadSpirits takes spirits marked dead during the previous tick out of
// the collision space and the world. Removal happens after the query so the
// world is never changed while it is being iterated.
func RemoveDeadSpirits(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	tags.Spirit.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Spirit.Get(e).Alive {
			dead = append(dead, e)
		}
	})
	if len(dead) == 0 {
		return
	}

	orders := GetOrCreateOrders(ecs)
	spaceEntry, hasSpace := components.Space.First(ecs.World)
	for _, e := range dead {
		if hasSpace {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
		if orders.Selected == e.Entity() {
			orders.Selected = donburi.Null
			orders.HasLine = false
		}
		ecs.World.Remove(e.Entity())
	}
}
