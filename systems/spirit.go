package systems

import (
	"math"

	"github.com/automoto/spiritfire/components"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/level"
	"github.com/automoto/spiritfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpirits advances every live spirit by one tick of its behavior.
// Spirits only ever get marked dead here; RemoveDeadSpirits takes them out
// of the world at the start of the next tick.
func UpdateSpirits(e *ecs.ECS) {
	lvl, ok := getLevel(e)
	if !ok {
		return
	}
	grid := lvl.Current.Grid
	orders := GetOrCreateOrders(e)
	// Create before iterating so queued sounds never add an entity mid-query.
	GetOrCreateAudio(e)

	tags.Spirit.Each(e.World, func(entry *donburi.Entry) {
		spirit := components.Spirit.Get(entry)
		if !spirit.Alive {
			return
		}
		obj := components.Object.Get(entry)

		switch spirit.Behavior.State {
		case cfg.StatePatrol:
			patrol(e, lvl, spirit, obj)
		case cfg.StateChopTree:
			chopTree(e, grid, orders, spirit, obj)
		case cfg.StateLightFire:
			lightFire(e, grid, spirit, obj)
		}
	})
}

func patrol(e *ecs.ECS, lvl *components.LevelData, spirit *components.SpiritData, obj *components.ObjectData) {
	grid := lvl.Current.Grid
	tileSize := cfg.C.TileSize
	speed := cfg.Spirit.PatrolSpeed
	dx, dy := spirit.Direction.X, spirit.Direction.Y
	cx, cy := obj.Center()

	// Probe just past the leading edge of the spirit's cell-sized footprint.
	reach := tileSize/2 + speed
	ahead := level.TileAt(cx+dx*reach, cy+dy*reach, tileSize)
	if !grid.InBounds(ahead.X, ahead.Y) || level.IsTree(grid.At(ahead)) {
		spirit.Direction.X, spirit.Direction.Y = -dx, -dy
		return
	}

	obj.MoveCenter(cx+dx*speed, cy+dy*speed)
	enterTile(e, lvl, spirit, obj)
}

// enterTile applies the swamp and exit rules when a patrolling spirit
// crosses into a new cell.
func enterTile(e *ecs.ECS, lvl *components.LevelData, spirit *components.SpiritData, obj *components.ObjectData) {
	grid := lvl.Current.Grid
	cx, cy := obj.Center()
	c := level.TileAt(cx, cy, cfg.C.TileSize)
	if c == spirit.LastTile || !grid.InBounds(c.X, c.Y) {
		return
	}
	spirit.LastTile = c

	switch t := grid.At(c).(type) {
	case level.Swamp:
		if t.Target == nil {
			return
		}
		obj.MoveCenter(level.Center(*t.Target, cfg.C.TileSize))
		spirit.LastTile = *t.Target
		PlaySFX(e, cfg.SoundTeleport)
	case level.Exit:
		spirit.Alive = false
		spirit.Escaped = true
		lvl.Escaped++
		PlaySFX(e, cfg.SoundEscape)
	}
}

func chopTree(e *ecs.ECS, grid *level.Grid, orders *components.OrdersData, spirit *components.SpiritData, obj *components.ObjectData) {
	target := spirit.Behavior.Target
	if !level.IsTree(grid.At(target)) {
		spirit.Behavior = components.Patrol
		return
	}
	if !approach(obj, target, cfg.Spirit.OrderSpeed) {
		return
	}

	grid.Set(target.X, target.Y, level.Air{})
	AddWood(orders)
	spirit.Alive = false
	PlaySFX(e, cfg.SoundChop)
}

func lightFire(e *ecs.ECS, grid *level.Grid, spirit *components.SpiritData, obj *components.ObjectData) {
	target := spirit.Behavior.Target
	tile := grid.At(target)
	if !level.IsInactiveFire(tile) {
		spirit.Behavior = components.Patrol
		return
	}
	if !approach(obj, target, cfg.Spirit.OrderSpeed) {
		return
	}

	fire := tile.(level.Fire)
	fire.Active = true
	grid.Set(target.X, target.Y, fire)
	spirit.Behavior = components.Patrol
	spirit.LastTile = target
	PlaySFX(e, cfg.SoundLight)
}

// approach reports whether obj is already within ArriveEpsilon of the
// target cell's center. Otherwise it moves at most speed toward it.
func approach(obj *components.ObjectData, target level.Coord, speed float64) bool {
	tx, ty := level.Center(target, cfg.C.TileSize)
	cx, cy := obj.Center()
	dist := math.Hypot(tx-cx, ty-cy)
	if dist <= cfg.Spirit.ArriveEpsilon {
		return true
	}
	step := math.Min(speed, dist)
	obj.MoveCenter(cx+(tx-cx)/dist*step, cy+(ty-cy)/dist*step)
	return false
}

// LiveSpirits counts spirits that are still in play.
func LiveSpirits(e *ecs.ECS) int {
	n := 0
	tags.Spirit.Each(e.World, func(entry *donburi.Entry) {
		if components.Spirit.Get(entry).Alive {
			n++
		}
	})
	return n
}
