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

// UpdateEnemies moves every enemy one tick along its path toward the nearest
// live spirit, then runs the collision check.
func UpdateEnemies(ecs *ecs.ECS) {
	lvl, ok := getLevel(ecs)
	if !ok {
		return
	}
	GetOrCreateAudio(ecs)

	var nav *NavGrid
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)
		cx, cy := obj.Center()
		here := level.TileAt(cx, cy, cfg.C.TileSize)

		enemy.RepathTimer--
		if enemy.RepathTimer <= 0 || len(enemy.Path) == 0 {
			if nav == nil {
				nav = CreateNavGrid(lvl.Current.Grid)
			}
			enemy.Path = nil
			if goal, found := nearestSpiritTile(ecs, cx, cy); found {
				enemy.Path = nav.FindPath(here, goal)
			}
			enemy.RepathTimer = cfg.Enemy.RepathInterval
		}
		if len(enemy.Path) == 0 {
			return
		}

		next := enemy.Path[0]
		if next != here {
			if nav == nil {
				nav = CreateNavGrid(lvl.Current.Grid)
			}
			// A fire lit since the last search can close the way.
			if !nav.CanMove(here, next) {
				enemy.Path = nil
				return
			}
		}

		tx, ty := level.Center(next, cfg.C.TileSize)
		dist := math.Hypot(tx-cx, ty-cy)
		if dist <= cfg.Enemy.Speed {
			obj.MoveCenter(tx, ty)
			enemy.Path = enemy.Path[1:]
			return
		}
		obj.MoveCenter(cx+(tx-cx)/dist*cfg.Enemy.Speed, cy+(ty-cy)/dist*cfg.Enemy.Speed)
	})

	CheckEnemyCollisions(ecs)
}

// CheckEnemyCollisions kills every live spirit that occupies the same cell as
// an enemy. Enemies are left untouched.
func CheckEnemyCollisions(ecs *ecs.ECS) {
	GetOrCreateAudio(ecs)

	tags.Enemy.Each(ecs.World, func(enemyEntry *donburi.Entry) {
		ex, ey := components.Object.Get(enemyEntry).Center()
		enemyTile := level.TileAt(ex, ey, cfg.C.TileSize)

		tags.Spirit.Each(ecs.World, func(spiritEntry *donburi.Entry) {
			spirit := components.Spirit.Get(spiritEntry)
			if !spirit.Alive {
				return
			}
			sx, sy := components.Object.Get(spiritEntry).Center()
			if level.TileAt(sx, sy, cfg.C.TileSize) == enemyTile {
				spirit.Alive = false
				PlaySFX(ecs, cfg.SoundDeath)
			}
		})
	})
}

func nearestSpiritTile(ecs *ecs.ECS, x, y float64) (level.Coord, bool) {
	var best level.Coord
	bestDist := math.Inf(1)
	found := false
	tags.Spirit.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Spirit.Get(e).Alive {
			return
		}
		sx, sy := components.Object.Get(e).Center()
		if d := math.Hypot(sx-x, sy-y); d < bestDist {
			bestDist = d
			best = level.TileAt(sx, sy, cfg.C.TileSize)
			found = true
		}
	})
	return best, found
}
