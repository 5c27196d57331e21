package systems

import (
	"testing"

	"github.com/automoto/spiritfire/components"
	"github.com/automoto/spiritfire/level"
	"github.com/automoto/spiritfire/systems/factory"
)

func TestEnemyCollision_KillsSpiritOnly(t *testing.T) {
	e := newTestWorld(t, nil, nil)
	at := level.Coord{X: 6, Y: 6}
	enemy := factory.CreateEnemy(e, at)
	enemyData := components.Enemy.Get(enemy)
	enemyData.RepathTimer = 7
	before := *enemyData
	ex, ey := components.Object.Get(enemy).Center()

	victim := components.Spirit.Get(spawnSpirit(e, at, 1, 0))
	bystander := components.Spirit.Get(spawnSpirit(e, level.Coord{X: 7, Y: 6}, 1, 0))

	CheckEnemyCollisions(e)

	if victim.Alive {
		t.Fatal("spirit sharing the enemy's tile survived")
	}
	if !bystander.Alive {
		t.Fatal("spirit on the next tile died")
	}
	if x, y := components.Object.Get(enemy).Center(); x != ex || y != ey {
		t.Fatal("collision moved the enemy")
	}
	if after := *components.Enemy.Get(enemy); after.RepathTimer != before.RepathTimer || len(after.Path) != len(before.Path) {
		t.Fatalf("collision changed enemy state: %+v", after)
	}
}

func TestUpdateEnemies_ChasesSpirit(t *testing.T) {
	e := newTestWorld(t, nil, nil)
	enemy := factory.CreateEnemy(e, level.Coord{X: 2, Y: 4})
	spawnSpirit(e, level.Coord{X: 6, Y: 4}, 0, 1)

	x0, _ := components.Object.Get(enemy).Center()
	for i := 0; i < 10; i++ {
		UpdateEnemies(e)
	}
	x1, _ := components.Object.Get(enemy).Center()
	if x1 <= x0 {
		t.Fatalf("enemy did not move toward the spirit: x %v -> %v", x0, x1)
	}
}

func TestNavGrid_FireRules(t *testing.T) {
	tests := []struct {
		name       string
		fire       level.Fire
		vertical   bool
		horizontal bool
	}{
		{"unlit stop", level.Fire{Kind: level.FireStop}, true, true},
		{"lit stop", level.Fire{Kind: level.FireStop, Active: true}, false, false},
		{"lit top-down", level.Fire{Kind: level.FireTopDown, Active: true}, false, true},
		{"lit left-right", level.Fire{Kind: level.FireLeftRight, Active: true}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := level.NewGrid(5, 3)
			g.Set(2, 1, tt.fire)
			nav := CreateNavGrid(g)
			fire := level.Coord{X: 2, Y: 1}

			if got := nav.CanMove(level.Coord{X: 2, Y: 0}, fire); got != tt.vertical {
				t.Fatalf("vertical move = %v, want %v", got, tt.vertical)
			}
			if got := nav.CanMove(level.Coord{X: 1, Y: 1}, fire); got != tt.horizontal {
				t.Fatalf("horizontal move = %v, want %v", got, tt.horizontal)
			}
		})
	}
}

func TestNavGrid_FindPathAvoidsTrees(t *testing.T) {
	g := level.NewGrid(5, 3)
	// Wall with a gap at the bottom.
	g.Set(2, 0, level.Tree{})
	g.Set(2, 1, level.Tree{})
	nav := CreateNavGrid(g)

	start, goal := level.Coord{X: 0, Y: 0}, level.Coord{X: 4, Y: 0}
	path := nav.FindPath(start, goal)
	if len(path) == 0 {
		t.Fatal("no path found")
	}
	if path[len(path)-1] != goal {
		t.Fatalf("path ends at %v, want %v", path[len(path)-1], goal)
	}

	prev := start
	for _, c := range path {
		if level.IsTree(g.At(c)) {
			t.Fatalf("path crosses tree at %v", c)
		}
		if absInt(c.X-prev.X)+absInt(c.Y-prev.Y) != 1 {
			t.Fatalf("path jumps from %v to %v", prev, c)
		}
		prev = c
	}
	// Down two, across four, up two.
	if len(path) != 8 {
		t.Fatalf("path length = %d, want 8", len(path))
	}
}

func TestNavGrid_NoPathThroughLitStopFires(t *testing.T) {
	g := level.NewGrid(3, 3)
	for y := 0; y < 3; y++ {
		g.Set(1, y, level.Fire{Kind: level.FireStop, Active: true})
	}
	nav := CreateNavGrid(g)
	if path := nav.FindPath(level.Coord{X: 0, Y: 1}, level.Coord{X: 2, Y: 1}); path != nil {
		t.Fatalf("found path %v through lit fires", path)
	}
}
