package systems

import (
	"testing"

	"github.com/automoto/spiritfire/components"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/level"
	"github.com/yohamta/donburi"
)

func TestRemoveWood_NeverUnderflows(t *testing.T) {
	orders := &components.OrdersData{}
	if RemoveWood(orders) {
		t.Fatal("removed wood from an empty counter")
	}
	if orders.Wood != 0 {
		t.Fatalf("wood = %d, want 0", orders.Wood)
	}

	AddWood(orders)
	AddWood(orders)
	if !RemoveWood(orders) || orders.Wood != 1 {
		t.Fatalf("after add, add, remove: wood = %d, want 1", orders.Wood)
	}
}

func TestSelectAndIssueOrder(t *testing.T) {
	tree := level.Coord{X: 5, Y: 5}
	fire := level.Coord{X: 9, Y: 2}
	e := newTestWorld(t, nil, func(g *level.Grid) {
		g.Set(tree.X, tree.Y, level.Tree{})
		g.Set(fire.X, fire.Y, level.Fire{Kind: level.FireLeftRight})
	})
	entry := spawnSpirit(e, level.Coord{X: 2, Y: 2}, 1, 0)
	spirit := components.Spirit.Get(entry)

	if !SelectSpirit(e, 105, 98) {
		t.Fatal("pointer next to the spirit selected nothing")
	}
	orders := GetOrCreateOrders(e)
	if orders.Selected != entry.Entity() {
		t.Fatal("wrong spirit selected")
	}

	tx, ty := level.Center(tree, cfg.C.TileSize)
	if !IssueOrder(e, tx, ty) {
		t.Fatal("order on a tree was ignored")
	}
	want := components.Behavior{State: cfg.StateChopTree, Target: tree}
	if spirit.Behavior != want {
		t.Fatalf("behavior = %+v, want %+v", spirit.Behavior, want)
	}
	if orders.Selected != donburi.Null {
		t.Fatal("selection kept after the order")
	}

	SelectSpirit(e, 100, 100)
	fx, fy := level.Center(fire, cfg.C.TileSize)
	if !IssueOrder(e, fx, fy) {
		t.Fatal("order on an inactive fire was ignored")
	}
	want = components.Behavior{State: cfg.StateLightFire, Target: fire}
	if spirit.Behavior != want {
		t.Fatalf("behavior = %+v, want %+v", spirit.Behavior, want)
	}
}

func TestIssueOrder_NonTargetIsNoOp(t *testing.T) {
	lit := level.Coord{X: 6, Y: 6}
	e := newTestWorld(t, nil, func(g *level.Grid) {
		g.Set(lit.X, lit.Y, level.Fire{Kind: level.FireStop, Active: true})
	})
	spirit := components.Spirit.Get(spawnSpirit(e, level.Coord{X: 2, Y: 2}, 1, 0))

	targets := [][2]float64{
		{300, 300}, // air
		{260, 260}, // lit fire
		{-20, 50},  // off the board
	}
	for _, p := range targets {
		if !SelectSpirit(e, 100, 100) {
			t.Fatal("select failed")
		}
		if IssueOrder(e, p[0], p[1]) {
			t.Fatalf("order at (%v,%v) was accepted", p[0], p[1])
		}
		if spirit.Behavior != components.Patrol {
			t.Fatalf("behavior changed to %+v", spirit.Behavior)
		}
		if GetOrCreateOrders(e).Selected != donburi.Null {
			t.Fatal("selection kept after a no-op order")
		}
	}
}

func TestIssueOrder_WithoutSelection(t *testing.T) {
	tree := level.Coord{X: 5, Y: 5}
	e := newTestWorld(t, nil, func(g *level.Grid) { g.Set(tree.X, tree.Y, level.Tree{}) })
	spirit := components.Spirit.Get(spawnSpirit(e, level.Coord{X: 2, Y: 2}, 1, 0))

	tx, ty := level.Center(tree, cfg.C.TileSize)
	if IssueOrder(e, tx, ty) {
		t.Fatal("order without a selection was accepted")
	}
	if spirit.Behavior != components.Patrol {
		t.Fatalf("behavior changed to %+v", spirit.Behavior)
	}
}

func TestSelectSpirit_PicksNearest(t *testing.T) {
	e := newTestWorld(t, nil, nil)
	spawnSpirit(e, level.Coord{X: 2, Y: 2}, 1, 0)
	near := spawnSpirit(e, level.Coord{X: 3, Y: 2}, 1, 0)

	// (125,100) is 25px from the first spirit and 15px from the second.
	if !SelectSpirit(e, 125, 100) {
		t.Fatal("nothing selected")
	}
	if GetOrCreateOrders(e).Selected != near.Entity() {
		t.Fatal("selected the farther spirit")
	}
}

func TestSelectSpirit_IgnoresFarAndDead(t *testing.T) {
	e := newTestWorld(t, nil, nil)
	dead := spawnSpirit(e, level.Coord{X: 2, Y: 2}, 1, 0)
	components.Spirit.Get(dead).Alive = false
	spawnSpirit(e, level.Coord{X: 12, Y: 7}, 1, 0)

	if SelectSpirit(e, 100, 100) {
		t.Fatal("selected a dead spirit")
	}
	if SelectSpirit(e, 300, 60) {
		t.Fatal("selected a spirit far from the pointer")
	}
	if GetOrCreateOrders(e).Selected != donburi.Null {
		t.Fatal("failed selection left something selected")
	}
}

func TestUpdateOrderLine_FollowsPointerWhileSelected(t *testing.T) {
	e := newTestWorld(t, nil, nil)
	spawnSpirit(e, level.Coord{X: 2, Y: 2}, 1, 0)
	input := getOrCreateInput(e)
	input.Pointer.X, input.Pointer.Y = 300, 40

	UpdateOrderLine(e)
	orders := GetOrCreateOrders(e)
	if orders.HasLine {
		t.Fatal("line drawn without a selection")
	}

	SelectSpirit(e, 100, 100)
	UpdateOrderLine(e)
	if !orders.HasLine || orders.LineX != 300 || orders.LineY != 40 {
		t.Fatalf("line = %v (%v,%v), want end at pointer (300,40)", orders.HasLine, orders.LineX, orders.LineY)
	}
}
