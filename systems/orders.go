package systems

import (
	"math"

	"github.com/automoto/spiritfire/components"
	cfg "github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/level"
	"github.com/automoto/spiritfire/systems/factory"
	"github.com/automoto/spiritfire/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateOrders returns the order coordinator singleton, creating it if needed
func GetOrCreateOrders(e *ecs.ECS) *components.OrdersData {
	entry, ok := components.Orders.First(e.World)
	if !ok {
		entry = factory.CreateOrders(e)
	}
	return components.Orders.Get(entry)
}

// AddWood increments the wood counter.
func AddWood(orders *components.OrdersData) {
	orders.Wood++
}

// RemoveWood takes one piece of wood. It reports false and leaves the
// counter alone when there is none.
func RemoveWood(orders *components.OrdersData) bool {
	if orders.Wood == 0 {
		return false
	}
	orders.Wood--
	return true
}

// SelectSpirit selects the live spirit closest to the pointer, if one lies
// within SelectRadius. Spirits at equal distance resolve to the first one the
// collision space reports.
func SelectSpirit(e *ecs.ECS, px, py float64) bool {
	orders := GetOrCreateOrders(e)
	orders.Selected = donburi.Null

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return false
	}
	space := components.Space.Get(spaceEntry)

	r := cfg.Spirit.SelectRadius
	probe := resolv.NewObject(px-r, py-r, 2*r, 2*r, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	collision := probe.Check(0, 0, tags.ResolvSpirit)
	if collision == nil {
		return false
	}

	best := donburi.Null
	bestDist := math.Inf(1)
	for _, obj := range collision.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if !components.Spirit.Get(entry).Alive {
			continue
		}
		cx, cy := components.Object.Get(entry).Center()
		d := math.Hypot(cx-px, cy-py)
		if d <= r && d < bestDist {
			best = entry.Entity()
			bestDist = d
		}
	}

	orders.Selected = best
	return best != donburi.Null
}

// IssueOrder sends the selected spirit to the tile under the pointer: an
// inactive fire gets lit, a tree gets chopped, anything else is ignored.
// The selection is cleared either way.
func IssueOrder(e *ecs.ECS, px, py float64) bool {
	orders := GetOrCreateOrders(e)
	selected := orders.Selected
	orders.Selected = donburi.Null
	orders.HasLine = false

	if selected == donburi.Null || !e.World.Valid(selected) {
		return false
	}
	lvl, ok := getLevel(e)
	if !ok {
		return false
	}

	spirit := components.Spirit.Get(e.World.Entry(selected))
	if !spirit.Alive {
		return false
	}

	grid := lvl.Current.Grid
	c := level.TileAt(px, py, cfg.C.TileSize)
	if !grid.InBounds(c.X, c.Y) {
		return false
	}

	tile := grid.At(c)
	switch {
	case level.IsInactiveFire(tile):
		spirit.Behavior = components.Behavior{State: cfg.StateLightFire, Target: c}
	case level.IsTree(tile):
		spirit.Behavior = components.Behavior{State: cfg.StateChopTree, Target: c}
	default:
		return false
	}
	return true
}

// UpdateOrders turns pointer presses into selections and releases into orders.
func UpdateOrders(e *ecs.ECS) {
	input := getOrCreateInput(e)
	p := input.Pointer

	switch {
	case p.Down && !input.PreviousPointer.Down:
		if SelectSpirit(e, p.X, p.Y) {
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
	case !p.Down && input.PreviousPointer.Down:
		if IssueOrder(e, p.X, p.Y) {
			PlaySFX(e, cfg.SoundMenuSelect)
		}
	}
}

// UpdateOrderLine keeps the pending order line on the pointer while a spirit
// is selected.
func UpdateOrderLine(e *ecs.ECS) {
	orders := GetOrCreateOrders(e)
	if orders.Selected == donburi.Null || !e.World.Valid(orders.Selected) {
		orders.Selected = donburi.Null
		orders.HasLine = false
		return
	}
	input := getOrCreateInput(e)
	orders.HasLine = true
	orders.LineX, orders.LineY = input.Pointer.X, input.Pointer.Y
}

func getLevel(e *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}
