package systems

import (
	astar "github.com/beefsack/go-astar"

	"github.com/automoto/spiritfire/level"
)

// NavGrid is the enemy view of a level: one node per cell, rebuilt from the
// tile grid whenever enemies repath so lit fires are taken into account.
type NavGrid struct {
	Width, Height int
	Nodes         [][]*NavNode
	tiles         *level.Grid
}

// NavNode represents a single cell in the navigation grid
// Implements astar.Pather interface
type NavNode struct {
	X, Y     int
	Walkable bool
	Grid     *NavGrid
}

var cardinalDirs = [4]struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// PathNeighbors returns adjacent cells an enemy may step into (implements astar.Pather)
func (n *NavNode) PathNeighbors() []astar.Pather {
	neighbors := make([]astar.Pather, 0, 4)
	for _, d := range cardinalDirs {
		nx, ny := n.X+d.dx, n.Y+d.dy
		if !n.Grid.CanMove(level.Coord{X: n.X, Y: n.Y}, level.Coord{X: nx, Y: ny}) {
			continue
		}
		neighbors = append(neighbors, n.Grid.Nodes[ny][nx])
	}
	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes (implements astar.Pather)
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	return 1
}

// PathEstimatedCost returns heuristic distance to target (implements astar.Pather)
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	toNode := to.(*NavNode)
	return float64(absInt(toNode.X-n.X) + absInt(toNode.Y-n.Y))
}

// CreateNavGrid marks trees and lit stop fires as solid.
func CreateNavGrid(g *level.Grid) *NavGrid {
	grid := &NavGrid{
		Width:  g.Width(),
		Height: g.Height(),
		Nodes:  make([][]*NavNode, g.Height()),
		tiles:  g,
	}
	for y := 0; y < grid.Height; y++ {
		grid.Nodes[y] = make([]*NavNode, grid.Width)
		for x := 0; x < grid.Width; x++ {
			grid.Nodes[y][x] = &NavNode{
				X:        x,
				Y:        y,
				Walkable: walkable(g.Get(x, y)),
				Grid:     grid,
			}
		}
	}
	return grid
}

func walkable(t level.Tile) bool {
	switch v := t.(type) {
	case level.Tree:
		return false
	case level.Fire:
		return !(v.Active && v.Kind == level.FireStop)
	}
	return true
}

// crossBlocked reports whether a lit fire on t stops a move along the given axis.
func crossBlocked(t level.Tile, vertical bool) bool {
	f, ok := t.(level.Fire)
	if !ok || !f.Active {
		return false
	}
	switch f.Kind {
	case level.FireTopDown:
		return vertical
	case level.FireLeftRight:
		return !vertical
	}
	return true
}

// CanMove reports whether an enemy may step between two adjacent cells.
func (g *NavGrid) CanMove(from, to level.Coord) bool {
	if to.X < 0 || to.X >= g.Width || to.Y < 0 || to.Y >= g.Height {
		return false
	}
	if !g.Nodes[to.Y][to.X].Walkable {
		return false
	}
	vertical := from.X == to.X
	return !crossBlocked(g.tiles.At(from), vertical) && !crossBlocked(g.tiles.At(to), vertical)
}

// FindPath returns the cells to walk from start to goal, excluding start.
// It is nil when the goal cannot be reached.
func (g *NavGrid) FindPath(start, goal level.Coord) []level.Coord {
	if start == goal {
		return nil
	}
	startNode := g.Nodes[start.Y][start.X]
	goalNode := g.Nodes[goal.Y][goal.X]

	path, _, found := astar.Path(startNode, goalNode)
	if !found {
		return nil
	}

	// go-astar lists the path goal first.
	result := make([]level.Coord, 0, len(path)-1)
	for i := len(path) - 2; i >= 0; i-- {
		node := path[i].(*NavNode)
		result = append(result, level.Coord{X: node.X, Y: node.Y})
	}
	return result
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
