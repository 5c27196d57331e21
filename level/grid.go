package level

import (
	"fmt"
	"math"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Grid is a fixed-size row-major array of tiles.
type Grid struct {
	width, height int
	tiles         []Tile
}

// NewGrid returns a width×height grid filled with Air.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("level: invalid grid size %dx%d", width, height))
	}
	g := &Grid{width: width, height: height, tiles: make([]Tile, width*height)}
	for i := range g.tiles {
		g.tiles[i] = Air{}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("level: cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Get returns the tile at (x,y). Out-of-range access panics.
func (g *Grid) Get(x, y int) Tile {
	return g.tiles[g.index(x, y)]
}

// Set replaces the tile at (x,y). Out-of-range access panics.
func (g *Grid) Set(x, y int, t Tile) {
	g.tiles[g.index(x, y)] = t
}

// At is Get for a Coord.
func (g *Grid) At(c Coord) Tile {
	return g.Get(c.X, c.Y)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, tiles: make([]Tile, len(g.tiles))}
	copy(c.tiles, g.tiles)
	for i, t := range c.tiles {
		if s, ok := t.(Swamp); ok && s.Target != nil {
			target := *s.Target
			c.tiles[i] = Swamp{Target: &target}
		}
	}
	return c
}

// ParseGrid builds a grid from level text. Line breaks are ignored; the
// remaining characters must number exactly width*height and all be known
// glyphs.
func ParseGrid(text string, width, height int) (*Grid, error) {
	stripped := strings.NewReplacer("\n", "", "\r", "").Replace(text)
	if len(stripped) != width*height {
		return nil, loadErrorf("", "grid has %d cells, want %d (%dx%d)", len(stripped), width*height, width, height)
	}

	g := NewGrid(width, height)
	for i := 0; i < len(stripped); i++ {
		t, ok := TileFromGlyph(stripped[i])
		if !ok {
			return nil, loadErrorf("", "unknown tile %q at (%d,%d)", stripped[i], i%width, i/width)
		}
		g.tiles[i] = t
	}
	return g, nil
}

// Serialize encodes the grid as level text, one newline-terminated row per
// line. Fire activity and swamp targets are not part of the text.
func (g *Grid) Serialize() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteByte(Glyph(g.tiles[y*g.width+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FireStates returns the activity of every fire tile in row-major order.
func (g *Grid) FireStates() []FireState {
	var states []FireState
	for i, t := range g.tiles {
		if f, ok := t.(Fire); ok {
			states = append(states, FireState{
				Position: Coord{X: i % g.width, Y: i / g.width},
				Active:   f.Active,
			})
		}
	}
	return states
}

// ApplyFireStates restores fire activity. Every state must address a fire
// tile; nothing is changed if one does not.
func (g *Grid) ApplyFireStates(states []FireState) error {
	for _, s := range states {
		if !g.InBounds(s.Position.X, s.Position.Y) {
			return loadErrorf("fires", "fire state %s outside grid", s.Position)
		}
		if _, ok := g.At(s.Position).(Fire); !ok {
			return loadErrorf("fires", "fire state %s addresses %T", s.Position, g.At(s.Position))
		}
	}
	for _, s := range states {
		f := g.At(s.Position).(Fire)
		f.Active = s.Active
		g.Set(s.Position.X, s.Position.Y, f)
	}
	return nil
}

// LinkSwamps sets the teleport target of every linked swamp. All links are
// checked before any tile is touched, so a failing call leaves the grid as
// it was.
func (g *Grid) LinkSwamps(links []SwampLink) error {
	seen := mapset.New[Coord]()
	for _, l := range links {
		if !g.InBounds(l.Swamp.X, l.Swamp.Y) {
			return &LinkageError{At: l.Swamp, Reason: "swamp outside grid"}
		}
		if _, ok := g.At(l.Swamp).(Swamp); !ok {
			return &LinkageError{At: l.Swamp, Reason: fmt.Sprintf("expected swamp, found %T", g.At(l.Swamp))}
		}
		if !g.InBounds(l.Teleport.X, l.Teleport.Y) {
			return &LinkageError{At: l.Swamp, Reason: fmt.Sprintf("teleport target %s outside grid", l.Teleport)}
		}
		if seen.Has(l.Swamp) {
			return &LinkageError{At: l.Swamp, Reason: "swamp linked twice"}
		}
		seen.Put(l.Swamp)
	}

	for _, l := range links {
		target := l.Teleport
		g.Set(l.Swamp.X, l.Swamp.Y, Swamp{Target: &target})
	}
	return nil
}

// CheckLinked fails on the first swamp that has no teleport target.
func (g *Grid) CheckLinked() error {
	for i, t := range g.tiles {
		if s, ok := t.(Swamp); ok && s.Target == nil {
			return &LinkageError{At: Coord{X: i % g.width, Y: i / g.width}, Reason: "swamp has no teleport link"}
		}
	}
	return nil
}

// Count returns how many tiles satisfy match.
func (g *Grid) Count(match func(Tile) bool) int {
	n := 0
	for _, t := range g.tiles {
		if match(t) {
			n++
		}
	}
	return n
}

// TileAt converts a pixel position to the cell containing it.
func TileAt(px, py, tileSize float64) Coord {
	return Coord{X: int(math.Floor(px / tileSize)), Y: int(math.Floor(py / tileSize))}
}

// Center returns the pixel center of a cell.
func Center(c Coord, tileSize float64) (float64, float64) {
	return (float64(c.X) + 0.5) * tileSize, (float64(c.Y) + 0.5) * tileSize
}
