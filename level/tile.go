package level

import "fmt"

// Coord addresses a grid cell.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a cardinal facing used by exits.
type Direction int

const (
	DirUp Direction = iota
	DirLeft
	DirRight
	DirDown
)

// Delta returns the unit grid step for the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	}
	panic(fmt.Sprintf("level: unknown direction %d", d))
}

// FireKind distinguishes the three fire tile variants.
type FireKind int

const (
	FireTopDown FireKind = iota
	FireLeftRight
	FireStop
)

// Tile is one grid cell. The concrete types are Air, Fire, Tree, Swamp and Exit;
// every switch over a Tile handles all five and panics on anything else.
type Tile interface {
	isTile()
}

// Air is an empty cell.
type Air struct{}

// Tree blocks patrols and can be chopped for wood.
type Tree struct{}

// Fire can be lit by a spirit. Active fires block enemies.
type Fire struct {
	Kind   FireKind
	Active bool
}

// Swamp teleports a spirit to Target. Target is nil until the level's swamp
// links have been applied.
type Swamp struct {
	Target *Coord
}

// Exit lets spirits leave the level.
type Exit struct {
	Facing Direction
}

func (Air) isTile()   {}
func (Tree) isTile()  {}
func (Fire) isTile()  {}
func (Swamp) isTile() {}
func (Exit) isTile()  {}

// Glyph returns the level text character for a tile.
func Glyph(t Tile) byte {
	switch v := t.(type) {
	case Air:
		return '.'
	case Tree:
		return '#'
	case Fire:
		switch v.Kind {
		case FireTopDown:
			return '1'
		case FireLeftRight:
			return '2'
		case FireStop:
			return '3'
		}
		panic(fmt.Sprintf("level: unknown fire kind %d", v.Kind))
	case Swamp:
		return 's'
	case Exit:
		switch v.Facing {
		case DirUp:
			return '^'
		case DirLeft:
			return '<'
		case DirRight:
			return '>'
		case DirDown:
			return 'v'
		}
		panic(fmt.Sprintf("level: unknown exit facing %d", v.Facing))
	}
	panic(fmt.Sprintf("level: unknown tile %T", t))
}

// TileFromGlyph maps a level text character to its tile. Fires start inactive
// and swamps start unlinked.
func TileFromGlyph(ch byte) (Tile, bool) {
	switch ch {
	case '.':
		return Air{}, true
	case '#':
		return Tree{}, true
	case '^':
		return Exit{Facing: DirUp}, true
	case '<':
		return Exit{Facing: DirLeft}, true
	case '>':
		return Exit{Facing: DirRight}, true
	case 'v':
		return Exit{Facing: DirDown}, true
	case '1':
		return Fire{Kind: FireTopDown}, true
	case '2':
		return Fire{Kind: FireLeftRight}, true
	case '3':
		return Fire{Kind: FireStop}, true
	case 's':
		return Swamp{}, true
	}
	return nil, false
}

// IsInactiveFire reports whether t is a fire that can still be lit.
func IsInactiveFire(t Tile) bool {
	f, ok := t.(Fire)
	return ok && !f.Active
}

// IsTree reports whether t is a tree.
func IsTree(t Tile) bool {
	_, ok := t.(Tree)
	return ok
}
