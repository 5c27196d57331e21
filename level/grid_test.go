package level

import (
	"errors"
	"strings"
	"testing"
)

const sampleText = "" +
	"................\n" +
	".#......1.......\n" +
	"..2.....s.......\n" +
	"...3............\n" +
	"....#.........>.\n" +
	"..^.....s.......\n" +
	"...............<\n" +
	"v...............\n" +
	"..........#.....\n"

func TestNewGrid_AllAir(t *testing.T) {
	g := NewGrid(16, 9)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if _, ok := g.Get(x, y).(Air); !ok {
				t.Fatalf("tile (%d,%d) = %T, want Air", x, y, g.Get(x, y))
			}
		}
	}
}

func TestParseGrid_RoundTrip(t *testing.T) {
	g, err := ParseGrid(sampleText, 16, 9)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if got := g.Serialize(); got != sampleText {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, sampleText)
	}
}

func TestParseGrid_Mapping(t *testing.T) {
	g, err := ParseGrid(sampleText, 16, 9)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	cases := []struct {
		x, y int
		want Tile
	}{
		{1, 1, Tree{}},
		{8, 1, Fire{Kind: FireTopDown}},
		{2, 2, Fire{Kind: FireLeftRight}},
		{3, 3, Fire{Kind: FireStop}},
		{14, 4, Exit{Facing: DirRight}},
		{2, 5, Exit{Facing: DirUp}},
		{15, 6, Exit{Facing: DirLeft}},
		{0, 7, Exit{Facing: DirDown}},
		{0, 0, Air{}},
	}
	for _, c := range cases {
		if got := g.Get(c.x, c.y); got != c.want {
			t.Errorf("tile (%d,%d) = %#v, want %#v", c.x, c.y, got, c.want)
		}
	}
	s, ok := g.Get(8, 2).(Swamp)
	if !ok || s.Target != nil {
		t.Fatalf("tile (8,2) = %#v, want unlinked swamp", g.Get(8, 2))
	}
}

func TestParseGrid_ShortInput(t *testing.T) {
	text := strings.Repeat(".", 16*9-1)
	g, err := ParseGrid(text, 16, 9)
	if g != nil {
		t.Fatal("expected no grid for short input")
	}
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %v", err)
	}
}

func TestParseGrid_UnknownGlyph(t *testing.T) {
	text := strings.Repeat(".", 16*9-1) + "x"
	_, err := ParseGrid(text, 16, 9)
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if !strings.Contains(le.Error(), "(15,8)") {
		t.Fatalf("error should name the cell, got %q", le.Error())
	}
}

func TestGrid_OutOfRangePanics(t *testing.T) {
	g := NewGrid(4, 4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range Set")
		}
	}()
	g.Set(4, 0, Tree{})
}

func TestLinkSwamps(t *testing.T) {
	g, err := ParseGrid(sampleText, 16, 9)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	links := []SwampLink{
		{Swamp: Coord{8, 2}, Teleport: Coord{8, 5}},
		{Swamp: Coord{8, 5}, Teleport: Coord{8, 2}},
	}
	if err := g.LinkSwamps(links); err != nil {
		t.Fatalf("LinkSwamps: %v", err)
	}
	for _, l := range links {
		s := g.At(l.Swamp).(Swamp)
		if s.Target == nil || *s.Target != l.Teleport {
			t.Fatalf("swamp %s target = %v, want %s", l.Swamp, s.Target, l.Teleport)
		}
	}
	if err := g.CheckLinked(); err != nil {
		t.Fatalf("CheckLinked: %v", err)
	}
}

func TestLinkSwamps_NoPartialLinkage(t *testing.T) {
	g, err := ParseGrid(sampleText, 16, 9)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	before := g.Clone()
	links := []SwampLink{
		{Swamp: Coord{8, 2}, Teleport: Coord{8, 5}},
		{Swamp: Coord{1, 1}, Teleport: Coord{8, 2}}, // a tree
	}
	err = g.LinkSwamps(links)
	var le *LinkageError
	if !errors.As(err, &le) {
		t.Fatalf("expected LinkageError, got %v", err)
	}
	if le.At != (Coord{1, 1}) {
		t.Fatalf("error at %s, want (1,1)", le.At)
	}
	if s := g.Get(8, 2).(Swamp); s.Target != nil {
		t.Fatal("first swamp was linked despite failure")
	}
	if g.Serialize() != before.Serialize() {
		t.Fatal("grid changed after failed linkage")
	}
}

func TestLinkSwamps_Duplicate(t *testing.T) {
	g, _ := ParseGrid(sampleText, 16, 9)
	err := g.LinkSwamps([]SwampLink{
		{Swamp: Coord{8, 2}, Teleport: Coord{0, 0}},
		{Swamp: Coord{8, 2}, Teleport: Coord{1, 0}},
	})
	var le *LinkageError
	if !errors.As(err, &le) {
		t.Fatalf("expected LinkageError, got %v", err)
	}
}

func TestCheckLinked_Unlinked(t *testing.T) {
	g, _ := ParseGrid(sampleText, 16, 9)
	if err := g.LinkSwamps([]SwampLink{{Swamp: Coord{8, 2}, Teleport: Coord{0, 0}}}); err != nil {
		t.Fatalf("LinkSwamps: %v", err)
	}
	var le *LinkageError
	if err := g.CheckLinked(); !errors.As(err, &le) || le.At != (Coord{8, 5}) {
		t.Fatalf("expected LinkageError at (8,5), got %v", err)
	}
}

func TestFireStates(t *testing.T) {
	g, _ := ParseGrid(sampleText, 16, 9)
	g.Set(8, 1, Fire{Kind: FireTopDown, Active: true})

	states := g.FireStates()
	if len(states) != 3 {
		t.Fatalf("got %d fire states, want 3", len(states))
	}

	fresh, _ := ParseGrid(g.Serialize(), 16, 9)
	if err := fresh.ApplyFireStates(states); err != nil {
		t.Fatalf("ApplyFireStates: %v", err)
	}
	if f := fresh.Get(8, 1).(Fire); !f.Active {
		t.Fatal("active fire not restored")
	}
	if f := fresh.Get(2, 2).(Fire); f.Active {
		t.Fatal("inactive fire restored as active")
	}

	err := fresh.ApplyFireStates([]FireState{{Position: Coord{0, 0}, Active: true}})
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError for fire state on air, got %v", err)
	}
}

func TestTileAtAndCenter(t *testing.T) {
	if c := TileAt(85, 39.9, 40); c != (Coord{2, 0}) {
		t.Fatalf("TileAt = %s, want (2,0)", c)
	}
	if c := TileAt(-1, 0, 40); c != (Coord{-1, 0}) {
		t.Fatalf("TileAt negative = %s, want (-1,0)", c)
	}
	x, y := Center(Coord{3, 4}, 40)
	if x != 140 || y != 180 {
		t.Fatalf("Center = (%v,%v), want (140,180)", x, y)
	}
}
