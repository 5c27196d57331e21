package assets

import (
	"testing"

	"github.com/automoto/spiritfire/dialogue"
	"github.com/automoto/spiritfire/level"
)

func TestCache_TwoTierLookup(t *testing.T) {
	c := NewCache("sprite", "placeholder")
	c.Put("tree", "tree.png")

	if got := c.MustGet("tree"); got != "tree.png" {
		t.Fatalf("MustGet(tree) = %q", got)
	}
	if got := c.Get("fire"); got != "placeholder" {
		t.Fatalf("Get(fire) = %q, want fallback", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustGet on a missing key should panic")
		}
	}()
	c.MustGet("fire")
}

func TestCache_SetFallback(t *testing.T) {
	c := NewCache[int]("number", 0)
	c.SetFallback(7)
	if c.Get("x") != 7 || c.Has("x") {
		t.Fatal("fallback not applied")
	}
}

func TestEmbeddedLevels(t *testing.T) {
	n := LevelCount()
	if n != 5 {
		t.Fatalf("LevelCount = %d, want 5", n)
	}
	for i := 1; i <= n; i++ {
		lvl := MustLoadLevel(i)
		if lvl.Number != i {
			t.Fatalf("level %d reports number %d", i, lvl.Number)
		}
		if err := lvl.Grid.CheckLinked(); err != nil {
			t.Fatalf("level %d: %v", i, err)
		}
		if lvl.Grid.Count(func(tile level.Tile) bool { _, ok := tile.(level.Exit); return ok }) == 0 {
			t.Fatalf("level %d has no exit", i)
		}
	}
}

func TestMustLoadLevel_ReturnsIndependentCopies(t *testing.T) {
	a := MustLoadLevel(1)
	a.Grid.Set(8, 4, level.Air{})
	b := MustLoadLevel(1)
	if !level.IsTree(b.Grid.Get(8, 4)) {
		t.Fatal("mutating one copy changed the cached level")
	}
}

func TestMustLoadLevel_MissingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a level that does not exist")
		}
	}()
	MustLoadLevel(99)
}

func TestScriptCoversEveryLevel(t *testing.T) {
	s := MustLoadScript()
	for i := 1; i <= LevelCount(); i++ {
		if len(s.Lines(dialogue.LevelTag(i))) == 0 {
			t.Fatalf("no dialogue for level %d", i)
		}
	}
}
